// Package currency provides the static currency catalog used by the money
// package: country to currency mapping, currency symbols and the display
// templates used for human-facing formatting.
//
// The catalog is immutable. All lookups are safe for concurrent use.
package currency

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultCurrency is the fallback currency code used when an implicit
// currency is explicitly allowed by the caller.
const DefaultCurrency = "EUR"

// DefaultDecimalSeparator separates units from cents in display templates.
const DefaultDecimalSeparator = "."

// Template describes how an amount is rendered for humans.
//
// Pattern holds two %s verbs: the sign and the amount, in that order.
// An empty DecimalSeparator means amounts are rendered in whole units.
type Template struct {
	Pattern          string
	Symbol           string
	DecimalSeparator string
}

// symbolFirstEuroLocales are the locales writing the euro symbol before the amount.
var symbolFirstEuroLocales = []language.Tag{
	language.MustParse("nl-NL"),
	language.MustParse("en-IE"),
}

// Catalog holds the currency lookup tables.
type Catalog struct {
	countries map[string]string
	symbols   map[string]string
	templates map[string]Template
	codes     []string
}

// NewCatalog creates a catalog from the given tables. The maps are copied.
func NewCatalog(countries, symbols map[string]string, templates map[string]Template) *Catalog {
	c := &Catalog{
		countries: make(map[string]string, len(countries)),
		symbols:   make(map[string]string, len(symbols)),
		templates: make(map[string]Template, len(templates)),
		codes:     make([]string, 0, len(symbols)),
	}
	for k, v := range countries {
		c.countries[k] = v
	}
	for k, v := range symbols {
		c.symbols[k] = v
		c.codes = append(c.codes, k)
	}
	for k, v := range templates {
		c.templates[k] = v
	}
	slices.Sort(c.codes)
	return c
}

var defaultCatalog = NewCatalog(countryCurrencies, currencySymbols, displayTemplates)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// CountryToCurrency returns the currency used in the given ISO 3166-1 alpha-2 country.
func (c *Catalog) CountryToCurrency(country string) (string, bool) {
	code, ok := c.countries[strings.ToUpper(country)]
	return code, ok
}

// CurrencyToSymbol returns the symbol of a currency.
// Known currencies without a symbol return "", true.
func (c *Catalog) CurrencyToSymbol(code string) (string, bool) {
	sym, ok := c.symbols[code]
	return sym, ok
}

// IsKnown reports whether code belongs to the catalog.
func (c *Catalog) IsKnown(code string) bool {
	_, ok := c.symbols[code]
	return ok
}

// Codes returns the sorted list of known currency codes.
func (c *Catalog) Codes() []string {
	return slices.Clone(c.codes)
}

// Count returns the number of known currencies.
func (c *Catalog) Count() int {
	return len(c.codes)
}

// Template returns the display template of a currency for the given locale.
func (c *Catalog) Template(code string, locale language.Tag) (Template, bool) {
	t, ok := c.templates[code]
	if !ok {
		return Template{}, false
	}
	if code == "EUR" && !SymbolBeforeAmount(locale) {
		t.Pattern = "%s%s €"
	}
	return t, true
}

// SymbolBeforeAmount reports whether the euro symbol precedes the amount in locale.
func SymbolBeforeAmount(locale language.Tag) bool {
	name := locale.String()
	for _, t := range symbolFirstEuroLocales {
		if t.String() == name {
			return true
		}
	}
	return false
}

// ParseLocale parses a locale identifier leniently ("nl_NL", "nl-nl").
// It returns language.Und when s cannot be parsed.
func ParseLocale(s string) language.Tag {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return language.Und
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// Package level helpers on the default catalog.

func CountryToCurrency(country string) (string, bool) {
	return defaultCatalog.CountryToCurrency(country)
}

func CurrencyToSymbol(code string) (string, bool) {
	return defaultCatalog.CurrencyToSymbol(code)
}

func IsKnown(code string) bool {
	return defaultCatalog.IsKnown(code)
}

func Codes() []string {
	return defaultCatalog.Codes()
}
