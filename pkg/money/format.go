package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amirasaad/moneykit/pkg/currency"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// String returns the canonical form, for example "-10.40 EUR".
func (m Money) String() string {
	return m.Amount() + " " + string(m.currency)
}

// Amount returns the canonical amount without currency, for example "-10.40".
func (m Money) Amount() string {
	sign := ""
	abs := uint64(m.cents)
	if m.cents < 0 {
		sign = "-"
		abs = uint64(-m.cents)
	}
	return fmt.Sprintf("%s%d.%02d", sign, abs/100, abs%100)
}

// Decimal returns the exact amount in major units, for example -10.40.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// Float64 returns the amount in major units as a float.
// Useful to encode a numeric value in JSON; prefer Decimal for computations.
func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// DisplayOptions controls human-facing formatting.
type DisplayOptions struct {
	ExplicitSign bool
	Compact      bool
	SkipDecimals bool
	Locale       language.Tag
	// Catalog supplies the display templates, currency.Default() when nil.
	Catalog *currency.Catalog
}

// DisplayOption configures Display.
type DisplayOption func(*DisplayOptions)

// WithExplicitSign prefixes non-zero positive amounts with "+".
func WithExplicitSign() DisplayOption {
	return func(o *DisplayOptions) { o.ExplicitSign = true }
}

// WithCompact removes every space from the currency template.
func WithCompact() DisplayOption {
	return func(o *DisplayOptions) { o.Compact = true }
}

// WithSkipDecimals omits the cents of whole amounts.
func WithSkipDecimals() DisplayOption {
	return func(o *DisplayOptions) { o.SkipDecimals = true }
}

// WithLocale selects the locale of locale-sensitive templates.
// Unparsable locales behave as no locale.
func WithLocale(locale string) DisplayOption {
	return WithLocaleTag(currency.ParseLocale(locale))
}

// WithLocaleTag is WithLocale for an already parsed tag.
func WithLocaleTag(tag language.Tag) DisplayOption {
	return func(o *DisplayOptions) { o.Locale = tag }
}

// WithCatalog renders with the templates of c instead of the built-in catalog.
func WithCatalog(c *currency.Catalog) DisplayOption {
	return func(o *DisplayOptions) { o.Catalog = c }
}

// Display returns the amount formatted for humans, such as "10.40 €" or
// "-$ 3.50", using the currency template of the catalog.
// Currencies without a template render as "10.40 XYZ".
func (m Money) Display(opts ...DisplayOption) string {
	o := DisplayOptions{Locale: language.Und}
	for _, opt := range opts {
		opt(&o)
	}

	sign := ""
	switch {
	case m.cents < 0:
		sign = "-"
	case m.cents > 0 && o.ExplicitSign:
		sign = "+"
	}

	catalog := o.Catalog
	if catalog == nil {
		catalog = currency.Default()
	}
	pattern := "%s%s " + string(m.currency)
	separator := currency.DefaultDecimalSeparator
	if t, ok := catalog.Template(string(m.currency), o.Locale); ok {
		pattern, separator = t.Pattern, t.DecimalSeparator
	}
	if o.Compact {
		pattern = strings.ReplaceAll(pattern, " ", "")
	}
	return fmt.Sprintf(pattern, sign, m.displayAmount(separator, o.SkipDecimals))
}

// displayAmount renders the absolute amount. An empty separator means the
// currency is shown in whole units, rounded half up.
func (m Money) displayAmount(separator string, skipDecimals bool) string {
	abs := uint64(m.cents)
	if m.cents < 0 {
		abs = uint64(-m.cents)
	}
	switch {
	case separator == "":
		return strconv.FormatUint((abs+50)/100, 10)
	case skipDecimals && abs%100 == 0:
		return strconv.FormatUint(abs/100, 10)
	default:
		return fmt.Sprintf("%d%s%02d", abs/100, separator, abs%100)
	}
}

// HTML is Display with spaces replaced by non-breaking spaces.
// The result is not otherwise escaped.
func (m Money) HTML(opts ...DisplayOption) string {
	return strings.ReplaceAll(m.Display(opts...), " ", "&nbsp;")
}
