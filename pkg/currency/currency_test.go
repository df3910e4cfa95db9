package currency

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCountryToCurrency(t *testing.T) {
	tests := []struct {
		country string
		want    string
		ok      bool
	}{
		{"TW", "TWD", true},
		{"tw", "TWD", true},
		{"FR", "EUR", true},
		{"US", "USD", true},
		{"JP", "JPY", true},
		{"ZZ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, ok := CountryToCurrency(tt.country)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyToSymbol(t *testing.T) {
	sym, ok := CurrencyToSymbol("TWD")
	assert.True(t, ok)
	assert.Equal(t, "$", sym)

	sym, ok = CurrencyToSymbol("EUR")
	assert.True(t, ok)
	assert.Equal(t, "€", sym)

	sym, ok = CurrencyToSymbol("UZS")
	assert.True(t, ok, "known currency without symbol")
	assert.Empty(t, sym)

	_, ok = CurrencyToSymbol("XXX")
	assert.False(t, ok)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("EUR"))
	assert.True(t, IsKnown("UZS"))
	assert.False(t, IsKnown("eur"))
	assert.False(t, IsKnown("EURO"))
	assert.False(t, IsKnown(""))
}

func TestCatalog_Codes(t *testing.T) {
	codes := Codes()
	require.NotEmpty(t, codes)
	assert.True(t, slices.IsSorted(codes))
	assert.Contains(t, codes, "EUR")
	assert.Equal(t, Default().Count(), len(codes))

	// Codes returns a copy.
	codes[0] = "mutated"
	assert.NotEqual(t, "mutated", Codes()[0])
}

func TestCatalog_EveryCountryCurrencyIsKnown(t *testing.T) {
	for country, code := range countryCurrencies {
		assert.True(t, IsKnown(code), "currency %s of %s is not in the catalog", code, country)
	}
}

func TestNewCatalog_CopiesTables(t *testing.T) {
	countries := map[string]string{"XA": "AAA"}
	symbols := map[string]string{"AAA": "a", "BBB": "b"}
	templates := map[string]Template{"AAA": {Pattern: "%s%s a", DecimalSeparator: ","}}

	c := NewCatalog(countries, symbols, templates)
	countries["XA"] = "BBB"
	delete(symbols, "AAA")

	code, ok := c.CountryToCurrency("xa")
	assert.True(t, ok)
	assert.Equal(t, "AAA", code)
	assert.True(t, c.IsKnown("AAA"))
	assert.Equal(t, []string{"AAA", "BBB"}, c.Codes())
	assert.Equal(t, 2, c.Count())

	tpl, ok := c.Template("AAA", language.Und)
	require.True(t, ok)
	assert.Equal(t, ",", tpl.DecimalSeparator)

	_, ok = c.Template("BBB", language.Und)
	assert.False(t, ok)
}

func TestCatalog_Template(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		locale  language.Tag
		pattern string
		ok      bool
	}{
		{"euro without locale", "EUR", language.Und, "%s%s €", true},
		{"euro in nl-NL", "EUR", language.MustParse("nl-NL"), "%s€ %s", true},
		{"euro in en-IE", "EUR", language.MustParse("en-IE"), "%s€ %s", true},
		{"euro in de-DE", "EUR", language.MustParse("de-DE"), "%s%s €", true},
		{"dollar ignores locale", "USD", language.MustParse("nl-NL"), "%s$ %s", true},
		{"swiss franc", "CHF", language.Und, "CHF %s%s", true},
		{"no template", "TWD", language.Und, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, ok := Default().Template(tt.code, tt.locale)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pattern, tpl.Pattern)
		})
	}

	// The stored euro template is not altered by locale lookups.
	assert.Equal(t, "%s€ %s", displayTemplates["EUR"].Pattern)
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nl-NL", "nl-NL"},
		{"nl_NL", "nl-NL"},
		{"nl-nl", "nl-NL"},
		{" en_IE ", "en-IE"},
		{"", "und"},
		{"not a locale", "und"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.in).String())
		})
	}
}

func TestSymbolBeforeAmount(t *testing.T) {
	assert.True(t, SymbolBeforeAmount(ParseLocale("nl_NL")))
	assert.True(t, SymbolBeforeAmount(ParseLocale("en-IE")))
	assert.False(t, SymbolBeforeAmount(ParseLocale("en-GB")))
	assert.False(t, SymbolBeforeAmount(language.Und))
}
