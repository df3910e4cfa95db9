package initializer

import (
	"bytes"
	"testing"

	"github.com/amirasaad/moneykit/pkg/config"
	"github.com/amirasaad/moneykit/pkg/currency"
	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Level: 0, Format: "text", TimeFormat: "15:04:05", Prefix: "[test]"},
		Money:  &config.Money{DefaultCurrency: "EUR", Locale: "nl_NL"},
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, &config.Log{Level: 0, Format: "json", TimeFormat: "15:04:05"})

	logger.Info("parsed amount", "cents", 1050)
	logger.Debug("hidden at info level")

	assert.Contains(t, buf.String(), "parsed amount")
	assert.Contains(t, buf.String(), "1050")
	assert.NotContains(t, buf.String(), "hidden at info level")
}

func TestNewLogger_TextLevelBadges(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, &config.Log{Level: -4, Format: "text", Prefix: "[test]"})

	logger.Debug("money field rejected", "field", "total")
	logger.Warn("implicit currency")
	logger.Error("request failed", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, "🐛")
	assert.Contains(t, out, "⚠️")
	assert.Contains(t, out, "❌")
	assert.Contains(t, out, "field=total")
	assert.Contains(t, out, "[test]")
}

func TestNewDeps(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	deps := NewDeps(cfg, NewLogger(&buf, cfg.Log))

	require.NotNil(t, deps.Catalog)
	assert.Same(t, cfg, deps.Config)
	assert.Equal(t, "nl-NL", deps.Locale.String())
	assert.NotNil(t, deps.Validator)
	assert.Contains(t, buf.String(), "Currency catalog loaded")

	_, err := deps.Policy.New(100, "")
	assert.ErrorIs(t, err, money.ErrCurrencyRequired)
}

func TestNewDeps_ImplicitCurrencyAndBadLocale(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	cfg.Money.AllowImplicit = true
	cfg.Money.Locale = "not a locale"
	deps := NewDeps(cfg, NewLogger(&buf, cfg.Log))

	assert.True(t, deps.Locale.IsRoot())
	assert.Contains(t, buf.String(), "Ignoring unparsable display locale")
	assert.Contains(t, buf.String(), "Implicit currency is enabled")

	m, err := deps.Policy.New(100, "")
	require.NoError(t, err)
	assert.Equal(t, money.EUR, m.Currency())
}

func TestDeps_DisplayOptions(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	deps := NewDeps(cfg, NewLogger(&buf, cfg.Log))

	eur := money.MustNew(123, money.EUR)
	assert.Equal(t, "€ 1.23", eur.Display(deps.DisplayOptions()...))

	deps.Catalog = currency.NewCatalog(nil, nil, map[string]currency.Template{
		"EUR": {Pattern: "%s%s EUR", Symbol: "€"},
	})
	assert.Equal(t, "1 EUR", eur.Display(deps.DisplayOptions()...))
}

func TestInitializeDependencies_IncompleteConfig(t *testing.T) {
	_, err := InitializeDependencies(&config.App{})
	assert.Error(t, err)

	_, err = InitializeDependencies(nil)
	assert.Error(t, err)
}
