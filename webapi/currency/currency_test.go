package currency_test

import (
	"testing"

	"github.com/amirasaad/moneykit/pkg/config"
	currencyapi "github.com/amirasaad/moneykit/webapi/currency"
	"github.com/amirasaad/moneykit/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(mutate func(*config.App)) *fiber.App {
	app := fiber.New()
	currencyapi.Routes(app, testutils.NewTestDeps(mutate))
	return app
}

func TestGetCurrency(t *testing.T) {
	app := newApp(nil)

	tests := []struct {
		path string
		want currencyapi.CurrencyResponse
	}{
		{"/api/currencies/TWD", currencyapi.CurrencyResponse{Code: "TWD", Symbol: "$"}},
		{"/api/currencies/usd", currencyapi.CurrencyResponse{Code: "USD", Symbol: "$", Pattern: "%s$ %s"}},
		{"/api/currencies/EUR", currencyapi.CurrencyResponse{Code: "EUR", Symbol: "€", Pattern: "%s%s €"}},
		{"/api/currencies/UZS", currencyapi.CurrencyResponse{Code: "UZS", Symbol: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, tt.path, "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var data currencyapi.CurrencyResponse
			_, err := testutils.DecodeResponse(resp, &data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestGetCurrency_LocalePattern(t *testing.T) {
	app := newApp(func(cfg *config.App) { cfg.Money.Locale = "en-IE" })

	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/api/currencies/EUR", "")
	var data currencyapi.CurrencyResponse
	_, err := testutils.DecodeResponse(resp, &data)
	require.NoError(t, err)
	assert.Equal(t, "%s€ %s", data.Pattern)
}

func TestGetCurrency_NotFound(t *testing.T) {
	resp := testutils.MakeRequestWithApp(newApp(nil), fiber.MethodGet, "/api/currencies/XXX", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	pd, err := testutils.DecodeProblem(resp)
	require.NoError(t, err)
	assert.Equal(t, "Currency not found", pd.Title)
	assert.Equal(t, "/api/currencies/XXX", pd.Instance)
}

func TestGetCountryCurrency(t *testing.T) {
	app := newApp(nil)

	resp := testutils.MakeRequestWithApp(app, fiber.MethodGet, "/api/countries/tw/currency", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data currencyapi.CountryCurrencyResponse
	_, err := testutils.DecodeResponse(resp, &data)
	require.NoError(t, err)
	assert.Equal(t, "TW", data.Country)
	assert.Equal(t, "TWD", data.Currency.Code)
	assert.Equal(t, "$", data.Currency.Symbol)

	resp = testutils.MakeRequestWithApp(app, fiber.MethodGet, "/api/countries/ZZ/currency", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListCurrencies(t *testing.T) {
	resp := testutils.MakeRequestWithApp(newApp(nil), fiber.MethodGet, "/api/currencies", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var codes []string
	_, err := testutils.DecodeResponse(resp, &codes)
	require.NoError(t, err)
	assert.Contains(t, codes, "EUR")
	assert.Contains(t, codes, "TWD")
}
