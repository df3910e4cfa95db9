package currency

import (
	"strings"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for catalog lookups.
func Routes(app *fiber.App, deps *initializer.Deps) {
	app.Get("/api/currencies", ListCurrencies(deps))
	app.Get("/api/currencies/:code", GetCurrency(deps))
	app.Get("/api/countries/:country/currency", GetCountryCurrency(deps))
}

// ListCurrencies returns a Fiber handler listing every known currency code.
func ListCurrencies(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currencies fetched successfully", deps.Catalog.Codes())
	}
}

// GetCurrency returns currency information by code
func GetCurrency(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.ToUpper(c.Params("code"))
		resp, ok := lookup(deps, code)
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Currency not found", "unknown currency "+code)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully", resp)
	}
}

// GetCountryCurrency returns the currency used in an ISO 3166-1 alpha-2 country.
func GetCountryCurrency(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		country := strings.ToUpper(c.Params("country"))
		code, ok := deps.Catalog.CountryToCurrency(country)
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Country not found", "no currency for country "+country)
		}
		resp, _ := lookup(deps, code)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Currency fetched successfully",
			CountryCurrencyResponse{Country: country, Currency: resp})
	}
}

func lookup(deps *initializer.Deps, code string) (CurrencyResponse, bool) {
	symbol, ok := deps.Catalog.CurrencyToSymbol(code)
	if !ok {
		return CurrencyResponse{}, false
	}
	resp := CurrencyResponse{Code: code, Symbol: symbol}
	if t, ok := deps.Catalog.Template(code, deps.Locale); ok {
		resp.Pattern = t.Pattern
	}
	return resp, true
}
