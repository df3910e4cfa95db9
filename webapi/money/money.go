package money

import (
	"maps"
	"slices"

	"github.com/amirasaad/moneykit/infra/initializer"
	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/amirasaad/moneykit/pkg/validator"
	"github.com/amirasaad/moneykit/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for money operations.
func Routes(app *fiber.App, deps *initializer.Deps) {
	group := app.Group("/api/money")

	group.Post("/new", New(deps))
	group.Post("/parse", Parse(deps))
	group.Post("/format", Format(deps))
	group.Post("/add", Add(deps))
	group.Post("/split", Split(deps))
	group.Post("/validate", Validate(deps))
}

// Parse returns a Fiber handler parsing a canonical monetary value.
func Parse(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ParseRequest](c)
		if input == nil {
			return err // error response already written
		}
		m, err := money.Parse(input.Value)
		if err != nil {
			deps.Logger.Debug("Rejected monetary value", "value", input.Value, "error", err)
			return common.ProblemDetailsJSON(c, "Invalid monetary value", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Value parsed successfully",
			ToResponse(m, deps.DisplayOptions()...))
	}
}

// New returns a Fiber handler building a value from cents through the
// configured currency policy.
func New(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewRequest](c)
		if input == nil {
			return err // error response already written
		}
		m, err := deps.Policy.New(*input.Cents, money.Code(input.Currency))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid monetary value", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Value created successfully",
			ToResponse(m, deps.DisplayOptions()...))
	}
}

// Format returns a Fiber handler rendering a value for display.
// The request locale overrides the configured one.
func Format(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[FormatRequest](c)
		if input == nil {
			return err // error response already written
		}
		m, err := money.Parse(input.Value)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid monetary value", err)
		}

		opts := deps.DisplayOptions()
		if input.Locale != "" {
			opts = append(opts, money.WithLocale(input.Locale))
		}
		if input.ExplicitSign {
			opts = append(opts, money.WithExplicitSign())
		}
		if input.Compact {
			opts = append(opts, money.WithCompact())
		}
		if input.SkipDecimals {
			opts = append(opts, money.WithSkipDecimals())
		}

		display := m.Display(opts...)
		if input.HTML {
			display = m.HTML(opts...)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Value formatted successfully",
			FormatResponse{Display: display})
	}
}

// Add returns a Fiber handler adding or subtracting two values.
func Add(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddRequest](c)
		if input == nil {
			return err // error response already written
		}
		left, err := money.Parse(input.Left)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid left operand", err)
		}
		right, err := money.Parse(input.Right)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid right operand", err)
		}

		var result money.Money
		if input.Op == "sub" {
			result, err = left.Sub(right)
		} else {
			result, err = left.Add(right)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Operation failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Operation completed successfully",
			ToResponse(result, deps.DisplayOptions()...))
	}
}

// Split returns a Fiber handler dividing a value into parts.
func Split(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SplitRequest](c)
		if input == nil {
			return err // error response already written
		}
		m, err := money.Parse(input.Value)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid monetary value", err)
		}
		share, err := m.Div(money.Int(int64(input.Parts)), input.RoundUp)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Split failed", err)
		}
		shares, err := m.Allocate(input.Parts)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Split failed", err)
		}

		display := deps.DisplayOptions()
		resp := SplitResponse{
			Share:      ToResponse(share, display...),
			Allocation: make([]MoneyResponse, len(shares)),
		}
		for i, s := range shares {
			resp.Allocation[i] = ToResponse(s, display...)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Value split successfully", resp)
	}
}

// Validate returns a Fiber handler validating raw values per field.
// Invalid values are reported in the response body, not as an HTTP error.
func Validate(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ValidateRequest](c)
		if input == nil {
			return err // error response already written
		}
		fields := slices.Sorted(maps.Keys(input.Fields))
		errs := validator.Messages{}
		valid := deps.Validator.Validate(validator.PtrMap(input.Fields), fields, &errs, input.Options()...)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Values validated",
			ValidateResponse{Valid: valid, Errors: errs})
	}
}
