package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/amirasaad/moneykit/pkg/validator"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// SuccessResponseJSON writes a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ProblemDetailsJSON writes err as problem details, with the status derived
// from ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, money.ErrParse):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrUnknownCurrency):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrIncompatibleCurrencies):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrInvalidOperand):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrDivisionByZero):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, money.ErrInvalidAmount):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := validator.RegisterTag(v); err != nil {
		panic(fmt.Sprintf("registering money validation tag: %v", err))
	}
	return v
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and
// returns nil together with the result of writing it.
//
// Fields failing only the money tag give a 422 with the monetary validation
// messages per field; any other failure gives a 400.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		var fieldErrs playground.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
		}
		status, messages := validationProblem(fieldErrs)
		return nil, ErrorResponseJSON(c, status, "Validation failed", messages)
	}
	return &input, nil
}

func validationProblem(fieldErrs playground.ValidationErrors) (int, validator.Messages) {
	status := fiber.StatusUnprocessableEntity
	messages := validator.Messages{}
	for _, fe := range fieldErrs {
		if fe.Tag() != validator.Tag {
			status = fiber.StatusBadRequest
			messages.Add(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
			continue
		}
		msg, failed := validator.Message(fmt.Sprint(fe.Value()))
		if !failed {
			msg = "must be a valid monetary value"
		}
		messages.Add(fe.Field(), msg)
	}
	return status, messages
}
