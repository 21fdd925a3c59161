package common

import (
	"errors"

	"github.com/amirasaad/banktransfer/pkg/domain"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

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

// SuccessResponseJSON writes data wrapped in a Response.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorResponseJSON returns a response following RFC 9457 Problem Details.
// A string detail becomes Detail; anything else is reported under Errors.
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
	return writeProblem(c, pd)
}

// ProblemDetailsJSON writes err as problem details. The status comes from
// ErrorToStatusCode unless one is given. Domain errors carrying details
// (account id, overage, minimum) report them under Errors; the text of
// unclassified errors is not exposed.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, status ...int) error {
	code := ErrorToStatusCode(err)
	if len(status) > 0 {
		code = status[0]
	}
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: code,
		Errors: errorFields(err),
	}
	if code == fiber.StatusInternalServerError && len(status) == 0 {
		pd.Detail = "internal error"
	} else if err != nil {
		pd.Detail = err.Error()
	}
	return writeProblem(c, pd)
}

func writeProblem(c *fiber.Ctx, pd ProblemDetails) error {
	pd.Instance = c.OriginalURL()
	return c.Status(pd.Status).JSON(pd, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrServiceUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, money.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrSameAccount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

func errorFields(err error) map[string]string {
	var (
		invalid      *domain.InvalidAmountError
		notFound     *domain.AccountNotFoundError
		insufficient *domain.InsufficientFundsError
	)
	switch {
	case errors.As(err, &invalid):
		return map[string]string{
			"amount":  invalid.Amount.String(),
			"minimum": money.Format(invalid.Minimum),
		}
	case errors.As(err, &notFound):
		return map[string]string{"account_id": notFound.ID}
	case errors.As(err, &insufficient):
		return map[string]string{
			"account_id": insufficient.AccountID,
			"overage":    money.Format(insufficient.Overage),
		}
	default:
		return nil
	}
}

// BindAndValidate parses the request body into T and validates it using
// go-playground/validator. On failure it writes a 400 problem response and
// returns a nil input together with the result of writing that response, so
// handlers can return it unchanged.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", validationErrors(err))
	}
	return &input, nil
}

func validationErrors(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
