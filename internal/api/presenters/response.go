package presenters

import (
	"errors"
	"strings"

	"Go-Recipe-Share/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
		var derr *domain.Error
		if errors.As(err, &derr) {
			res.Error = derr.Message
			res.Errors = derr.Details
		}
	}
	return c.Status(statusCode).JSON(res)
}

func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return fiber.StatusBadRequest
	case domain.KindAuth:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// WantsJSON reports whether the client expects a JSON reply rather than a
// redirect.
func WantsJSON(c *fiber.Ctx) bool {
	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return true
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return true
	}
	return c.Get(fiber.HeaderXRequestedWith) != ""
}
