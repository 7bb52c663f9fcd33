package handlers

import (
	"errors"
	"strings"

	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/utils"
	"Go-Recipe-Share/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// responder turns service results into either a JSON envelope or a
// redirect carrying a flash message, depending on what the client asked
// for.
type responder struct {
	flashes   jwt.JWTService
	validator *validator.Validate
	logger    *zap.Logger
}

func newResponder(flashes jwt.JWTService, validator *validator.Validate, logger *zap.Logger) responder {
	return responder{flashes: flashes, validator: validator, logger: logger}
}

// fail reports err. Unclassified errors are logged and replaced with a
// generic message. An empty back always answers with JSON.
func (r responder) fail(c *fiber.Ctx, message string, err error, back string) error {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		r.logger.Error(message,
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		err = domain.NewError(domain.KindInternal, domain.MessageInternalError)
	}

	if back == "" || presenters.WantsJSON(c) {
		return presenters.ErrorResponse(c, presenters.StatusFor(kind), message, err)
	}
	return presenters.RedirectWithFlash(c, r.flashes, back, domain.FlashError, flashText(err))
}

func (r responder) succeed(c *fiber.Ctx, data any, status int, message string, next string) error {
	if next == "" || presenters.WantsJSON(c) {
		return presenters.SuccessResponse(c, data, status, message)
	}
	return presenters.RedirectWithFlash(c, r.flashes, next, domain.FlashSuccess, message)
}

// parse binds and validates a request body, returning a validation error
// describing every bad field.
func (r responder) parse(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError(domain.MessageFailedBodyRequest)
	}
	if err := r.validator.Struct(req); err != nil {
		return domain.NewValidationError(utils.FormatValidationErrors(err)...)
	}
	return nil
}

func flashText(err error) string {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		return err.Error()
	}
	if len(derr.Details) > 0 {
		return strings.Join(derr.Details, ", ")
	}
	return derr.Message
}
