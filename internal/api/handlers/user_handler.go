package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/session"
	"Go-Recipe-Share/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	UserHandler interface {
		RegisterPage(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
		LoginPage(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
	}

	userHandler struct {
		responder
		userService    user.UserService
		sessionService session.SessionService
	}
)

func NewUserHandler(
	userService user.UserService,
	sessionService session.SessionService,
	validator *validator.Validate,
	flashes jwt.JWTService,
	logger *zap.Logger,
) UserHandler {
	return &userHandler{
		responder:      newResponder(flashes, validator, logger),
		userService:    userService,
		sessionService: sessionService,
	}
}

func (h *userHandler) RegisterPage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.AuthPageResponse{Flash: presenters.Flash(c)}, fiber.StatusOK, "register")
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedRegister, err, "/users/register")
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return h.fail(c, domain.MessageFailedRegister, err, "/users/register")
	}

	return h.succeed(c, res, fiber.StatusCreated, domain.MessageSuccessRegister, "/users/login")
}

func (h *userHandler) LoginPage(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.AuthPageResponse{Flash: presenters.Flash(c)}, fiber.StatusOK, "login")
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedLogin, err, "/users/login")
	}

	account, err := h.userService.Authenticate(c.Context(), *req)
	if err != nil {
		// never tell which half of the credentials was wrong
		if domain.IsKind(err, domain.KindAuth) {
			err = domain.NewError(domain.KindAuth, domain.MessageInvalidCredentials)
		}
		return h.fail(c, domain.MessageFailedLogin, err, "/users/login")
	}

	if err := h.sessionService.Establish(c, account); err != nil {
		return h.fail(c, domain.MessageFailedLogin, err, "/users/login")
	}

	return h.succeed(c, account, fiber.StatusOK, domain.MessageSuccessLogin, "/")
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessionService.Destroy(c); err != nil {
		return h.fail(c, domain.MessageFailedProcessRequest, err, "/")
	}
	return h.succeed(c, nil, fiber.StatusOK, domain.MessageSuccessLogout, "/users/login")
}
