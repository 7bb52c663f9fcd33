package handlers

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/internal/middleware"
	"Go-Recipe-Share/pkg/admin"
	"Go-Recipe-Share/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	AdminHandler interface {
		ListUsers(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		ResetPassword(c *fiber.Ctx) error
	}

	adminHandler struct {
		responder
		adminService admin.AdminService
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate, flashes jwt.JWTService, logger *zap.Logger) AdminHandler {
	return &adminHandler{
		responder:    newResponder(flashes, validator, logger),
		adminService: adminService,
	}
}

func (h *adminHandler) ListUsers(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	users, err := h.adminService.ListUsers(c.Context(), userID)
	if err != nil {
		return h.fail(c, domain.MessageFailedListUsers, err, "")
	}
	return presenters.SuccessResponse(c, domain.AdminPageResponse{
		Users: users,
		Flash: presenters.Flash(c),
	}, fiber.StatusOK, domain.MessageSuccessListUsers)
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)

	if err := h.adminService.DeleteUser(c.Context(), userID, c.Params("id")); err != nil {
		return h.fail(c, domain.MessageFailedDeleteUser, err, "/admin")
	}
	return h.succeed(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser, "/admin")
}

func (h *adminHandler) ResetPassword(c *fiber.Ctx) error {
	userID := c.Locals(middleware.LocalUserID).(string)
	req := new(domain.ResetPasswordRequest)

	if err := h.parse(c, req); err != nil {
		return h.fail(c, domain.MessageFailedResetPassword, err, "/admin")
	}

	if err := h.adminService.ResetPassword(c.Context(), userID, c.Params("id"), *req); err != nil {
		return h.fail(c, domain.MessageFailedResetPassword, err, "/admin")
	}
	return h.succeed(c, nil, fiber.StatusOK, domain.MessageSuccessResetPassword, "/admin")
}
