package middleware

import (
	"Go-Recipe-Share/domain"
	"Go-Recipe-Share/internal/api/presenters"
	"Go-Recipe-Share/pkg/jwt"
	"Go-Recipe-Share/pkg/session"
	"Go-Recipe-Share/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

const (
	LocalUserID  = "user_id"
	LocalRole    = "role"
	LocalAccount = "account"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		FlashMiddleware() fiber.Handler
		IdentityMiddleware() fiber.Handler
		RequireAuthenticated() fiber.Handler
		RequireAdmin() fiber.Handler
	}

	middleware struct {
		sessions session.SessionService
		users    user.UserService
		flashes  jwt.JWTService
		logger   *zap.Logger
	}
)

func NewMiddleware(sessions session.SessionService, users user.UserService, flashes jwt.JWTService, logger *zap.Logger) Middleware {
	return &middleware{
		sessions: sessions,
		users:    users,
		flashes:  flashes,
		logger:   logger,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
	})
}

// FlashMiddleware moves a signed flash message from its cookie into the
// request locals and clears the cookie, so each message is shown once.
func (m *middleware) FlashMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(presenters.FlashCookie)
		if token == "" {
			return c.Next()
		}
		c.ClearCookie(presenters.FlashCookie)

		flash, err := m.flashes.ParseTokenFlash(token)
		if err == nil {
			c.Locals(presenters.FlashLocal, &flash)
		}
		return c.Next()
	}
}

// IdentityMiddleware attaches the logged-in account to the request. The
// account is reloaded on every request; a session whose account no longer
// exists is destroyed.
func (m *middleware) IdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok, err := m.sessions.Current(c)
		if err != nil {
			m.logger.Warn("session lookup failed", zap.Error(err))
			return c.Next()
		}
		if !ok {
			return c.Next()
		}

		account, err := m.users.GetAccount(c.Context(), identity.AccountID)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				if err := m.sessions.Destroy(c); err != nil {
					m.logger.Warn("destroying stale session failed", zap.Error(err))
				}
			} else {
				m.logger.Error("identity reload failed", zap.String("account_id", identity.AccountID), zap.Error(err))
			}
			return c.Next()
		}

		c.Locals(LocalUserID, account.ID)
		c.Locals(LocalRole, account.Role)
		c.Locals(LocalAccount, account)
		return c.Next()
	}
}

func (m *middleware) RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) != "" {
			return c.Next()
		}
		if presenters.WantsJSON(c) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageLoginRequired, domain.ErrLoginRequired)
		}
		return presenters.RedirectWithFlash(c, m.flashes, "/users/login", domain.FlashError, domain.MessageLoginRequired)
	}
}

// RequireAdmin also rejects anonymous requests, so it can be used alone.
func (m *middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserID(c) == "" {
			return m.RequireAuthenticated()(c)
		}
		if role, _ := c.Locals(LocalRole).(string); role == domain.RoleAdmin {
			return c.Next()
		}
		if presenters.WantsJSON(c) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAdminRequired, domain.ErrAdminRequired)
		}
		return presenters.RedirectWithFlash(c, m.flashes, "/", domain.FlashError, domain.MessageAdminRequired)
	}
}

// UserID returns the attached account id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
