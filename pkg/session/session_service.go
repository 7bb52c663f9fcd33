package session

import (
	"time"

	"Go-Recipe-Share/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	CookieName = "recipe_session"
	Expiration = 24 * time.Hour

	keyAccountID = "account_id"
	keyRole      = "role"
)

type (
	SessionService interface {
		// Establish binds a fresh session id to the account.
		Establish(c *fiber.Ctx, account domain.AccountResponse) error
		Current(c *fiber.Ctx) (Identity, bool, error)
		Destroy(c *fiber.Ctx) error
	}

	Identity struct {
		AccountID string
		Role      string
	}

	sessionService struct {
		store *session.Store
	}
)

// NewSessionService keeps sessions in storage, or in process memory when
// storage is nil.
func NewSessionService(storage fiber.Storage, secureCookie bool) SessionService {
	return &sessionService{
		store: session.New(session.Config{
			Expiration:     Expiration,
			Storage:        storage,
			KeyLookup:      "cookie:" + CookieName,
			CookieHTTPOnly: true,
			CookieSecure:   secureCookie,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
	}
}

func (s *sessionService) Establish(c *fiber.Ctx, account domain.AccountResponse) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(keyAccountID, account.ID)
	sess.Set(keyRole, account.Role)
	return sess.Save()
}

func (s *sessionService) Current(c *fiber.Ctx) (Identity, bool, error) {
	if c.Cookies(CookieName) == "" {
		return Identity{}, false, nil
	}
	sess, err := s.store.Get(c)
	if err != nil {
		return Identity{}, false, err
	}
	if sess.Fresh() {
		return Identity{}, false, nil
	}

	accountID, _ := sess.Get(keyAccountID).(string)
	role, _ := sess.Get(keyRole).(string)
	if accountID == "" {
		return Identity{}, false, nil
	}
	return Identity{AccountID: accountID, Role: role}, true, nil
}

func (s *sessionService) Destroy(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
