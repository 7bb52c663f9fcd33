package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Go-Recipe-Share/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSessionService_Lifecycle(t *testing.T) {
	svc := NewSessionService(nil, false)
	app := fiber.New()

	app.Post("/login", func(c *fiber.Ctx) error {
		return svc.Establish(c, domain.AccountResponse{ID: "acc-1", Role: domain.RoleAdmin})
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, ok, err := svc.Current(c)
		if err != nil {
			return err
		}
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(id.AccountID + "/" + id.Role)
	})
	app.Get("/logout", func(c *fiber.Ctx) error {
		return svc.Destroy(c)
	})

	body := func(resp *http.Response) string {
		b, _ := io.ReadAll(resp.Body)
		return string(b)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(resp))

	// a cookie planted before login must not survive it
	planted := &http.Cookie{Name: CookieName, Value: "attacker-chosen"}
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.AddCookie(planted)
	resp, err = app.Test(req)
	require.NoError(t, err)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.NotEqual(t, planted.Value, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "acc-1/admin", body(resp))

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(planted)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(resp))

	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	_, err = app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(resp))
}
