package presenters

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Go-Recipe-Share/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[domain.ErrorKind]int{
		domain.KindValidation: http.StatusBadRequest,
		domain.KindAuth:       http.StatusUnauthorized,
		domain.KindForbidden:  http.StatusForbidden,
		domain.KindNotFound:   http.StatusNotFound,
		domain.KindConflict:   http.StatusConflict,
		domain.KindInternal:   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, StatusFor(kind), kind.String())
	}
	assert.Equal(t, http.StatusInternalServerError, StatusFor(domain.KindOf(errors.New("db down"))))
}

func TestErrorResponse_Details(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusBadRequest, "failed", domain.NewValidationError("a is required", "b is invalid"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "failed", body.Message)
	assert.Equal(t, domain.MessageInvalidInput, body.Error)
	assert.Equal(t, []string{"a is required", "b is invalid"}, body.Errors)
}

func TestWantsJSON(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		if WantsJSON(c) {
			return c.SendString("json")
		}
		return c.SendString("html")
	})

	check := func(header, value, want string) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if header != "" {
			req.Header.Set(header, value)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, want, string(b), header)
	}

	check("", "", "html")
	check("Accept", "text/html,application/json;q=0.9", "json")
	check("Content-Type", "application/json; charset=utf-8", "json")
	check("X-Requested-With", "XMLHttpRequest", "json")
	check("Content-Type", "application/x-www-form-urlencoded", "html")
}
