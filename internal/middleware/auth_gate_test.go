package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/internal/identity"
)

type stubProvider struct {
	identity.Provider
	tokens map[string]identity.Identity
}

func (p stubProvider) ResolveToken(_ context.Context, token string) (identity.Identity, error) {
	id, ok := p.tokens[token]
	if !ok {
		return identity.Identity{}, identity.ErrUnauthorized
	}
	return id, nil
}

func newGateApp(p identity.Provider) *fiber.App {
	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		if id := IdentityFrom(c); id != nil {
			return c.SendString(id.ID)
		}
		return c.SendString("anonymous")
	}
	app.Get("/required", RequireAuth(p), whoami)
	app.Get("/optional", OptionalAuth(p), whoami)
	return app
}

func call(t *testing.T, app *fiber.App, path, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	app := newGateApp(stubProvider{tokens: map[string]identity.Identity{"good": {ID: "u1"}}})

	status, body := call(t, app, "/required", "Bearer good")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u1", body)

	status, body = call(t, app, "/required", "bearer good")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "u1", body)

	for _, auth := range []string{"", "Bearer bad", "good", "Basic good"} {
		status, body = call(t, app, "/required", auth)
		assert.Equal(t, http.StatusUnauthorized, status, auth)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, body)
	}
}

func TestOptionalAuth(t *testing.T) {
	app := newGateApp(stubProvider{tokens: map[string]identity.Identity{"good": {ID: "u1"}}})

	_, body := call(t, app, "/optional", "Bearer good")
	assert.Equal(t, "u1", body)

	status, body := call(t, app, "/optional", "Bearer bad")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}
