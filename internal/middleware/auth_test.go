package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freshpack-backend/internal/config"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, tokens service.TokenManager, header string, mws ...echo.MiddlewareFunc) (service.Actor, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	var actor service.Actor
	h := func(c echo.Context) error {
		actor = Actor(c)
		return c.NoContent(http.StatusOK)
	}

	chain := append([]echo.MiddlewareFunc{Auth(tokens)}, mws...)
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return actor, h(c)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestAuth(t *testing.T) {
	tokens := service.NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})
	token, err := tokens.Issue(&model.User{ID: 42, Email: "c@example.com", Role: model.RoleCustomer})
	require.NoError(t, err)

	_, err = run(t, tokens, "")
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	_, err = run(t, tokens, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, httpCode(t, err))

	_, err = run(t, tokens, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	actor, err := run(t, tokens, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, service.Actor{ID: 42, Role: model.RoleCustomer}, actor)
}

func TestRequireAdmin(t *testing.T) {
	tokens := service.NewTokenManager(config.JWT{Secret: "s", TTL: time.Hour})
	customer, err := tokens.Issue(&model.User{ID: 1, Role: model.RoleCustomer})
	require.NoError(t, err)
	admin, err := tokens.Issue(&model.User{ID: 2, Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = run(t, tokens, "Bearer "+customer, RequireAdmin())
	assert.Equal(t, http.StatusForbidden, httpCode(t, err))

	actor, err := run(t, tokens, "Bearer "+admin, RequireAdmin())
	require.NoError(t, err)
	assert.True(t, actor.IsAdmin())
}
