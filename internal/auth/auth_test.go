package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub, email string, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: email,
	})

	raw, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestVerifierParse(t *testing.T) {
	v := NewVerifier(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		raw := signToken(t, "admin-1", "admin@portal.example.org", testSecret)
		user, err := v.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "admin-1", user.ID)
		assert.Equal(t, "admin@portal.example.org", user.Email)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		raw := signToken(t, "admin-1", "", "other-secret")
		_, err := v.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		raw := signToken(t, "", "", testSecret)
		_, err := v.Parse(raw)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := v.Parse("not-a-token")
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	v := NewVerifier(testSecret)
	e := echo.New()

	handler := v.Middleware()(func(c echo.Context) error {
		user := UserFrom(c)
		require.NotNil(t, user)
		return c.String(http.StatusOK, user.ID)
	})

	t.Run("AuthorizedRequestPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, "admin-1", "", testSecret))
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, "admin-1", rec.Body.String())
	})

	t.Run("MissingTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("InvalidTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
