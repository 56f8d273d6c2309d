// Package auth consumes tokens issued by the external identity provider.
// Session lifecycle (sign-in, refresh, sign-out) lives with the provider;
// this layer only verifies bearer tokens and exposes the user id that
// writes record as created_by.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const userContextKey = "auth.user"

// User is the authenticated caller as seen by this service.
type User struct {
	ID    string
	Email string
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verifier checks provider-issued HMAC tokens.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Parse validates a raw token and extracts the user.
func (v *Verifier) Parse(raw string) (*User, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid || c.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}

	return &User{ID: c.Subject, Email: c.Email}, nil
}

// Middleware guards admin routes: requests without a valid bearer token
// are rejected before reaching the handler.
func (v *Verifier) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			user, err := v.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the authenticated user set by the middleware, nil on
// unauthenticated requests.
func UserFrom(c echo.Context) *User {
	user, _ := c.Get(userContextKey).(*User)
	return user
}
