package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
)

const SessionCookieName = "session_id"

// SessionClaims is the payload of the login provider's session token.
type SessionClaims struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// pages reachable without a session
var openPaths = []string{
	"/service-error",
	"/grant-is-closed",
	"/404",
	"/healthcheck",
}

// Session verifies the session cookie on every request and bounces anonymous
// visitors out to the login provider.
func Session(cfg *config.Config, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, open := range openPaths {
				if c.Request().URL.Path == cfg.SubPath+open {
					return next(c)
				}
			}

			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return c.Redirect(http.StatusFound, cfg.ColaURL)
			}

			claims, err := verifySessionToken(cfg.SessionSecret, cookie.Value)
			if err != nil {
				log.Debug("rejected session cookie", zap.Error(err))

				return c.Redirect(http.StatusFound, cfg.ColaURL)
			}

			c.Set("userId", claims.UserId)

			return next(c)
		}
	}
}

func verifySessionToken(secret string, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

// IssueSessionToken signs a session token. Production sessions come from the
// login provider; this exists for local development and tests.
func IssueSessionToken(secret string, userId string, email string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		UserId: userId,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
