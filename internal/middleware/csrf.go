package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo"

	"grant-management-portal/internal/config"
)

const (
	CSRFCookieName = "csrf_token"
	CSRFFormField  = "_csrf"
	// context key templates read the token back out of
	CSRFContextKey = "csrfToken"
)

// CSRF issues a token cookie on safe requests and verifies the echoed form field
// on mutating ones. The cookie is strict-same-site and httpOnly; pages must carry
// the token in a hidden field.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				token := issueToken(c, cfg)
				c.Set(CSRFContextKey, token)

				return next(c)
			}

			cookie, err := c.Cookie(CSRFCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "missing CSRF token")
			}

			submitted := c.FormValue(CSRFFormField)
			if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(submitted)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "invalid CSRF token")
			}

			c.Set(CSRFContextKey, cookie.Value)

			return next(c)
		}
	}
}

func issueToken(c echo.Context, cfg *config.Config) string {
	if cookie, err := c.Cookie(CSRFCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	token := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cfg.MaxCookieAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return token
}
