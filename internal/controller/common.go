package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo"

	"grant-management-portal/internal/middleware"
	"grant-management-portal/internal/service"
)

const genericErrorMessage = "Something went wrong while trying to load this page."

func csrfToken(c echo.Context) string {
	if token, ok := c.Get(middleware.CSRFContextKey).(string); ok {
		return token
	}

	return ""
}

// serviceErrorRedirect sends the user to the generic error page with a readable
// message and a return link instead of a raw 500.
func serviceErrorRedirect(c echo.Context, subPath string, message string) error {
	target := fmt.Sprintf("%s/service-error?message=%s", subPath, url.QueryEscape(message))

	return c.Redirect(http.StatusFound, target)
}

// handleServiceError maps known service errors onto their pages and everything
// else onto the generic error page.
func handleServiceError(c echo.Context, subPath string, err error) error {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrSchemeNotFound),
		errors.Is(err, service.ErrAdvertNotFound):
		return serviceErrorRedirect(c, subPath, "The page you were looking for could not be found.")
	case errors.Is(err, service.ErrGrantNotPublished):
		return c.Redirect(http.StatusFound, subPath+"/grant-is-closed")
	case errors.Is(err, service.ErrSubmissionAlreadyCreated):
		return c.Redirect(http.StatusFound, subPath+"/applications")
	}

	return serviceErrorRedirect(c, subPath, genericErrorMessage)
}
