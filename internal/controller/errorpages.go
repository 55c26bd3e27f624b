package controller

import (
	"net/http"

	"github.com/labstack/echo"

	"grant-management-portal/internal/config"
)

type errorPagesHandler struct {
	subPath string
}

func newErrorPagesHandler(outer *echo.Group, cfg *config.Config) *errorPagesHandler {
	h := &errorPagesHandler{subPath: cfg.SubPath}

	outer.GET("/service-error", h.ServiceError)
	outer.GET("/grant-is-closed", h.GrantIsClosed)
	outer.GET("/404", h.NotFound)
	outer.GET("/healthcheck", h.Healthcheck)

	return h
}

type errorPageModel struct {
	Message   string
	ReturnURL string
}

// /service-error
func (h *errorPagesHandler) ServiceError(c echo.Context) error {
	message := c.QueryParam("message")
	if message == "" {
		message = genericErrorMessage
	}

	return c.Render(http.StatusOK, "service_error.html", errorPageModel{
		Message:   message,
		ReturnURL: h.subPath + "/",
	})
}

// /grant-is-closed
func (h *errorPagesHandler) GrantIsClosed(c echo.Context) error {
	return c.Render(http.StatusOK, "grant_is_closed.html", errorPageModel{
		ReturnURL: h.subPath + "/applications",
	})
}

// /404
func (h *errorPagesHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "not_found.html", errorPageModel{
		ReturnURL: h.subPath + "/",
	})
}

// /healthcheck
func (h *errorPagesHandler) Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, "ok")
}
