package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/require"

	"grant-management-portal/pkg/render"
)

// newTestContext builds an echo context with the real page templates attached,
// so handlers that re-render on error can be exercised end to end.
func newTestContext(t *testing.T, method string, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	renderer, err := render.New("../../templates")
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	req := httptest.NewRequest(method, target, nil)
	if method == http.MethodPost {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}
