package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/service"
)

type fakeSchemeService struct {
	deletedFormId string
	deleteFormErr error
}

func (f *fakeSchemeService) CreateScheme(ctx context.Context, form *service.SchemeForm) (*service.SchemeResult, error) {
	return &service.SchemeResult{}, nil
}

func (f *fakeSchemeService) GetScheme(ctx context.Context, schemeId string) (*entity.Scheme, error) {
	return &entity.Scheme{Id: schemeId}, nil
}

func (f *fakeSchemeService) EditName(ctx context.Context, schemeId string, name string) (*service.SchemeResult, error) {
	return &service.SchemeResult{SchemeId: schemeId}, nil
}

func (f *fakeSchemeService) EditGGISReference(ctx context.Context, schemeId string, reference string) (*service.SchemeResult, error) {
	return &service.SchemeResult{SchemeId: schemeId}, nil
}

func (f *fakeSchemeService) EditContactEmail(ctx context.Context, schemeId string, email string) (*service.SchemeResult, error) {
	return &service.SchemeResult{SchemeId: schemeId}, nil
}

func (f *fakeSchemeService) DeleteScheme(ctx context.Context, schemeId string) error {
	return nil
}

func (f *fakeSchemeService) DeleteApplicationForm(ctx context.Context, applicationId string) error {
	if f.deleteFormErr != nil {
		return f.deleteFormErr
	}
	f.deletedFormId = applicationId

	return nil
}

func postFormContext(t *testing.T, target string, form string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestSchemeRoutesHandler_DeleteApplicationForm(t *testing.T) {
	t.Run("deletes the form and returns to the scheme", func(t *testing.T) {
		fake := &fakeSchemeService{}
		h := &schemeRoutesHandler{schemeService: fake, subPath: "", log: zap.NewNop()}

		c, rec := postFormContext(t, "/application-forms/app1/delete", "schemeId=sch1")
		c.SetParamNames("applicationId")
		c.SetParamValues("app1")

		require.NoError(t, h.DeleteApplicationForm(c))
		assert.Equal(t, "app1", fake.deletedFormId)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/schemes/sch1", rec.Header().Get("Location"))
	})

	t.Run("falls back to the dashboard without a scheme id", func(t *testing.T) {
		fake := &fakeSchemeService{}
		h := &schemeRoutesHandler{schemeService: fake, subPath: "", log: zap.NewNop()}

		c, rec := postFormContext(t, "/application-forms/app1/delete", "")
		c.SetParamNames("applicationId")
		c.SetParamValues("app1")

		require.NoError(t, h.DeleteApplicationForm(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("a missing form lands on the error page", func(t *testing.T) {
		fake := &fakeSchemeService{deleteFormErr: service.ErrSchemeNotFound}
		h := &schemeRoutesHandler{schemeService: fake, subPath: "", log: zap.NewNop()}

		c, rec := postFormContext(t, "/application-forms/missing/delete", "")
		c.SetParamNames("applicationId")
		c.SetParamValues("missing")

		require.NoError(t, h.DeleteApplicationForm(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "/service-error")
	})
}
