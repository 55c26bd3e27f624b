package controller

import (
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/service"
)

type schemeRoutesHandler struct {
	schemeService service.Scheme
	subPath       string
	log           *zap.Logger
}

func newSchemeRoutesHandler(outer *echo.Group, services *service.Services, cfg *config.Config, log *zap.Logger) *schemeRoutesHandler {
	h := &schemeRoutesHandler{
		schemeService: services.Scheme,
		subPath:       cfg.SubPath,
		log:           log,
	}

	outer.GET("/new-scheme", h.NewScheme)
	outer.POST("/new-scheme", h.CreateScheme)
	outer.GET("/schemes/:schemeId", h.GetScheme)
	outer.GET("/schemes/:schemeId/edit/:field", h.EditField)
	outer.POST("/schemes/:schemeId/edit/:field", h.SaveField)
	outer.POST("/schemes/:schemeId/delete", h.DeleteScheme)
	outer.POST("/application-forms/:applicationId/delete", h.DeleteApplicationForm)

	return h
}

type schemePageModel struct {
	Scheme      *entity.Scheme
	Field       string
	PostURL     string
	BackURL     string
	FieldErrors []entity.FieldError
	CSRFToken   string
}

// /new-scheme
func (h *schemeRoutesHandler) NewScheme(c echo.Context) error {
	return c.Render(http.StatusOK, "scheme_form.html", schemePageModel{
		PostURL:   h.subPath + "/new-scheme",
		BackURL:   h.subPath + "/",
		CSRFToken: csrfToken(c),
	})
}

type createSchemeInput struct {
	Name          string `form:"name"`
	GGISReference string `form:"ggisReference"`
	ContactEmail  string `form:"contactEmail"`
}

// /new-scheme
func (h *schemeRoutesHandler) CreateScheme(c echo.Context) error {
	var input createSchemeInput
	if err := c.Bind(&input); err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	result, err := h.schemeService.CreateScheme(c.Request().Context(), &service.SchemeForm{
		Name:          input.Name,
		GGISReference: input.GGISReference,
		ContactEmail:  input.ContactEmail,
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		return c.Render(http.StatusOK, "scheme_form.html", schemePageModel{
			Scheme:      &entity.Scheme{Name: input.Name, GGISReference: input.GGISReference, ContactEmail: input.ContactEmail},
			PostURL:     h.subPath + "/new-scheme",
			BackURL:     h.subPath + "/",
			FieldErrors: result.FieldErrors,
			CSRFToken:   csrfToken(c),
		})
	}

	return c.Redirect(http.StatusFound, h.subPath+"/schemes/"+result.SchemeId)
}

// /schemes/:schemeId
//
// Summary page showing the scheme's final values before confirmation.
func (h *schemeRoutesHandler) GetScheme(c echo.Context) error {
	schemeId := c.Param("schemeId")

	scheme, err := h.schemeService.GetScheme(c.Request().Context(), schemeId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "scheme_summary.html", schemePageModel{
		Scheme:    scheme,
		PostURL:   h.subPath + "/schemes/" + schemeId + "/delete",
		BackURL:   h.subPath + "/",
		CSRFToken: csrfToken(c),
	})
}

// /schemes/:schemeId/edit/:field
func (h *schemeRoutesHandler) EditField(c echo.Context) error {
	schemeId, field := c.Param("schemeId"), c.Param("field")

	scheme, err := h.schemeService.GetScheme(c.Request().Context(), schemeId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "scheme_edit.html", schemePageModel{
		Scheme:    scheme,
		Field:     field,
		PostURL:   h.subPath + "/schemes/" + schemeId + "/edit/" + field,
		BackURL:   h.subPath + "/schemes/" + schemeId,
		CSRFToken: csrfToken(c),
	})
}

// /schemes/:schemeId/edit/:field
func (h *schemeRoutesHandler) SaveField(c echo.Context) error {
	schemeId, field := c.Param("schemeId"), c.Param("field")
	value := c.FormValue(field)

	var result *service.SchemeResult
	var err error
	switch field {
	case "name":
		result, err = h.schemeService.EditName(c.Request().Context(), schemeId, value)
	case "ggisReference":
		result, err = h.schemeService.EditGGISReference(c.Request().Context(), schemeId, value)
	case "contactEmail":
		result, err = h.schemeService.EditContactEmail(c.Request().Context(), schemeId, value)
	default:
		return c.Redirect(http.StatusFound, h.subPath+"/404")
	}
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		scheme, err := h.schemeService.GetScheme(c.Request().Context(), schemeId)
		if err != nil {
			return handleServiceError(c, h.subPath, err)
		}

		return c.Render(http.StatusOK, "scheme_edit.html", schemePageModel{
			Scheme:      scheme,
			Field:       field,
			PostURL:     h.subPath + "/schemes/" + schemeId + "/edit/" + field,
			BackURL:     h.subPath + "/schemes/" + schemeId,
			FieldErrors: result.FieldErrors,
			CSRFToken:   csrfToken(c),
		})
	}

	return c.Redirect(http.StatusFound, h.subPath+"/schemes/"+schemeId)
}

// /schemes/:schemeId/delete
func (h *schemeRoutesHandler) DeleteScheme(c echo.Context) error {
	if err := h.schemeService.DeleteScheme(c.Request().Context(), c.Param("schemeId")); err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/")
}

// /application-forms/:applicationId/delete
//
// Removes a scheme's application form. The schemeId form value, when present,
// routes the admin back to the scheme they were editing.
func (h *schemeRoutesHandler) DeleteApplicationForm(c echo.Context) error {
	if err := h.schemeService.DeleteApplicationForm(c.Request().Context(), c.Param("applicationId")); err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if schemeId := c.FormValue("schemeId"); schemeId != "" {
		return c.Redirect(http.StatusFound, h.subPath+"/schemes/"+schemeId)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/")
}
