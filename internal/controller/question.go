package controller

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
	"grant-management-portal/internal/service"
)

type questionRoutesHandler struct {
	submissionService service.Submission
	nav               *navigation.Resolver
	subPath           string
	log               *zap.Logger
}

func newQuestionRoutesHandler(outer *echo.Group, services *service.Services, resolver *navigation.Resolver, cfg *config.Config, log *zap.Logger) *questionRoutesHandler {
	h := &questionRoutesHandler{
		submissionService: services.Submission,
		nav:               resolver,
		subPath:           cfg.SubPath,
		log:               log,
	}

	outer.GET("/submissions/:submissionId/sections/:sectionId/questions/:questionId", h.GetQuestion)
	outer.POST("/submissions/:submissionId/sections/:sectionId/questions/:questionId", h.PostQuestion)
	outer.POST("/submissions/:submissionId/sections/:sectionId/questions/:questionId/upload", h.PostUpload)
	outer.POST("/submissions/:submissionId/sections/:sectionId/questions/:questionId/attachments/:attachmentId/remove", h.RemoveAttachment)

	return h
}

type questionPageModel struct {
	SubmissionId string
	SectionId    string
	Page         *service.QuestionPage
	PostURL      string
	FromCYA      bool
	FieldErrors  []entity.FieldError
	Previous     url.Values
	CSRFToken    string
}

// /submissions/:submissionId/sections/:sectionId/questions/:questionId
func (h *questionRoutesHandler) GetQuestion(c echo.Context) error {
	submissionId, sectionId, questionId := c.Param("submissionId"), c.Param("sectionId"), c.Param("questionId")

	page, err := h.submissionService.GetQuestionPage(c.Request().Context(), submissionId, sectionId, questionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "question.html", questionPageModel{
		SubmissionId: submissionId,
		SectionId:    sectionId,
		Page:         page,
		PostURL:      h.nav.QuestionURL(submissionId, sectionId, questionId),
		FromCYA:      h.isFromCYA(c, submissionId, sectionId),
		CSRFToken:    csrfToken(c),
	})
}

// /submissions/:submissionId/sections/:sectionId/questions/:questionId
//
// Validation failures re-render the page with the applicant's values echoed back;
// success redirects wherever the navigation resolver decides.
func (h *questionRoutesHandler) PostQuestion(c echo.Context) error {
	submissionId, sectionId, questionId := c.Param("submissionId"), c.Param("sectionId"), c.Param("questionId")

	body, err := c.FormParams()
	if err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	result, err := h.submissionService.SaveQuestion(c.Request().Context(), &service.SaveQuestionInput{
		SubmissionId: submissionId,
		SectionId:    sectionId,
		QuestionId:   questionId,
		Body:         body,
		FromCYA:      h.isFromCYA(c, submissionId, sectionId),
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		return h.renderWithErrors(c, submissionId, sectionId, questionId, result)
	}

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

// /submissions/:submissionId/sections/:sectionId/questions/:questionId/upload
func (h *questionRoutesHandler) PostUpload(c echo.Context) error {
	submissionId, sectionId, questionId := c.Param("submissionId"), c.Param("sectionId"), c.Param("questionId")

	body, err := c.FormParams()
	if err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	// FormFile errors just mean no file was attached; the service decides whether
	// that is acceptable for this question.
	file, _ := c.FormFile("attachment")

	result, err := h.submissionService.UploadAttachment(c.Request().Context(), &service.UploadAttachmentInput{
		SubmissionId: submissionId,
		SectionId:    sectionId,
		QuestionId:   questionId,
		Body:         body,
		File:         file,
		FromCYA:      h.isFromCYA(c, submissionId, sectionId),
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		return h.renderWithErrors(c, submissionId, sectionId, questionId, result)
	}

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

// /submissions/:submissionId/sections/:sectionId/questions/:questionId/attachments/:attachmentId/remove
func (h *questionRoutesHandler) RemoveAttachment(c echo.Context) error {
	submissionId, sectionId, questionId := c.Param("submissionId"), c.Param("sectionId"), c.Param("questionId")

	redirectURL, err := h.submissionService.RemoveAttachment(c.Request().Context(), submissionId, sectionId, questionId, c.Param("attachmentId"))
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, redirectURL)
}

func (h *questionRoutesHandler) renderWithErrors(c echo.Context, submissionId string, sectionId string, questionId string, result *service.SaveQuestionResult) error {
	page, err := h.submissionService.GetQuestionPage(c.Request().Context(), submissionId, sectionId, questionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "question.html", questionPageModel{
		SubmissionId: submissionId,
		SectionId:    sectionId,
		Page:         page,
		PostURL:      h.nav.QuestionURL(submissionId, sectionId, questionId),
		FromCYA:      h.isFromCYA(c, submissionId, sectionId),
		FieldErrors:  result.FieldErrors,
		Previous:     result.PreviousValues,
		CSRFToken:    csrfToken(c),
	})
}

// isFromCYA detects a check-your-answers origin: a hidden form field first, then
// the query parameter, then the referer as a last resort.
func (h *questionRoutesHandler) isFromCYA(c echo.Context, submissionId string, sectionId string) bool {
	if c.FormValue(navigation.FromCYAField) == "true" {
		return true
	}
	if c.QueryParam(navigation.FromCYAField) == "true" {
		return true
	}

	referer := c.Request().Header.Get("Referer")

	return referer != "" && strings.HasSuffix(referer, h.nav.SectionURL(submissionId, sectionId))
}
