package controller

import (
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
	"grant-management-portal/internal/service"
)

type mandatoryQuestionRoutesHandler struct {
	mandatoryService service.MandatoryQuestion
	nav              *navigation.Resolver
	subPath          string
	log              *zap.Logger
}

func newMandatoryQuestionRoutesHandler(outer *echo.Group, services *service.Services, resolver *navigation.Resolver, cfg *config.Config, log *zap.Logger) *mandatoryQuestionRoutesHandler {
	h := &mandatoryQuestionRoutesHandler{
		mandatoryService: services.MandatoryQuestion,
		nav:              resolver,
		subPath:          cfg.SubPath,
		log:              log,
	}

	outer.GET("/mandatory-questions/:mandatoryId", h.GetPage)
	outer.POST("/mandatory-questions/:mandatoryId", h.PostPage)
	outer.GET("/mandatory-questions/:mandatoryId/organisation-summary", h.GetSummary)
	outer.GET("/submissions/:submissionId/mandatory-questions", h.GetForSubmission)

	return h
}

type mandatoryPageModel struct {
	Questions   *entity.MandatoryQuestions
	PostURL     string
	FieldErrors []entity.FieldError
	CSRFToken   string
}

// /mandatory-questions/:mandatoryId
func (h *mandatoryQuestionRoutesHandler) GetPage(c echo.Context) error {
	mandatoryId := c.Param("mandatoryId")

	questions, err := h.mandatoryService.GetPage(c.Request().Context(), mandatoryId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "mandatory_question.html", mandatoryPageModel{
		Questions: questions,
		PostURL:   h.subPath + "/mandatory-questions/" + mandatoryId,
		CSRFToken: csrfToken(c),
	})
}

// /mandatory-questions/:mandatoryId
func (h *mandatoryQuestionRoutesHandler) PostPage(c echo.Context) error {
	mandatoryId := c.Param("mandatoryId")

	body, err := c.FormParams()
	if err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	result, err := h.mandatoryService.SaveAndNavigate(c.Request().Context(), &service.SaveMandatoryInput{
		MandatoryId: mandatoryId,
		Body:        body,
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		questions, err := h.mandatoryService.GetPage(c.Request().Context(), mandatoryId)
		if err != nil {
			return handleServiceError(c, h.subPath, err)
		}

		return c.Render(http.StatusOK, "mandatory_question.html", mandatoryPageModel{
			Questions:   questions,
			PostURL:     h.subPath + "/mandatory-questions/" + mandatoryId,
			FieldErrors: result.FieldErrors,
			CSRFToken:   csrfToken(c),
		})
	}

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

// /submissions/:submissionId/mandatory-questions
//
// Entry point from a submission: looks up the question set the submission
// belongs to and sends the applicant to its first page.
func (h *mandatoryQuestionRoutesHandler) GetForSubmission(c echo.Context) error {
	questions, err := h.mandatoryService.GetBySubmission(c.Request().Context(), c.Param("submissionId"))
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/mandatory-questions/"+questions.Id)
}

// /mandatory-questions/:mandatoryId/organisation-summary
func (h *mandatoryQuestionRoutesHandler) GetSummary(c echo.Context) error {
	mandatoryId := c.Param("mandatoryId")

	questions, err := h.mandatoryService.GetPage(c.Request().Context(), mandatoryId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "organisation_summary.html", mandatoryPageModel{
		Questions: questions,
		PostURL:   h.subPath + "/mandatory-questions/" + mandatoryId,
		CSRFToken: csrfToken(c),
	})
}
