package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
	"grant-management-portal/internal/service"
)

type submissionRoutesHandler struct {
	submissionService service.Submission
	nav               *navigation.Resolver
	subPath           string
	validate          *validator.Validate
	log               *zap.Logger
}

func newSubmissionRoutesHandler(outer *echo.Group, services *service.Services, resolver *navigation.Resolver, cfg *config.Config, log *zap.Logger) *submissionRoutesHandler {
	h := &submissionRoutesHandler{
		submissionService: services.Submission,
		nav:               resolver,
		subPath:           cfg.SubPath,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		log:               log,
	}

	outer.GET("/applications/:applicationId", h.StartApplication)
	outer.GET("/submissions/:submissionId/sections", h.GetSectionList)
	outer.GET("/submissions/:submissionId/sections/:sectionId", h.GetSectionSummary)
	outer.POST("/submissions/:submissionId/sections/:sectionId/review", h.ReviewSection)
	outer.GET("/submissions/:submissionId/summary", h.GetSummary)
	outer.POST("/submissions/:submissionId/submit", h.Submit)
	outer.GET("/submissions/:submissionId/confirmation", h.Confirmation)
	outer.GET("/submissions/:submissionId/download-summary", h.DownloadSummary)

	return h
}

// /applications/:applicationId
//
// Entry point from the public listing: creates the submission (or finds the
// blocker) and drops the applicant into the section list.
func (h *submissionRoutesHandler) StartApplication(c echo.Context) error {
	applicationId := c.Param("applicationId")

	submissionId, err := h.submissionService.CreateSubmission(c.Request().Context(), applicationId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.nav.SectionListURL(submissionId))
}

type sectionListPageModel struct {
	Submission *entity.Submission
	Sections   []sectionListEntry
	SummaryURL string
	CSRFToken  string
}

type sectionListEntry struct {
	Section          entity.Section
	FirstQuestionURL string
}

// /submissions/:submissionId/sections
func (h *submissionRoutesHandler) GetSectionList(c echo.Context) error {
	submissionId := c.Param("submissionId")

	submission, err := h.submissionService.GetSectionList(c.Request().Context(), submissionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	sections := make([]sectionListEntry, 0, len(submission.Sections))
	for _, section := range submission.Sections {
		entry := sectionListEntry{Section: section}
		if len(section.Questions) > 0 {
			entry.FirstQuestionURL = h.nav.QuestionURL(submissionId, section.Id, section.Questions[0])
		}
		sections = append(sections, entry)
	}

	return c.Render(http.StatusOK, "section_list.html", sectionListPageModel{
		Submission: submission,
		Sections:   sections,
		SummaryURL: h.nav.SummaryURL(submissionId),
		CSRFToken:  csrfToken(c),
	})
}

type sectionSummaryPageModel struct {
	SubmissionId string
	Section      *entity.SectionSummary
	QuestionURLs map[string]string
	ReviewURL    string
	BackURL      string
	CSRFToken    string
}

// /submissions/:submissionId/sections/:sectionId
//
// The check-your-answers page: every question in the section with a change link.
func (h *submissionRoutesHandler) GetSectionSummary(c echo.Context) error {
	submissionId, sectionId := c.Param("submissionId"), c.Param("sectionId")

	section, err := h.submissionService.GetSectionSummary(c.Request().Context(), submissionId, sectionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	questionURLs := make(map[string]string, len(section.Questions))
	for _, question := range section.Questions {
		questionURLs[question.Id] = h.nav.QuestionURL(submissionId, sectionId, question.Id) + "?" + navigation.FromCYAField + "=true"
	}

	return c.Render(http.StatusOK, "section_summary.html", sectionSummaryPageModel{
		SubmissionId: submissionId,
		Section:      section,
		QuestionURLs: questionURLs,
		ReviewURL:    h.nav.SectionURL(submissionId, sectionId) + "/review",
		BackURL:      h.nav.SectionListURL(submissionId),
		CSRFToken:    csrfToken(c),
	})
}

type reviewSectionInput struct {
	IsComplete string `form:"isComplete" validate:"required,oneof=Yes No"`
}

// /submissions/:submissionId/sections/:sectionId/review
func (h *submissionRoutesHandler) ReviewSection(c echo.Context) error {
	submissionId, sectionId := c.Param("submissionId"), c.Param("sectionId")

	var input reviewSectionInput
	if err := c.Bind(&input); err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}
	if err := h.validate.Struct(input); err != nil {
		// the radio was not selected; back to the summary to pick one
		return c.Redirect(http.StatusFound, h.nav.SectionURL(submissionId, sectionId))
	}

	redirectURL, err := h.submissionService.ReviewSection(c.Request().Context(), submissionId, sectionId, input.IsComplete == "Yes")
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, redirectURL)
}

type summaryPageModel struct {
	Submission  *entity.Submission
	SubmitURL   string
	DownloadURL string
	BackURL     string
	CSRFToken   string
}

// /submissions/:submissionId/summary
func (h *submissionRoutesHandler) GetSummary(c echo.Context) error {
	submissionId := c.Param("submissionId")

	submission, err := h.submissionService.GetSectionList(c.Request().Context(), submissionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "submission_summary.html", summaryPageModel{
		Submission:  submission,
		SubmitURL:   h.subPath + "/submissions/" + submissionId + "/submit",
		DownloadURL: h.subPath + "/submissions/" + submissionId + "/download-summary",
		BackURL:     h.nav.SectionListURL(submissionId),
		CSRFToken:   csrfToken(c),
	})
}

// /submissions/:submissionId/submit
func (h *submissionRoutesHandler) Submit(c echo.Context) error {
	submissionId := c.Param("submissionId")

	err := h.submissionService.Submit(c.Request().Context(), submissionId)
	if err == nil || errors.Is(err, service.ErrAlreadySubmitted) {
		return c.Redirect(http.StatusFound, h.subPath+"/submissions/"+submissionId+"/confirmation")
	}

	if errors.Is(err, service.ErrSubmissionNotReady) {
		return c.Redirect(http.StatusFound, h.nav.SectionListURL(submissionId))
	}

	return handleServiceError(c, h.subPath, err)
}

// /submissions/:submissionId/confirmation
func (h *submissionRoutesHandler) Confirmation(c echo.Context) error {
	return c.Render(http.StatusOK, "confirmation.html", errorPageModel{
		ReturnURL: h.subPath + "/applications",
	})
}

// /submissions/:submissionId/download-summary
func (h *submissionRoutesHandler) DownloadSummary(c echo.Context) error {
	submissionId := c.Param("submissionId")

	summary, err := h.submissionService.DownloadSummary(c.Request().Context(), submissionId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="submission.zip"`)

	return c.Blob(http.StatusOK, "application/zip", summary)
}
