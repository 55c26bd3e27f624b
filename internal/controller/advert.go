package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/service"
)

const msgAdvertIncomplete = "You must complete each section of your advert before publishing"

type advertRoutesHandler struct {
	advertService service.Advert
	subPath       string
	log           *zap.Logger
}

func newAdvertRoutesHandler(outer *echo.Group, services *service.Services, cfg *config.Config, log *zap.Logger) *advertRoutesHandler {
	h := &advertRoutesHandler{
		advertService: services.Advert,
		subPath:       cfg.SubPath,
		log:           log,
	}

	adverts := outer.Group("/adverts", featureGate(cfg))
	adverts.GET("/:advertId", h.GetOverview)
	adverts.GET("/:advertId/sections/:sectionId/questions/:questionId", h.GetQuestionPage)
	adverts.POST("/:advertId/sections/:sectionId/questions/:questionId", h.SaveQuestionPage)
	adverts.GET("/:advertId/sections/:sectionId/award-amounts", h.GetAwardAmounts)
	adverts.POST("/:advertId/sections/:sectionId/award-amounts", h.SaveAwardAmounts)
	adverts.POST("/:advertId/publish", h.Publish)
	adverts.POST("/:advertId/unpublish", h.Unpublish)
	adverts.POST("/:advertId/unschedule", h.Unschedule)
	adverts.POST("/:advertId/delete", h.Delete)

	return h
}

// featureGate hides the advert builder entirely while the flag is off.
func featureGate(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.AdvertBuilderEnabled {
				return c.Redirect(http.StatusFound, cfg.SubPath+"/404")
			}

			return next(c)
		}
	}
}

type advertPageModel struct {
	Advert      *entity.GrantAdvert
	Section     *entity.AdvertSection
	Question    *entity.AdvertQuestion
	PostURL     string
	BackURL     string
	FieldErrors []entity.FieldError
	CSRFToken   string
}

// /adverts/:advertId
func (h *advertRoutesHandler) GetOverview(c echo.Context) error {
	advertId := c.Param("advertId")

	advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "advert_overview.html", advertPageModel{
		Advert:    advert,
		PostURL:   h.subPath + "/adverts/" + advertId + "/publish",
		BackURL:   h.subPath + "/",
		CSRFToken: csrfToken(c),
	})
}

// /adverts/:advertId/sections/:sectionId/questions/:questionId
func (h *advertRoutesHandler) GetQuestionPage(c echo.Context) error {
	advertId, sectionId, questionId := c.Param("advertId"), c.Param("sectionId"), c.Param("questionId")

	advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	section, question := findAdvertQuestion(advert, sectionId, questionId)
	if question == nil {
		return c.Redirect(http.StatusFound, h.subPath+"/404")
	}

	return c.Render(http.StatusOK, "advert_question.html", advertPageModel{
		Advert:    advert,
		Section:   section,
		Question:  question,
		PostURL:   h.subPath + "/adverts/" + advertId + "/sections/" + sectionId + "/questions/" + questionId,
		BackURL:   h.subPath + "/adverts/" + advertId,
		CSRFToken: csrfToken(c),
	})
}

type saveAdvertQuestionInput struct {
	Response  string   `form:"response"`
	Multi     []string `form:"multiResponse"`
	Completed string   `form:"completed"`
}

// /adverts/:advertId/sections/:sectionId/questions/:questionId
func (h *advertRoutesHandler) SaveQuestionPage(c echo.Context) error {
	advertId, sectionId, questionId := c.Param("advertId"), c.Param("sectionId"), c.Param("questionId")

	var input saveAdvertQuestionInput
	if err := c.Bind(&input); err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	result, err := h.advertService.SaveQuestionPage(c.Request().Context(), &service.SaveAdvertQuestionInput{
		AdvertId:   advertId,
		SectionId:  sectionId,
		QuestionId: questionId,
		Response:   input.Response,
		Multi:      input.Multi,
		Completed:  input.Completed,
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		return h.rerenderQuestion(c, advertId, sectionId, questionId, result.FieldErrors)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/adverts/"+advertId)
}

// /adverts/:advertId/sections/:sectionId/award-amounts
func (h *advertRoutesHandler) GetAwardAmounts(c echo.Context) error {
	advertId, sectionId := c.Param("advertId"), c.Param("sectionId")

	advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "advert_award_amounts.html", advertPageModel{
		Advert:    advert,
		PostURL:   h.subPath + "/adverts/" + advertId + "/sections/" + sectionId + "/award-amounts",
		BackURL:   h.subPath + "/adverts/" + advertId,
		CSRFToken: csrfToken(c),
	})
}

type awardAmountsInput struct {
	TotalAmount string `form:"grantTotalAwardAmount"`
	MaxAward    string `form:"grantMaximumAward"`
	MinAward    string `form:"grantMinimumAward"`
	Completed   string `form:"completed"`
}

// /adverts/:advertId/sections/:sectionId/award-amounts
func (h *advertRoutesHandler) SaveAwardAmounts(c echo.Context) error {
	advertId, sectionId := c.Param("advertId"), c.Param("sectionId")

	var input awardAmountsInput
	if err := c.Bind(&input); err != nil {
		return serviceErrorRedirect(c, h.subPath, genericErrorMessage)
	}

	result, err := h.advertService.SaveAwardAmounts(c.Request().Context(), &service.SaveAwardAmountsInput{
		AdvertId:    advertId,
		SectionId:   sectionId,
		TotalAmount: input.TotalAmount,
		MaxAward:    input.MaxAward,
		MinAward:    input.MinAward,
		Completed:   input.Completed,
	})
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	if result.HasErrors() {
		advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
		if err != nil {
			return handleServiceError(c, h.subPath, err)
		}

		return c.Render(http.StatusOK, "advert_award_amounts.html", advertPageModel{
			Advert:      advert,
			PostURL:     h.subPath + "/adverts/" + advertId + "/sections/" + sectionId + "/award-amounts",
			BackURL:     h.subPath + "/adverts/" + advertId,
			FieldErrors: result.FieldErrors,
			CSRFToken:   csrfToken(c),
		})
	}

	return c.Redirect(http.StatusFound, h.subPath+"/adverts/"+advertId)
}

// /adverts/:advertId/publish
func (h *advertRoutesHandler) Publish(c echo.Context) error {
	advertId := c.Param("advertId")

	err := h.advertService.Publish(c.Request().Context(), advertId)
	if errors.Is(err, service.ErrAdvertIncomplete) {
		return h.rerenderOverview(c, advertId, []entity.FieldError{
			{FieldName: "publish", ErrorMessage: msgAdvertIncomplete},
		})
	}
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/adverts/"+advertId)
}

// /adverts/:advertId/unpublish
func (h *advertRoutesHandler) Unpublish(c echo.Context) error {
	advertId := c.Param("advertId")

	if err := h.advertService.Unpublish(c.Request().Context(), advertId); err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/adverts/"+advertId)
}

// /adverts/:advertId/unschedule
func (h *advertRoutesHandler) Unschedule(c echo.Context) error {
	advertId := c.Param("advertId")

	if err := h.advertService.Unschedule(c.Request().Context(), advertId); err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/adverts/"+advertId)
}

// /adverts/:advertId/delete
func (h *advertRoutesHandler) Delete(c echo.Context) error {
	if err := h.advertService.DeleteAdvert(c.Request().Context(), c.Param("advertId")); err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Redirect(http.StatusFound, h.subPath+"/")
}

func (h *advertRoutesHandler) rerenderOverview(c echo.Context, advertId string, fieldErrors []entity.FieldError) error {
	advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	return c.Render(http.StatusOK, "advert_overview.html", advertPageModel{
		Advert:      advert,
		PostURL:     h.subPath + "/adverts/" + advertId + "/publish",
		BackURL:     h.subPath + "/",
		FieldErrors: fieldErrors,
		CSRFToken:   csrfToken(c),
	})
}

func (h *advertRoutesHandler) rerenderQuestion(c echo.Context, advertId string, sectionId string, questionId string, fieldErrors []entity.FieldError) error {
	advert, err := h.advertService.GetOverview(c.Request().Context(), advertId)
	if err != nil {
		return handleServiceError(c, h.subPath, err)
	}

	section, question := findAdvertQuestion(advert, sectionId, questionId)

	return c.Render(http.StatusOK, "advert_question.html", advertPageModel{
		Advert:      advert,
		Section:     section,
		Question:    question,
		PostURL:     h.subPath + "/adverts/" + advertId + "/sections/" + sectionId + "/questions/" + questionId,
		BackURL:     h.subPath + "/adverts/" + advertId,
		FieldErrors: fieldErrors,
		CSRFToken:   csrfToken(c),
	})
}

func findAdvertQuestion(advert *entity.GrantAdvert, sectionId string, questionId string) (*entity.AdvertSection, *entity.AdvertQuestion) {
	for i := range advert.Sections {
		if advert.Sections[i].Id != sectionId {
			continue
		}
		for j := range advert.Sections[i].Questions {
			if advert.Sections[i].Questions[j].Id == questionId {
				return &advert.Sections[i], &advert.Sections[i].Questions[j]
			}
		}
	}

	return nil, nil
}
