package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
)

// award-amount field names as posted by the advert builder
const (
	FieldTotalAmount   = "grantTotalAwardAmount"
	FieldMaximumAward  = "grantMaximumAward"
	FieldMinimumAward  = "grantMinimumAward"
	awardAmountsPageId = "grantAwardAmountsPage"
)

const advertDateLayout = "2006-01-02"

type AdvertService struct {
	adverts backend.Advert
	log     *zap.Logger
}

func NewAdvertService(clients *backend.Clients, log *zap.Logger) *AdvertService {
	return &AdvertService{
		adverts: clients.Advert,
		log:     log,
	}
}

func (s *AdvertService) GetOverview(ctx context.Context, advertId string) (*entity.GrantAdvert, error) {
	advert, err := s.adverts.GetAdvert(ctx, advertId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrAdvertNotFound
		}

		return nil, err
	}

	return advert, nil
}

type SaveAdvertQuestionInput struct {
	AdvertId   string
	SectionId  string
	QuestionId string
	Response   string
	Multi      []string
	Completed  string // the "have you completed this question?" radio: Yes / No
}

// SaveAdvertResult either redirects back to the section overview or re-renders
// the page with field errors.
type SaveAdvertResult struct {
	Section     *entity.AdvertSection
	FieldErrors []entity.FieldError
}

func (r *SaveAdvertResult) HasErrors() bool {
	return len(r.FieldErrors) > 0
}

// SaveQuestionPage saves one advert question. The completed radio drives the
// status tag: Yes marks the question Completed once its own validation passes,
// No with any content leaves it In Progress.
func (s *AdvertService) SaveQuestionPage(ctx context.Context, input *SaveAdvertQuestionInput) (*SaveAdvertResult, error) {
	if input.Completed == "" {
		return &SaveAdvertResult{FieldErrors: []entity.FieldError{{
			FieldName:    "completed",
			ErrorMessage: "Select 'Yes, I've completed this question', or 'No, I'll come back later'",
		}}}, nil
	}

	section, err := s.adverts.SaveQuestionPage(ctx, input.AdvertId, input.SectionId, input.QuestionId, &entity.SaveAdvertPageInput{
		Response:      input.Response,
		MultiResponse: input.Multi,
		Completed:     input.Completed == "Yes",
	})

	var vErr *backend.ValidationError
	if errors.As(err, &vErr) {
		return &SaveAdvertResult{FieldErrors: vErr.FieldErrors}, nil
	}
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrAdvertNotFound
		}

		return nil, err
	}

	return &SaveAdvertResult{Section: section}, nil
}

type SaveAwardAmountsInput struct {
	AdvertId    string
	SectionId   string
	TotalAmount string
	MaxAward    string
	MinAward    string
	Completed   string
}

// SaveAwardAmounts validates the three award figures before anything is sent to
// the backend; only a fully valid set can complete the section.
func (s *AdvertService) SaveAwardAmounts(ctx context.Context, input *SaveAwardAmountsInput) (*SaveAdvertResult, error) {
	fieldErrors := validateAwardAmounts(input)
	if len(fieldErrors) > 0 {
		return &SaveAdvertResult{FieldErrors: fieldErrors}, nil
	}

	return s.SaveQuestionPage(ctx, &SaveAdvertQuestionInput{
		AdvertId:   input.AdvertId,
		SectionId:  input.SectionId,
		QuestionId: awardAmountsPageId,
		Multi:      []string{input.TotalAmount, input.MaxAward, input.MinAward},
		Completed:  input.Completed,
	})
}

func validateAwardAmounts(input *SaveAwardAmountsInput) []entity.FieldError {
	fieldErrors := make([]entity.FieldError, 0)

	_, fieldErrors = validateAmount(fieldErrors, FieldTotalAmount, input.TotalAmount, "Total amount", "a total amount")
	maxAward, fieldErrors := validateAmount(fieldErrors, FieldMaximumAward, input.MaxAward, "Maximum amount", "a maximum amount")
	minAward, fieldErrors := validateAmount(fieldErrors, FieldMinimumAward, input.MinAward, "Minimum amount", "a minimum amount")

	if len(fieldErrors) == 0 && minAward > maxAward {
		fieldErrors = append(fieldErrors, entity.FieldError{
			FieldName:    FieldMinimumAward,
			ErrorMessage: "The minimum amount must be less than the maximum amount",
		})
	}

	return fieldErrors
}

func validateAmount(fieldErrors []entity.FieldError, field string, raw string, label string, article string) (float64, []entity.FieldError) {
	if raw == "" {
		return 0, append(fieldErrors, entity.FieldError{
			FieldName:    field,
			ErrorMessage: "Enter " + article,
		})
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, append(fieldErrors, entity.FieldError{
			FieldName:    field,
			ErrorMessage: label + " must only include numbers",
		})
	}

	if amount <= 0 {
		return amount, append(fieldErrors, entity.FieldError{
			FieldName:    field,
			ErrorMessage: label + " must be higher than zero",
		})
	}

	return amount, fieldErrors
}

// Publish makes a finished advert public, or schedules it when its opening date
// is still in the future. Every section must be Completed first.
func (s *AdvertService) Publish(ctx context.Context, advertId string) error {
	advert, err := s.adverts.GetAdvert(ctx, advertId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return ErrAdvertNotFound
		}

		return err
	}

	for _, section := range advert.Sections {
		if section.Status != entity.SectionCompleted {
			return ErrAdvertIncomplete
		}
	}

	if opensInFuture(advert.OpeningDate) {
		return s.adverts.ScheduleAdvert(ctx, advertId)
	}

	return s.adverts.PublishAdvert(ctx, advertId)
}

func opensInFuture(openingDate string) bool {
	opening, err := time.Parse(advertDateLayout, openingDate)
	if err != nil {
		return false
	}

	return opening.After(time.Now())
}

func (s *AdvertService) Unpublish(ctx context.Context, advertId string) error {
	err := s.adverts.UnpublishAdvert(ctx, advertId)
	if errors.Is(err, backend.ErrNotFound) {
		return ErrAdvertNotFound
	}

	return err
}

func (s *AdvertService) Unschedule(ctx context.Context, advertId string) error {
	err := s.adverts.UnscheduleAdvert(ctx, advertId)
	if errors.Is(err, backend.ErrNotFound) {
		return ErrAdvertNotFound
	}

	return err
}

func (s *AdvertService) DeleteAdvert(ctx context.Context, advertId string) error {
	err := s.adverts.DeleteAdvert(ctx, advertId)
	if errors.Is(err, backend.ErrNotFound) {
		return ErrAdvertNotFound
	}

	return err
}
