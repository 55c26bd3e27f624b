package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/forms"
	"grant-management-portal/internal/navigation"
)

type MandatoryQuestionService struct {
	mandatory backend.MandatoryQuestion
	nav       *navigation.Resolver
	log       *zap.Logger
}

func NewMandatoryQuestionService(clients *backend.Clients, resolver *navigation.Resolver, log *zap.Logger) *MandatoryQuestionService {
	return &MandatoryQuestionService{
		mandatory: clients.MandatoryQuestion,
		nav:       resolver,
		log:       log,
	}
}

func (s *MandatoryQuestionService) GetPage(ctx context.Context, mandatoryId string) (*entity.MandatoryQuestions, error) {
	questions, err := s.mandatory.GetById(ctx, mandatoryId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}

		return nil, err
	}

	return questions, nil
}

// GetBySubmission resolves the question set a submission belongs to, so a link
// from the submission can land on the right mandatory-question pages.
func (s *MandatoryQuestionService) GetBySubmission(ctx context.Context, submissionId string) (*entity.MandatoryQuestions, error) {
	questions, err := s.mandatory.GetBySubmissionId(ctx, submissionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}

		return nil, err
	}

	return questions, nil
}

type SaveMandatoryInput struct {
	MandatoryId string
	Body        url.Values
}

// SaveAndNavigate saves one mandatory-question page. An applicant who answers the
// eligibility question with an explicit "No" skips the rest of the flow.
func (s *MandatoryQuestionService) SaveAndNavigate(ctx context.Context, input *SaveMandatoryInput) (*SaveQuestionResult, error) {
	body := forms.NormalizeBody(input.Body)
	action := navigation.ActionOf(body)

	if action == navigation.Cancel {
		return &SaveQuestionResult{RedirectURL: s.nav.ApplicationsURL()}, nil
	}

	update := &entity.UpdateMandatoryQuestionInput{
		Id:     input.MandatoryId,
		Fields: make(map[string]string),
	}
	for key, values := range body {
		if isActionField(key) || len(values) == 0 {
			continue
		}
		update.Fields[key] = strings.Join(values, ",")
	}

	err := s.mandatory.Update(ctx, update)

	var vErr *backend.ValidationError
	if errors.As(err, &vErr) {
		return &SaveQuestionResult{FieldErrors: vErr.FieldErrors, PreviousValues: body}, nil
	}
	if err != nil {
		return nil, err
	}

	eligibility := body.Get(navigation.EligibilityField)
	_, hasEligibility := body[navigation.EligibilityField]

	// The section-list redirect for ineligible applicants needs the submission
	// the question set belongs to.
	submissionId := ""
	if hasEligibility && eligibility == "No" {
		questions, err := s.mandatory.GetById(ctx, input.MandatoryId)
		if err != nil {
			return nil, err
		}
		submissionId = questions.SubmissionId
	}

	return &SaveQuestionResult{
		RedirectURL: s.nav.ResolveMandatory(submissionId, input.MandatoryId, action, eligibility, hasEligibility),
	}, nil
}

func isActionField(key string) bool {
	switch navigation.Action(key) {
	case navigation.SaveAndContinue, navigation.SaveAndExit, navigation.Cancel:
		return true
	}

	return key == navigation.FromCYAField
}
