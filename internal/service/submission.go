package service

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"

	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/forms"
	"grant-management-portal/internal/navigation"
)

type SubmissionService struct {
	submissions backend.Submission
	forms       backend.ApplicationForm
	nav         *navigation.Resolver
	log         *zap.Logger
}

func NewSubmissionService(clients *backend.Clients, resolver *navigation.Resolver, log *zap.Logger) *SubmissionService {
	return &SubmissionService{
		submissions: clients.Submission,
		forms:       clients.ApplicationForm,
		nav:         resolver,
		log:         log,
	}
}

type SaveQuestionInput struct {
	SubmissionId string
	SectionId    string
	QuestionId   string
	Body         url.Values
	FromCYA      bool
}

// SaveQuestionResult either redirects or re-renders the question with field
// errors; PreviousValues echo whatever the applicant had entered so a validation
// failure never discards input.
type SaveQuestionResult struct {
	RedirectURL    string
	FieldErrors    []entity.FieldError
	PreviousValues url.Values
}

func (r *SaveQuestionResult) HasErrors() bool {
	return len(r.FieldErrors) > 0
}

// QuestionPage is the rendered question view: the question itself plus the
// wizard URLs around it.
type QuestionPage struct {
	Question  *entity.Question
	BackURL   string
	CancelURL string
}

func (s *SubmissionService) GetSectionList(ctx context.Context, submissionId string) (*entity.Submission, error) {
	submission, err := s.submissions.GetSubmission(ctx, submissionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}

		return nil, err
	}

	return submission, nil
}

func (s *SubmissionService) GetSectionSummary(ctx context.Context, submissionId string, sectionId string) (*entity.SectionSummary, error) {
	section, err := s.submissions.GetSection(ctx, submissionId, sectionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}

		return nil, err
	}

	return section, nil
}

func (s *SubmissionService) GetQuestionPage(ctx context.Context, submissionId string, sectionId string, questionId string) (*QuestionPage, error) {
	question, err := s.submissions.GetQuestion(ctx, submissionId, sectionId, questionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}

		return nil, err
	}

	page := &QuestionPage{
		Question:  question,
		BackURL:   s.nav.SectionListURL(submissionId),
		CancelURL: s.nav.SectionURL(submissionId, sectionId),
	}
	if question.PrevNavigation != nil && !question.PrevNavigation.SectionList {
		page.BackURL = s.nav.QuestionURL(submissionId, question.PrevNavigation.SectionId, question.PrevNavigation.QuestionId)
	}

	return page, nil
}

// SaveQuestion persists one answer and decides where to send the applicant next.
// Cancel discards the submitted values without any backend write.
func (s *SubmissionService) SaveQuestion(ctx context.Context, input *SaveQuestionInput) (*SaveQuestionResult, error) {
	body := forms.NormalizeBody(input.Body)
	action := navigation.ActionOf(body)

	if action == navigation.Cancel {
		return &SaveQuestionResult{RedirectURL: s.nav.SectionURL(input.SubmissionId, input.SectionId)}, nil
	}

	question, err := s.submissions.GetQuestion(ctx, input.SubmissionId, input.SectionId, input.QuestionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}

		return nil, err
	}

	requestBody := forms.CreateRequestBody(body, input.QuestionId, input.SubmissionId, question.ResponseType)
	err = s.submissions.SaveQuestionResponse(ctx, input.SubmissionId, input.SectionId, input.QuestionId, requestBody)

	var vErr *backend.ValidationError
	if errors.As(err, &vErr) {
		return &SaveQuestionResult{
			FieldErrors:    forms.MapFieldErrors(question.ResponseType, input.QuestionId, vErr.FieldErrors),
			PreviousValues: body,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return s.resolveAfterSave(ctx, input, action)
}

func (s *SubmissionService) resolveAfterSave(ctx context.Context, input *SaveQuestionInput, action navigation.Action) (*SaveQuestionResult, error) {
	if input.FromCYA {
		return &SaveQuestionResult{RedirectURL: s.nav.SectionURL(input.SubmissionId, input.SectionId)}, nil
	}

	var next *entity.Navigation
	if action == navigation.SaveAndContinue {
		navigationPointer, err := s.submissions.GetNextNavigation(ctx, input.SubmissionId, input.SectionId, input.QuestionId, false)
		if err != nil {
			return nil, err
		}
		next = navigationPointer
	}

	return &SaveQuestionResult{
		RedirectURL: s.nav.Resolve(input.SubmissionId, input.SectionId, action, input.FromCYA, next),
	}, nil
}

type UploadAttachmentInput struct {
	SubmissionId string
	SectionId    string
	QuestionId   string
	Body         url.Values
	File         *multipart.FileHeader
	FromCYA      bool
}

// UploadAttachment handles the single-file-upload question type. An oversized
// file surfaces as a field error, a missing file is valid only for optional
// questions, and cancel leaves any stored attachment untouched.
func (s *SubmissionService) UploadAttachment(ctx context.Context, input *UploadAttachmentInput) (*SaveQuestionResult, error) {
	body := forms.NormalizeBody(input.Body)
	action := navigation.ActionOf(body)

	if action == navigation.Cancel {
		return &SaveQuestionResult{RedirectURL: s.nav.SectionURL(input.SubmissionId, input.SectionId)}, nil
	}

	question, err := s.submissions.GetQuestion(ctx, input.SubmissionId, input.SectionId, input.QuestionId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}

		return nil, err
	}

	saveInput := &SaveQuestionInput{
		SubmissionId: input.SubmissionId,
		SectionId:    input.SectionId,
		QuestionId:   input.QuestionId,
		Body:         body,
		FromCYA:      input.FromCYA,
	}

	if input.File == nil {
		// An already-answered question or an optional one can move on without a
		// new upload; a mandatory unanswered one cannot.
		if question.AttachmentId != "" || !question.Validation.Mandatory {
			return s.resolveAfterSave(ctx, saveInput, action)
		}

		return &SaveQuestionResult{
			FieldErrors: []entity.FieldError{{
				FieldName:    input.QuestionId,
				ErrorMessage: "Select a file to upload",
			}},
			PreviousValues: body,
		}, nil
	}

	if input.File.Size > forms.MaxFileUploadSizeBytes {
		return &SaveQuestionResult{
			FieldErrors: []entity.FieldError{{
				FieldName:    input.QuestionId,
				ErrorMessage: "The selected file must be smaller than 300MB",
			}},
			PreviousValues: body,
		}, nil
	}

	file, err := input.File.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	filename := forms.SanitizeFilename(input.File.Filename)
	err = s.submissions.AttachFile(ctx, input.SubmissionId, input.SectionId, input.QuestionId, filename, file)

	var vErr *backend.ValidationError
	if errors.As(err, &vErr) {
		return &SaveQuestionResult{
			FieldErrors:    forms.MapFieldErrors(question.ResponseType, input.QuestionId, vErr.FieldErrors),
			PreviousValues: body,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return s.resolveAfterSave(ctx, saveInput, action)
}

func (s *SubmissionService) RemoveAttachment(ctx context.Context, submissionId string, sectionId string, questionId string, attachmentId string) (string, error) {
	err := s.submissions.DeleteAttachment(ctx, submissionId, sectionId, questionId, attachmentId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return "", ErrQuestionNotFound
		}

		return "", err
	}

	return s.nav.QuestionURL(submissionId, sectionId, questionId), nil
}

func (s *SubmissionService) ReviewSection(ctx context.Context, submissionId string, sectionId string, completed bool) (string, error) {
	if err := s.submissions.ReviewSection(ctx, submissionId, sectionId, completed); err != nil {
		return "", err
	}

	return s.nav.SectionListURL(submissionId), nil
}

// CreateSubmission starts a submission for the given application form. Closed
// grants and duplicate submissions map to their dedicated outcome errors.
func (s *SubmissionService) CreateSubmission(ctx context.Context, applicationId string) (string, error) {
	form, err := s.forms.GetApplicationForm(ctx, applicationId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return "", ErrSubmissionNotFound
		}

		return "", err
	}
	if form.Status != entity.ApplicationFormPublished {
		return "", ErrGrantNotPublished
	}

	created, err := s.submissions.CreateSubmission(ctx, applicationId)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrGrantNotPublished):
			return "", ErrGrantNotPublished
		case errors.Is(err, backend.ErrSubmissionAlreadyCreated):
			return "", ErrSubmissionAlreadyCreated
		}

		return "", err
	}

	return created.SubmissionId, nil
}

func (s *SubmissionService) Submit(ctx context.Context, submissionId string) error {
	submitted, err := s.submissions.IsSubmitted(ctx, submissionId)
	if err != nil {
		return err
	}
	if submitted {
		return ErrAlreadySubmitted
	}

	ready, err := s.submissions.IsReady(ctx, submissionId)
	if err != nil {
		return err
	}
	if !ready {
		return ErrSubmissionNotReady
	}

	return s.submissions.SubmitSubmission(ctx, submissionId)
}

func (s *SubmissionService) DownloadSummary(ctx context.Context, submissionId string) ([]byte, error) {
	return s.submissions.DownloadSummary(ctx, submissionId)
}
