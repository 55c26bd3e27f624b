package service

import (
	"context"
	"io"
	"mime/multipart"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
)

// fakeSubmissionBackend scripts the backend client and records what was written.
type fakeSubmissionBackend struct {
	question       *entity.Question
	next           *entity.Navigation
	saveErr        error
	attachErr      error
	submitted      bool
	ready          bool
	created        *entity.CreateSubmissionResponse
	createErr      error
	savedBody      *entity.QuestionPostBody
	attachedName   string
	saveCalls      int
	attachCalls    int
	reviewComplete *bool
}

func (f *fakeSubmissionBackend) GetSubmission(ctx context.Context, submissionId string) (*entity.Submission, error) {
	return &entity.Submission{}, nil
}

func (f *fakeSubmissionBackend) GetSection(ctx context.Context, submissionId string, sectionId string) (*entity.SectionSummary, error) {
	return &entity.SectionSummary{Id: sectionId}, nil
}

func (f *fakeSubmissionBackend) GetQuestion(ctx context.Context, submissionId string, sectionId string, questionId string) (*entity.Question, error) {
	if f.question == nil {
		return nil, backend.ErrNotFound
	}

	return f.question, nil
}

func (f *fakeSubmissionBackend) SaveQuestionResponse(ctx context.Context, submissionId string, sectionId string, questionId string, body *entity.QuestionPostBody) error {
	f.saveCalls++
	f.savedBody = body

	return f.saveErr
}

func (f *fakeSubmissionBackend) GetNextNavigation(ctx context.Context, submissionId string, sectionId string, questionId string, saveAndExit bool) (*entity.Navigation, error) {
	return f.next, nil
}

func (f *fakeSubmissionBackend) ReviewSection(ctx context.Context, submissionId string, sectionId string, completed bool) error {
	f.reviewComplete = &completed

	return nil
}

func (f *fakeSubmissionBackend) CreateSubmission(ctx context.Context, applicationId string) (*entity.CreateSubmissionResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	return f.created, nil
}

func (f *fakeSubmissionBackend) SubmitSubmission(ctx context.Context, submissionId string) error {
	return nil
}

func (f *fakeSubmissionBackend) IsSubmitted(ctx context.Context, submissionId string) (bool, error) {
	return f.submitted, nil
}

func (f *fakeSubmissionBackend) IsReady(ctx context.Context, submissionId string) (bool, error) {
	return f.ready, nil
}

func (f *fakeSubmissionBackend) DownloadSummary(ctx context.Context, submissionId string) ([]byte, error) {
	return []byte("zip"), nil
}

func (f *fakeSubmissionBackend) AttachFile(ctx context.Context, submissionId string, sectionId string, questionId string, filename string, file io.Reader) error {
	f.attachCalls++
	f.attachedName = filename

	return f.attachErr
}

func (f *fakeSubmissionBackend) DeleteAttachment(ctx context.Context, submissionId string, sectionId string, questionId string, attachmentId string) error {
	return nil
}

type fakeApplicationFormBackend struct {
	form    *entity.ApplicationForm
	deleted bool
}

func (f *fakeApplicationFormBackend) GetApplicationForm(ctx context.Context, applicationId string) (*entity.ApplicationForm, error) {
	if f.form == nil {
		return nil, backend.ErrNotFound
	}

	return f.form, nil
}

func (f *fakeApplicationFormBackend) DeleteApplicationForm(ctx context.Context, applicationId string) error {
	if f.form == nil {
		return backend.ErrNotFound
	}
	f.deleted = true

	return nil
}

func newSubmissionServiceForTest(fake *fakeSubmissionBackend) *SubmissionService {
	clients := &backend.Clients{
		Submission:      fake,
		ApplicationForm: &fakeApplicationFormBackend{form: &entity.ApplicationForm{Id: "app1", Status: entity.ApplicationFormPublished}},
	}

	return NewSubmissionService(clients, navigation.NewResolver("/apply"), zap.NewNop())
}

func TestSubmissionService_SaveQuestion(t *testing.T) {
	t.Run("cancel redirects without any backend write", func(t *testing.T) {
		fake := &fakeSubmissionBackend{question: &entity.Question{Id: "q1", ResponseType: entity.ShortAnswer}}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"cancel": {""}, "q1": {"discarded"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections/sec1", result.RedirectURL)
		assert.Zero(t, fake.saveCalls)
	})

	t.Run("continue saves and follows the next question pointer", func(t *testing.T) {
		fake := &fakeSubmissionBackend{
			question: &entity.Question{Id: "q1", ResponseType: entity.ShortAnswer},
			next:     &entity.Navigation{SectionId: "sec1", QuestionId: "q2"},
		}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"q1": {"an answer"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections/sec1/questions/q2", result.RedirectURL)
		require.NotNil(t, fake.savedBody)
		require.NotNil(t, fake.savedBody.Response)
		assert.Equal(t, "an answer", *fake.savedBody.Response)
	})

	t.Run("a check your answers origin returns to the section summary", func(t *testing.T) {
		fake := &fakeSubmissionBackend{
			question: &entity.Question{Id: "q1", ResponseType: entity.ShortAnswer},
			next:     &entity.Navigation{SectionId: "sec1", QuestionId: "q2"},
		}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"q1": {"edited"}},
			FromCYA:      true,
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections/sec1", result.RedirectURL)
		assert.Equal(t, 1, fake.saveCalls)
	})

	t.Run("save and exit returns to the section list", func(t *testing.T) {
		fake := &fakeSubmissionBackend{question: &entity.Question{Id: "q1", ResponseType: entity.ShortAnswer}}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"save-and-exit": {""}, "q1": {"partial"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections", result.RedirectURL)
		assert.Equal(t, 1, fake.saveCalls)
	})

	t.Run("validation errors come back mapped with the entered values", func(t *testing.T) {
		fake := &fakeSubmissionBackend{
			question: &entity.Question{Id: "q1", ResponseType: entity.Date},
			saveErr: &backend.ValidationError{FieldErrors: []entity.FieldError{
				{FieldName: "multiResponse", ErrorMessage: "You must enter a date"},
			}},
		}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"q1-day": {""}, "q1-month": {""}, "q1-year": {""}},
		})

		require.NoError(t, err)
		assert.True(t, result.HasErrors())
		assert.Equal(t, "q1-date", result.FieldErrors[0].FieldName)
		assert.NotNil(t, result.PreviousValues)
	})

	t.Run("a missing question maps to the not found sentinel", func(t *testing.T) {
		svc := newSubmissionServiceForTest(&fakeSubmissionBackend{})

		_, err := svc.SaveQuestion(context.Background(), &SaveQuestionInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "missing",
			Body:         url.Values{},
		})

		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestSubmissionService_UploadAttachment(t *testing.T) {
	uploadQuestion := func(attachmentId string, mandatory bool) *entity.Question {
		return &entity.Question{
			Id:           "q1",
			ResponseType: entity.SingleFileUpload,
			AttachmentId: attachmentId,
			Validation:   entity.ValidationRules{Mandatory: mandatory},
		}
	}

	t.Run("cancel leaves the stored attachment untouched", func(t *testing.T) {
		fake := &fakeSubmissionBackend{question: uploadQuestion("att1", true)}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.UploadAttachment(context.Background(), &UploadAttachmentInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{"cancel": {""}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections/sec1", result.RedirectURL)
		assert.Zero(t, fake.attachCalls)
	})

	t.Run("no file on a mandatory unanswered question is an error", func(t *testing.T) {
		fake := &fakeSubmissionBackend{question: uploadQuestion("", true)}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.UploadAttachment(context.Background(), &UploadAttachmentInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{},
		})

		require.NoError(t, err)
		require.True(t, result.HasErrors())
		assert.Equal(t, "Select a file to upload", result.FieldErrors[0].ErrorMessage)
	})

	t.Run("no file on an already answered question moves on", func(t *testing.T) {
		fake := &fakeSubmissionBackend{
			question: uploadQuestion("att1", true),
			next:     &entity.Navigation{SectionList: true},
		}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.UploadAttachment(context.Background(), &UploadAttachmentInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections/sec1", result.RedirectURL)
	})

	t.Run("no file on an optional question moves on", func(t *testing.T) {
		fake := &fakeSubmissionBackend{
			question: uploadQuestion("", false),
			next:     &entity.Navigation{SectionList: true},
		}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.UploadAttachment(context.Background(), &UploadAttachmentInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{},
		})

		require.NoError(t, err)
		assert.False(t, result.HasErrors())
	})

	t.Run("an oversized file is rejected without reaching the backend", func(t *testing.T) {
		fake := &fakeSubmissionBackend{question: uploadQuestion("", true)}
		svc := newSubmissionServiceForTest(fake)

		result, err := svc.UploadAttachment(context.Background(), &UploadAttachmentInput{
			SubmissionId: "s1",
			SectionId:    "sec1",
			QuestionId:   "q1",
			Body:         url.Values{},
			File:         &multipart.FileHeader{Filename: "big.zip", Size: 301 * 1024 * 1024},
		})

		require.NoError(t, err)
		require.True(t, result.HasErrors())
		assert.Equal(t, "The selected file must be smaller than 300MB", result.FieldErrors[0].ErrorMessage)
		assert.Zero(t, fake.attachCalls)
	})
}

func TestSubmissionService_CreateSubmission(t *testing.T) {
	t.Run("returns the new submission id", func(t *testing.T) {
		fake := &fakeSubmissionBackend{created: &entity.CreateSubmissionResponse{SubmissionId: "s1"}}
		svc := newSubmissionServiceForTest(fake)

		submissionId, err := svc.CreateSubmission(context.Background(), "app1")

		require.NoError(t, err)
		assert.Equal(t, "s1", submissionId)
	})

	t.Run("an unpublished grant maps to the closed sentinel", func(t *testing.T) {
		fake := &fakeSubmissionBackend{createErr: backend.ErrGrantNotPublished}
		svc := newSubmissionServiceForTest(fake)

		_, err := svc.CreateSubmission(context.Background(), "app1")

		assert.ErrorIs(t, err, ErrGrantNotPublished)
	})

	t.Run("a duplicate maps to the already created sentinel", func(t *testing.T) {
		fake := &fakeSubmissionBackend{createErr: backend.ErrSubmissionAlreadyCreated}
		svc := newSubmissionServiceForTest(fake)

		_, err := svc.CreateSubmission(context.Background(), "app1")

		assert.ErrorIs(t, err, ErrSubmissionAlreadyCreated)
	})

	t.Run("an unpublished application form blocks the submission", func(t *testing.T) {
		clients := &backend.Clients{
			Submission:      &fakeSubmissionBackend{created: &entity.CreateSubmissionResponse{SubmissionId: "s1"}},
			ApplicationForm: &fakeApplicationFormBackend{form: &entity.ApplicationForm{Id: "app1", Status: entity.ApplicationFormDraft}},
		}
		svc := NewSubmissionService(clients, navigation.NewResolver("/apply"), zap.NewNop())

		_, err := svc.CreateSubmission(context.Background(), "app1")

		assert.ErrorIs(t, err, ErrGrantNotPublished)
	})
}

func TestSubmissionService_Submit(t *testing.T) {
	t.Run("an already submitted application is rejected", func(t *testing.T) {
		svc := newSubmissionServiceForTest(&fakeSubmissionBackend{submitted: true, ready: true})

		assert.ErrorIs(t, svc.Submit(context.Background(), "s1"), ErrAlreadySubmitted)
	})

	t.Run("an incomplete application is rejected", func(t *testing.T) {
		svc := newSubmissionServiceForTest(&fakeSubmissionBackend{ready: false})

		assert.ErrorIs(t, svc.Submit(context.Background(), "s1"), ErrSubmissionNotReady)
	})

	t.Run("a ready application submits", func(t *testing.T) {
		svc := newSubmissionServiceForTest(&fakeSubmissionBackend{ready: true})

		assert.NoError(t, svc.Submit(context.Background(), "s1"))
	})
}
