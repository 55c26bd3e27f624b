package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
)

type fakeMandatoryBackend struct {
	questions  *entity.MandatoryQuestions
	updateErr  error
	lastUpdate *entity.UpdateMandatoryQuestionInput
}

func (f *fakeMandatoryBackend) GetById(ctx context.Context, mandatoryId string) (*entity.MandatoryQuestions, error) {
	if f.questions == nil {
		return nil, backend.ErrNotFound
	}

	return f.questions, nil
}

func (f *fakeMandatoryBackend) GetBySubmissionId(ctx context.Context, submissionId string) (*entity.MandatoryQuestions, error) {
	if f.questions == nil || f.questions.SubmissionId != submissionId {
		return nil, backend.ErrNotFound
	}

	return f.questions, nil
}

func (f *fakeMandatoryBackend) Update(ctx context.Context, input *entity.UpdateMandatoryQuestionInput) error {
	f.lastUpdate = input

	return f.updateErr
}

func newMandatoryServiceForTest(fake *fakeMandatoryBackend) *MandatoryQuestionService {
	clients := &backend.Clients{MandatoryQuestion: fake}

	return NewMandatoryQuestionService(clients, navigation.NewResolver("/apply"), zap.NewNop())
}

func TestMandatoryQuestionService_GetPage(t *testing.T) {
	t.Run("returns the question set", func(t *testing.T) {
		fake := &fakeMandatoryBackend{questions: &entity.MandatoryQuestions{Id: "m1", Name: "Org Ltd"}}
		svc := newMandatoryServiceForTest(fake)

		questions, err := svc.GetPage(context.Background(), "m1")

		require.NoError(t, err)
		assert.Equal(t, "Org Ltd", questions.Name)
	})

	t.Run("a missing set maps to the not found sentinel", func(t *testing.T) {
		svc := newMandatoryServiceForTest(&fakeMandatoryBackend{})

		_, err := svc.GetPage(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestMandatoryQuestionService_GetBySubmission(t *testing.T) {
	t.Run("resolves the question set for a submission", func(t *testing.T) {
		fake := &fakeMandatoryBackend{questions: &entity.MandatoryQuestions{Id: "m1", SubmissionId: "s1"}}
		svc := newMandatoryServiceForTest(fake)

		questions, err := svc.GetBySubmission(context.Background(), "s1")

		require.NoError(t, err)
		assert.Equal(t, "m1", questions.Id)
	})

	t.Run("a submission without a question set maps to the not found sentinel", func(t *testing.T) {
		svc := newMandatoryServiceForTest(&fakeMandatoryBackend{})

		_, err := svc.GetBySubmission(context.Background(), "s1")

		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestMandatoryQuestionService_SaveAndNavigate(t *testing.T) {
	t.Run("cancel returns to the applications dashboard without a write", func(t *testing.T) {
		fake := &fakeMandatoryBackend{}
		svc := newMandatoryServiceForTest(fake)

		result, err := svc.SaveAndNavigate(context.Background(), &SaveMandatoryInput{
			MandatoryId: "m1",
			Body:        url.Values{"cancel": {""}, "name": {"discarded"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/applications", result.RedirectURL)
		assert.Nil(t, fake.lastUpdate)
	})

	t.Run("saves the answered fields and continues to the summary", func(t *testing.T) {
		fake := &fakeMandatoryBackend{}
		svc := newMandatoryServiceForTest(fake)

		result, err := svc.SaveAndNavigate(context.Background(), &SaveMandatoryInput{
			MandatoryId: "m1",
			Body: url.Values{
				"name":              {"Org Ltd"},
				"fundingLocation":   {"London", "Scotland"},
				"save-and-continue": {""},
				"fromCYAPage":       {"true"},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/mandatory-questions/m1/organisation-summary", result.RedirectURL)
		require.NotNil(t, fake.lastUpdate)
		assert.Equal(t, "m1", fake.lastUpdate.Id)
		assert.Equal(t, "Org Ltd", fake.lastUpdate.Fields["name"])
		assert.Equal(t, "London,Scotland", fake.lastUpdate.Fields["fundingLocation"])
		assert.NotContains(t, fake.lastUpdate.Fields, "save-and-continue")
		assert.NotContains(t, fake.lastUpdate.Fields, "fromCYAPage")
	})

	t.Run("an explicit eligibility No skips to the section list", func(t *testing.T) {
		fake := &fakeMandatoryBackend{
			questions: &entity.MandatoryQuestions{Id: "m1", SubmissionId: "s1"},
		}
		svc := newMandatoryServiceForTest(fake)

		result, err := svc.SaveAndNavigate(context.Background(), &SaveMandatoryInput{
			MandatoryId: "m1",
			Body:        url.Values{"ELIGIBILITY": {"No"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/submissions/s1/sections", result.RedirectURL)
	})

	t.Run("an eligibility Yes continues to the summary", func(t *testing.T) {
		fake := &fakeMandatoryBackend{}
		svc := newMandatoryServiceForTest(fake)

		result, err := svc.SaveAndNavigate(context.Background(), &SaveMandatoryInput{
			MandatoryId: "m1",
			Body:        url.Values{"ELIGIBILITY": {"Yes"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "/apply/mandatory-questions/m1/organisation-summary", result.RedirectURL)
	})

	t.Run("validation errors pass through with the entered values", func(t *testing.T) {
		fake := &fakeMandatoryBackend{
			updateErr: &backend.ValidationError{FieldErrors: []entity.FieldError{
				{FieldName: "name", ErrorMessage: "Enter the name of your organisation"},
			}},
		}
		svc := newMandatoryServiceForTest(fake)

		result, err := svc.SaveAndNavigate(context.Background(), &SaveMandatoryInput{
			MandatoryId: "m1",
			Body:        url.Values{"name": {""}},
		})

		require.NoError(t, err)
		require.True(t, result.HasErrors())
		assert.Equal(t, "name", result.FieldErrors[0].FieldName)
		assert.NotNil(t, result.PreviousValues)
	})
}
