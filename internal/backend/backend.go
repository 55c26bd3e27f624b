package backend

import (
	"context"
	"io"

	"go.uber.org/zap"

	"grant-management-portal/internal/entity"
)

type Submission interface {
	GetSubmission(ctx context.Context, submissionId string) (*entity.Submission, error)
	GetSection(ctx context.Context, submissionId string, sectionId string) (*entity.SectionSummary, error)
	GetQuestion(ctx context.Context, submissionId string, sectionId string, questionId string) (*entity.Question, error)
	SaveQuestionResponse(ctx context.Context, submissionId string, sectionId string, questionId string, body *entity.QuestionPostBody) error
	GetNextNavigation(ctx context.Context, submissionId string, sectionId string, questionId string, saveAndExit bool) (*entity.Navigation, error)
	ReviewSection(ctx context.Context, submissionId string, sectionId string, completed bool) error

	CreateSubmission(ctx context.Context, applicationId string) (*entity.CreateSubmissionResponse, error)
	SubmitSubmission(ctx context.Context, submissionId string) error
	IsSubmitted(ctx context.Context, submissionId string) (bool, error)
	IsReady(ctx context.Context, submissionId string) (bool, error)
	DownloadSummary(ctx context.Context, submissionId string) ([]byte, error)

	AttachFile(ctx context.Context, submissionId string, sectionId string, questionId string, filename string, file io.Reader) error
	DeleteAttachment(ctx context.Context, submissionId string, sectionId string, questionId string, attachmentId string) error
}

type MandatoryQuestion interface {
	GetById(ctx context.Context, mandatoryId string) (*entity.MandatoryQuestions, error)
	GetBySubmissionId(ctx context.Context, submissionId string) (*entity.MandatoryQuestions, error)
	Update(ctx context.Context, input *entity.UpdateMandatoryQuestionInput) error
}

type Scheme interface {
	CreateScheme(ctx context.Context, input *entity.CreateSchemeInput) (string, error)
	GetScheme(ctx context.Context, schemeId string) (*entity.Scheme, error)
	PatchScheme(ctx context.Context, schemeId string, input *entity.PatchSchemeInput) error
	DeleteScheme(ctx context.Context, schemeId string) error
}

type Advert interface {
	GetAdvert(ctx context.Context, advertId string) (*entity.GrantAdvert, error)
	SaveQuestionPage(ctx context.Context, advertId string, sectionId string, questionId string, input *entity.SaveAdvertPageInput) (*entity.AdvertSection, error)
	PublishAdvert(ctx context.Context, advertId string) error
	UnpublishAdvert(ctx context.Context, advertId string) error
	ScheduleAdvert(ctx context.Context, advertId string) error
	UnscheduleAdvert(ctx context.Context, advertId string) error
	DeleteAdvert(ctx context.Context, advertId string) error
}

type ApplicationForm interface {
	GetApplicationForm(ctx context.Context, applicationId string) (*entity.ApplicationForm, error)
	DeleteApplicationForm(ctx context.Context, applicationId string) error
}

type Clients struct {
	Submission        Submission
	MandatoryQuestion MandatoryQuestion
	Scheme            Scheme
	Advert            Advert
	ApplicationForm   ApplicationForm
}

func NewClients(baseURL string, log *zap.Logger) *Clients {
	client := NewClient(baseURL, log)

	return &Clients{
		Submission:        NewSubmissionClient(client),
		MandatoryQuestion: NewMandatoryQuestionClient(client),
		Scheme:            NewSchemeClient(client),
		Advert:            NewAdvertClient(client),
		ApplicationForm:   NewApplicationFormClient(client),
	}
}
