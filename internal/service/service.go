package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
	"grant-management-portal/internal/navigation"
)

type Submission interface {
	GetSectionList(ctx context.Context, submissionId string) (*entity.Submission, error)
	GetSectionSummary(ctx context.Context, submissionId string, sectionId string) (*entity.SectionSummary, error)
	GetQuestionPage(ctx context.Context, submissionId string, sectionId string, questionId string) (*QuestionPage, error)

	SaveQuestion(ctx context.Context, input *SaveQuestionInput) (*SaveQuestionResult, error)
	UploadAttachment(ctx context.Context, input *UploadAttachmentInput) (*SaveQuestionResult, error)
	RemoveAttachment(ctx context.Context, submissionId string, sectionId string, questionId string, attachmentId string) (string, error)
	ReviewSection(ctx context.Context, submissionId string, sectionId string, completed bool) (string, error)

	CreateSubmission(ctx context.Context, applicationId string) (string, error)
	Submit(ctx context.Context, submissionId string) error
	DownloadSummary(ctx context.Context, submissionId string) ([]byte, error)
}

type MandatoryQuestion interface {
	GetPage(ctx context.Context, mandatoryId string) (*entity.MandatoryQuestions, error)
	GetBySubmission(ctx context.Context, submissionId string) (*entity.MandatoryQuestions, error)
	SaveAndNavigate(ctx context.Context, input *SaveMandatoryInput) (*SaveQuestionResult, error)
}

type Scheme interface {
	CreateScheme(ctx context.Context, form *SchemeForm) (*SchemeResult, error)
	GetScheme(ctx context.Context, schemeId string) (*entity.Scheme, error)
	EditName(ctx context.Context, schemeId string, name string) (*SchemeResult, error)
	EditGGISReference(ctx context.Context, schemeId string, reference string) (*SchemeResult, error)
	EditContactEmail(ctx context.Context, schemeId string, email string) (*SchemeResult, error)
	DeleteScheme(ctx context.Context, schemeId string) error
	DeleteApplicationForm(ctx context.Context, applicationId string) error
}

type Advert interface {
	GetOverview(ctx context.Context, advertId string) (*entity.GrantAdvert, error)
	SaveQuestionPage(ctx context.Context, input *SaveAdvertQuestionInput) (*SaveAdvertResult, error)
	SaveAwardAmounts(ctx context.Context, input *SaveAwardAmountsInput) (*SaveAdvertResult, error)
	Publish(ctx context.Context, advertId string) error
	Unpublish(ctx context.Context, advertId string) error
	Unschedule(ctx context.Context, advertId string) error
	DeleteAdvert(ctx context.Context, advertId string) error
}

type Services struct {
	Submission        Submission
	MandatoryQuestion MandatoryQuestion
	Scheme            Scheme
	Advert            Advert
}

func NewServices(clients *backend.Clients, resolver *navigation.Resolver, validate *validator.Validate, log *zap.Logger) *Services {
	return &Services{
		Submission:        NewSubmissionService(clients, resolver, log),
		MandatoryQuestion: NewMandatoryQuestionService(clients, resolver, log),
		Scheme:            NewSchemeService(clients, validate, log),
		Advert:            NewAdvertService(clients, log),
	}
}
