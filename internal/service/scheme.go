package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/entity"
)

// messages shown against scheme-builder fields
const (
	msgSchemeNameRequired = "Enter the name of your grant"
	msgSchemeNameTooLong  = "Name must be 255 characters or less"
	msgGGISRequired       = "Enter your GGIS Scheme Reference Number"
	msgGGISTooLong        = "GGIS Scheme Reference Number must be 255 characters or less"
	msgEmailInvalid       = "Enter an email address in the correct format, like name@example.com"
)

type SchemeService struct {
	schemes  backend.Scheme
	forms    backend.ApplicationForm
	validate *validator.Validate
	log      *zap.Logger
}

func NewSchemeService(clients *backend.Clients, validate *validator.Validate, log *zap.Logger) *SchemeService {
	return &SchemeService{
		schemes:  clients.Scheme,
		forms:    clients.ApplicationForm,
		validate: validate,
		log:      log,
	}
}

type SchemeForm struct {
	Name          string `validate:"required,max=255"`
	GGISReference string `validate:"required,max=255"`
	ContactEmail  string `validate:"omitempty,email"`
}

// SchemeResult carries either the saved scheme id or the field errors to
// re-render the builder page with.
type SchemeResult struct {
	SchemeId    string
	FieldErrors []entity.FieldError
}

func (r *SchemeResult) HasErrors() bool {
	return len(r.FieldErrors) > 0
}

func (s *SchemeService) CreateScheme(ctx context.Context, form *SchemeForm) (*SchemeResult, error) {
	if fieldErrors := s.validateForm(form); len(fieldErrors) > 0 {
		return &SchemeResult{FieldErrors: fieldErrors}, nil
	}

	schemeId, err := s.schemes.CreateScheme(ctx, &entity.CreateSchemeInput{
		Name:          form.Name,
		GGISReference: form.GGISReference,
		ContactEmail:  form.ContactEmail,
	})
	if err != nil {
		return nil, err
	}

	return &SchemeResult{SchemeId: schemeId}, nil
}

func (s *SchemeService) GetScheme(ctx context.Context, schemeId string) (*entity.Scheme, error) {
	scheme, err := s.schemes.GetScheme(ctx, schemeId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrSchemeNotFound
		}

		return nil, err
	}

	return scheme, nil
}

func (s *SchemeService) EditName(ctx context.Context, schemeId string, name string) (*SchemeResult, error) {
	form := &SchemeForm{Name: name}
	if err := s.validate.StructPartial(form, "Name"); err != nil {
		return &SchemeResult{FieldErrors: schemeFieldErrors(err)}, nil
	}

	return s.patch(ctx, schemeId, &entity.PatchSchemeInput{Name: name})
}

func (s *SchemeService) EditGGISReference(ctx context.Context, schemeId string, reference string) (*SchemeResult, error) {
	form := &SchemeForm{GGISReference: reference}
	if err := s.validate.StructPartial(form, "GGISReference"); err != nil {
		return &SchemeResult{FieldErrors: schemeFieldErrors(err)}, nil
	}

	return s.patch(ctx, schemeId, &entity.PatchSchemeInput{GGISReference: reference})
}

func (s *SchemeService) EditContactEmail(ctx context.Context, schemeId string, email string) (*SchemeResult, error) {
	form := &SchemeForm{ContactEmail: email}
	if err := s.validate.StructPartial(form, "ContactEmail"); err != nil {
		return &SchemeResult{FieldErrors: schemeFieldErrors(err)}, nil
	}

	return s.patch(ctx, schemeId, &entity.PatchSchemeInput{ContactEmail: email})
}

func (s *SchemeService) DeleteScheme(ctx context.Context, schemeId string) error {
	err := s.schemes.DeleteScheme(ctx, schemeId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return ErrSchemeNotFound
		}

		return err
	}

	return nil
}

// DeleteApplicationForm removes a scheme's application form so the admin can
// build a new one against the same scheme.
func (s *SchemeService) DeleteApplicationForm(ctx context.Context, applicationId string) error {
	err := s.forms.DeleteApplicationForm(ctx, applicationId)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return ErrSchemeNotFound
		}

		return err
	}

	return nil
}

func (s *SchemeService) patch(ctx context.Context, schemeId string, input *entity.PatchSchemeInput) (*SchemeResult, error) {
	err := s.schemes.PatchScheme(ctx, schemeId, input)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrSchemeNotFound
		}

		return nil, err
	}

	return &SchemeResult{SchemeId: schemeId}, nil
}

func (s *SchemeService) validateForm(form *SchemeForm) []entity.FieldError {
	if err := s.validate.Struct(form); err != nil {
		return schemeFieldErrors(err)
	}

	return nil
}

func schemeFieldErrors(err error) []entity.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []entity.FieldError{{FieldName: "form", ErrorMessage: "Something went wrong, check your answers"}}
	}

	fieldErrors := make([]entity.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, entity.FieldError{
			FieldName:    schemeFieldName(fe.Field()),
			ErrorMessage: schemeMessage(fe),
		})
	}

	return fieldErrors
}

func schemeFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "GGISReference":
		return "ggisReference"
	case "ContactEmail":
		return "contactEmail"
	}

	return structField
}

func schemeMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return msgSchemeNameRequired
		}

		return msgSchemeNameTooLong
	case "GGISReference":
		if fe.Tag() == "required" {
			return msgGGISRequired
		}

		return msgGGISTooLong
	case "ContactEmail":
		return msgEmailInvalid
	}

	return "Enter a valid value"
}
