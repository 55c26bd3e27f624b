package backend

import (
	"errors"
	"fmt"

	"grant-management-portal/internal/entity"
)

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrGrantNotPublished        = errors.New("grant is not published")
	ErrSubmissionAlreadyCreated = errors.New("submission already created for this application")
)

// rejection codes the backend pattern-matches into dedicated outcome pages
const (
	codeGrantNotPublished        = "GRANT_NOT_PUBLISHED"
	codeSubmissionAlreadyCreated = "SUBMISSION_ALREADY_CREATED"
)

// ValidationError carries the backend's structured field errors across the client
// boundary so services can remap them onto on-screen inputs.
type ValidationError struct {
	FieldErrors []entity.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("backend rejected the request with %d field errors", len(e.FieldErrors))
}
