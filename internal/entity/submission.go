package entity

import (
	"github.com/google/uuid"
)

// section statuses as the backend reports them
const (
	SectionNotStarted     = "NOT_STARTED"
	SectionInProgress     = "IN_PROGRESS"
	SectionCompleted      = "COMPLETED"
	SectionCannotStartYet = "CANNOT_START_YET"
)

const (
	SubmissionInProgress = "IN_PROGRESS"
	SubmissionSubmitted  = "SUBMITTED"
)

// backend model
type Submission struct {
	Id              uuid.UUID `json:"grantSubmissionId"`
	ApplicationId   string    `json:"applicationId"`
	ApplicationName string    `json:"applicationName"`
	SchemeId        string    `json:"schemeId"`
	Status          string    `json:"submissionStatus"`
	Sections        []Section `json:"sections"`
}

type Section struct {
	Id        string   `json:"sectionId"`
	Title     string   `json:"sectionTitle"`
	Status    string   `json:"sectionStatus"`
	Questions []string `json:"questionIds"`
}

// SectionSummary is the section page model: every question with its current answer,
// used by the check-your-answers screen.
type SectionSummary struct {
	Id        string     `json:"sectionId"`
	Title     string     `json:"sectionTitle"`
	Status    string     `json:"sectionStatus"`
	Questions []Question `json:"questions"`
}

type CreateSubmissionResponse struct {
	SubmissionCreated bool   `json:"submissionCreated"`
	SubmissionId      string `json:"submissionId"`
}

type SubmissionReadyResponse struct {
	Ready bool `json:"ready"`
}

type IsSubmittedResponse struct {
	Submitted bool `json:"submitted"`
}
