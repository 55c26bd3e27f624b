package navigation

import (
	"fmt"
	"net/url"

	"grant-management-portal/internal/entity"
)

// Action is the submit button present in a question form body.
type Action string

const (
	SaveAndContinue Action = "save-and-continue"
	SaveAndExit     Action = "save-and-exit"
	Cancel          Action = "cancel"
)

// form/query markers for "the applicant came from check your answers"
const (
	FromCYAField     = "fromCYAPage"
	EligibilityField = "ELIGIBILITY"
)

// ActionOf picks the action out of a submitted form body. Continue is the default
// submit, so it wins only when neither cancel nor exit was pressed.
func ActionOf(body url.Values) Action {
	if _, ok := body[string(Cancel)]; ok {
		return Cancel
	}
	if _, ok := body[string(SaveAndExit)]; ok {
		return SaveAndExit
	}

	return SaveAndContinue
}

// Resolver builds applicant-portal URLs under the configured sub path and decides
// the post-submit redirect.
type Resolver struct {
	SubPath string
}

func NewResolver(subPath string) *Resolver {
	return &Resolver{SubPath: subPath}
}

func (r *Resolver) SectionListURL(submissionId string) string {
	return fmt.Sprintf("%s/submissions/%s/sections", r.SubPath, submissionId)
}

// SectionURL is the section summary (check your answers) page.
func (r *Resolver) SectionURL(submissionId string, sectionId string) string {
	return fmt.Sprintf("%s/submissions/%s/sections/%s", r.SubPath, submissionId, sectionId)
}

func (r *Resolver) QuestionURL(submissionId string, sectionId string, questionId string) string {
	return fmt.Sprintf("%s/submissions/%s/sections/%s/questions/%s", r.SubPath, submissionId, sectionId, questionId)
}

func (r *Resolver) SummaryURL(submissionId string) string {
	return fmt.Sprintf("%s/submissions/%s/summary", r.SubPath, submissionId)
}

func (r *Resolver) ApplicationsURL() string {
	return fmt.Sprintf("%s/applications", r.SubPath)
}

func (r *Resolver) MandatorySummaryURL(mandatoryId string) string {
	return fmt.Sprintf("%s/mandatory-questions/%s/organisation-summary", r.SubPath, mandatoryId)
}

func (r *Resolver) ServiceErrorURL(message string) string {
	return fmt.Sprintf("%s/service-error?message=%s", r.SubPath, url.QueryEscape(message))
}

func (r *Resolver) GrantIsClosedURL() string {
	return fmt.Sprintf("%s/grant-is-closed", r.SubPath)
}

// Resolve computes the redirect after a successful question save.
//
// A check-your-answers origin always returns to the section summary, whichever
// button was pressed. Otherwise continue follows the backend's next-question
// pointer unless it signals the section list, and exit drops back to the section
// list. Cancel is handled before any save happens and also lands on the summary.
func (r *Resolver) Resolve(submissionId string, sectionId string, action Action, fromCYA bool, next *entity.Navigation) string {
	if action == Cancel || fromCYA {
		return r.SectionURL(submissionId, sectionId)
	}

	if action == SaveAndContinue {
		if next != nil && !next.SectionList && next.QuestionId != "" {
			return r.QuestionURL(submissionId, next.SectionId, next.QuestionId)
		}

		return r.SectionURL(submissionId, sectionId)
	}

	return r.SectionListURL(submissionId)
}

// ResolveMandatory computes the redirect after saving a mandatory question.
//
// An explicit "No" on the eligibility question skips the remaining questions
// and drops the applicant back on the submission's section list. Any other
// answer, or no eligibility field in the body at all, continues to the
// organisation summary. Cancel and exit return to the applications dashboard.
func (r *Resolver) ResolveMandatory(submissionId string, mandatoryId string, action Action, eligibility string, hasEligibilityField bool) string {
	if action != SaveAndContinue {
		return r.ApplicationsURL()
	}

	if hasEligibilityField && eligibility == "No" {
		return r.SectionListURL(submissionId)
	}

	return r.MandatorySummaryURL(mandatoryId)
}
