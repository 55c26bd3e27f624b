package entity

// response types a question profile can declare
const (
	ShortAnswer       = "ShortAnswer"
	LongAnswer        = "LongAnswer"
	Numeric           = "Numeric"
	YesNo             = "YesNo"
	Date              = "Date"
	Address           = "Address"
	Dropdown          = "Dropdown"
	MultipleSelection = "MultipleSelection"
	SingleFileUpload  = "SingleFileUpload"
)

// backend model
type Question struct {
	Id             string          `json:"questionId"`
	ProfileField   string          `json:"profileField"`
	FieldTitle     string          `json:"fieldTitle"`
	HintText       string          `json:"hintText"`
	ResponseType   string          `json:"responseType"`
	Validation     ValidationRules `json:"validation"`
	Options        []string        `json:"options"`
	Response       string          `json:"response"`
	MultiResponse  []string        `json:"multiResponse"`
	AttachmentId   string          `json:"attachmentId"`
	NextNavigation *Navigation     `json:"nextNavigation"`
	PrevNavigation *Navigation     `json:"previousNavigation"`
}

type ValidationRules struct {
	Mandatory       bool     `json:"mandatory"`
	MinLength       int      `json:"minLength"`
	MaxLength       int      `json:"maxLength"`
	MinWords        int      `json:"minWords"`
	MaxWords        int      `json:"maxWords"`
	GreaterThanZero bool     `json:"greaterThanZero"`
	AllowedTypes    []string `json:"allowedTypes"`
	MaxFileSizeMB   int      `json:"maxFileSizeMB"`
}

// Navigation is the backend's wizard pointer. SectionList set means "no further
// question, go back to the section list".
type Navigation struct {
	SectionId   string `json:"sectionId"`
	QuestionId  string `json:"questionId"`
	SectionList bool   `json:"sectionList"`
}

// QuestionPostBody is the save-question request shape. Exactly one of Response /
// MultiResponse is set, except when the form held no answer at all (both empty).
type QuestionPostBody struct {
	Response                  *string  `json:"response"`
	MultiResponse             []string `json:"multiResponse"`
	SubmissionId              string   `json:"submissionId"`
	QuestionId                string   `json:"questionId"`
	ShouldUpdateSectionStatus bool     `json:"shouldUpdateSectionStatus"`
}

type FieldError struct {
	FieldName    string `json:"fieldName"`
	ErrorMessage string `json:"errorMessage"`
}

type ValidationErrorBody struct {
	Errors []FieldError `json:"errors"`
	Code   string       `json:"code"`
}
