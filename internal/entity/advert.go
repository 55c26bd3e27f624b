package entity

// advert lifecycle statuses
const (
	AdvertDraft       = "DRAFT"
	AdvertScheduled   = "SCHEDULED"
	AdvertPublished   = "PUBLISHED"
	AdvertUnpublished = "UNPUBLISHED"
	AdvertUnscheduled = "UNSCHEDULED"
)

// backend model
type GrantAdvert struct {
	Id          string          `json:"grantAdvertId"`
	SchemeId    string          `json:"schemeId"`
	Name        string          `json:"grantAdvertName"`
	Status      string          `json:"grantAdvertStatus"`
	Sections    []AdvertSection `json:"sections"`
	OpeningDate string          `json:"openingDate"`
	ClosingDate string          `json:"closingDate"`
}

type AdvertSection struct {
	Id        string           `json:"id"`
	Title     string           `json:"title"`
	Status    string           `json:"status"`
	Questions []AdvertQuestion `json:"questions"`
}

type AdvertQuestion struct {
	Id            string   `json:"id"`
	Title         string   `json:"title"`
	HintText      string   `json:"hintText"`
	ResponseType  string   `json:"responseType"`
	Response      string   `json:"response"`
	MultiResponse []string `json:"multiResponse"`
	Status        string   `json:"status"`
}

// SaveAdvertPageInput is the save-page request: answered values plus the admin's
// "have you completed this question" choice, which drives the status tag.
type SaveAdvertPageInput struct {
	Response      string   `json:"response"`
	MultiResponse []string `json:"multiResponse"`
	Completed     bool     `json:"completed"`
}
