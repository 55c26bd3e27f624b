package entity

// backend model
type Scheme struct {
	Id            string `json:"schemeId"`
	FunderId      string `json:"funderId"`
	Name          string `json:"name"`
	GGISReference string `json:"ggisReference"`
	ContactEmail  string `json:"contactEmail"`
	Version       string `json:"version"`
	CreatedDate   string `json:"createdDate"`
}

// service + client input model
type CreateSchemeInput struct {
	Name          string `json:"name"`
	GGISReference string `json:"ggisReference"`
	ContactEmail  string `json:"contactEmail"`
}

// PatchSchemeInput carries only the fields being edited; empty fields are left
// untouched by the backend.
type PatchSchemeInput struct {
	Name          string `json:"name,omitempty"`
	GGISReference string `json:"ggisReference,omitempty"`
	ContactEmail  string `json:"contactEmail,omitempty"`
}

// application form statuses
const (
	ApplicationFormDraft     = "DRAFT"
	ApplicationFormPublished = "PUBLISHED"
	ApplicationFormRemoved   = "REMOVED"
)

type ApplicationForm struct {
	Id       string `json:"grantApplicationId"`
	SchemeId string `json:"grantSchemeId"`
	Name     string `json:"applicationName"`
	Status   string `json:"applicationStatus"`
}
