package entity

// MandatoryQuestions is the fixed organisation/funding question set asked once
// per applicant and reused across schemes.
type MandatoryQuestions struct {
	Id                  string   `json:"id"`
	SchemeId            string   `json:"schemeId"`
	SubmissionId        string   `json:"submissionId"`
	Name                string   `json:"name"`
	AddressLine1        string   `json:"addressLine1"`
	AddressLine2        string   `json:"addressLine2"`
	City                string   `json:"city"`
	County              string   `json:"county"`
	Postcode            string   `json:"postcode"`
	OrgType             string   `json:"orgType"`
	CompaniesHouseNo    string   `json:"companiesHouseNumber"`
	CharityCommissionNo string   `json:"charityCommissionNumber"`
	FundingAmount       string   `json:"fundingAmount"`
	FundingLocation     []string `json:"fundingLocation"`
	Status              string   `json:"status"`
}

type UpdateMandatoryQuestionInput struct {
	Id     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}
