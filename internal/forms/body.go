package forms

import (
	"net/url"
	"sort"
	"strings"

	"grant-management-portal/internal/entity"
)

// Composite inputs post one field per part. The backend expects the parts in this
// positional order inside multiResponse, but url.Values loses the order the browser
// submitted them in, so matched keys are re-ordered against this table.
var multiFieldSuffixOrder = []string{
	"address-line-1",
	"address-line-2",
	"town",
	"county",
	"postcode",
	"day",
	"month",
	"year",
}

// NormalizeBody strips carriage returns from every submitted value. The transport
// encodes newlines as CRLF while the backend counts LF only; without this a long
// answer fails server-side length validation with more characters than the
// applicant can see.
func NormalizeBody(body url.Values) url.Values {
	normalized := make(url.Values, len(body))
	for key, values := range body {
		cleaned := make([]string, 0, len(values))
		for _, v := range values {
			cleaned = append(cleaned, strings.ReplaceAll(v, "\r", ""))
		}
		normalized[key] = cleaned
	}

	return normalized
}

// FieldsStartingWithQuestionId returns the form keys that belong to the given
// question, composite parts first in their positional order.
func FieldsStartingWithQuestionId(body url.Values, questionId string) []string {
	matched := make([]string, 0)
	for key := range body {
		if strings.Contains(key, questionId) {
			matched = append(matched, key)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		pi, pj := suffixPosition(matched[i], questionId), suffixPosition(matched[j], questionId)
		if pi != pj {
			return pi < pj
		}

		return matched[i] < matched[j]
	})

	return matched
}

func suffixPosition(key string, questionId string) int {
	suffix := strings.TrimPrefix(strings.TrimPrefix(key, questionId), "-")
	for i, s := range multiFieldSuffixOrder {
		if suffix == s {
			return i
		}
	}

	return len(multiFieldSuffixOrder)
}

// CreateRequestBody reshapes a flat form submission into the save-question request.
// A single matched key with a single value becomes a plain response; multiple
// matched keys (address/date parts), a multi-valued key (checkbox group) or a
// multi-select question become a multiResponse. When nothing in the form matches
// the question, both stay empty.
func CreateRequestBody(body url.Values, questionId string, submissionId string, responseType string) *entity.QuestionPostBody {
	request := &entity.QuestionPostBody{
		SubmissionId:              submissionId,
		QuestionId:                questionId,
		ShouldUpdateSectionStatus: true,
	}

	keys := FieldsStartingWithQuestionId(body, questionId)
	if len(keys) == 0 {
		return request
	}

	if len(keys) == 1 {
		values := body[keys[0]]
		if len(values) == 1 && responseType != entity.MultipleSelection {
			response := values[0]
			request.Response = &response

			return request
		}

		request.MultiResponse = append([]string{}, values...)

		return request
	}

	multi := make([]string, 0, len(keys))
	for _, key := range keys {
		multi = append(multi, body.Get(key))
	}
	request.MultiResponse = multi

	return request
}
