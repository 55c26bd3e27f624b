package forms

import (
	"grant-management-portal/internal/entity"
)

// dateArrayErrorMessage is the exact text the backend sends when a whole date is
// missing. Only that message attaches to the composite date control; anything else
// falls back to the bare question id.
const dateArrayErrorMessage = "You must enter a date"

// ConvertAddressFieldNameFromErrors maps a positional multiResponse error key onto
// the address input it belongs to.
func ConvertAddressFieldNameFromErrors(fieldName string, questionId string) string {
	switch fieldName {
	case "multiResponse[0]":
		return questionId + "-address-line-1"
	case "multiResponse[1]":
		return questionId + "-address-line-2"
	case "multiResponse[2]":
		return questionId + "-town"
	case "multiResponse[3]":
		return questionId + "-county"
	case "multiResponse[4]":
		return questionId + "-postcode"
	}

	return questionId
}

// ConvertDateFieldNameFromErrors maps a positional multiResponse error key onto
// the day/month/year input it belongs to.
func ConvertDateFieldNameFromErrors(fieldName string, questionId string, errorMessage string) string {
	switch fieldName {
	case "multiResponse[0]":
		return questionId + "-day"
	case "multiResponse[1]":
		return questionId + "-month"
	case "multiResponse[2]":
		return questionId + "-year"
	case "multiResponse":
		if errorMessage == dateArrayErrorMessage {
			return questionId + "-date"
		}
	}

	return questionId
}

// MapFieldErrors rewrites backend field names onto the on-screen inputs for the
// given response type. Non-composite questions always attach to the question id.
func MapFieldErrors(responseType string, questionId string, fieldErrors []entity.FieldError) []entity.FieldError {
	mapped := make([]entity.FieldError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		fieldName := questionId
		switch responseType {
		case entity.Address:
			fieldName = ConvertAddressFieldNameFromErrors(fe.FieldName, questionId)
		case entity.Date:
			fieldName = ConvertDateFieldNameFromErrors(fe.FieldName, questionId, fe.ErrorMessage)
		}

		mapped = append(mapped, entity.FieldError{FieldName: fieldName, ErrorMessage: fe.ErrorMessage})
	}

	return mapped
}
