package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDraftValid(t *testing.T) {
	assert.Empty(t, ValidateDraft(sampleDraft()))
}

func TestValidateDraftRequiredFields(t *testing.T) {
	errs := ValidateDraft(DraftInput{})

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}

	assert.Contains(t, fields, "account_name")
	assert.Contains(t, fields, "industry")
	assert.Contains(t, fields, "interest")
	assert.Contains(t, fields, "language")
	assert.Contains(t, fields, "contacts")
	assert.Contains(t, fields, "num_emails")
}

func TestValidateDraftRejectsNonNumericEmails(t *testing.T) {
	draft := sampleDraft()
	draft.NumEmails = "two"

	errs := ValidateDraft(draft)

	assert.Len(t, errs, 1)
	assert.Equal(t, "num_emails", errs[0].Field)
	assert.Equal(t, "must be a number", errs[0].Message)
}

func TestValidateDraftContactsAllWhitespace(t *testing.T) {
	draft := sampleDraft()
	draft.Contacts = " , ,  "

	errs := ValidateDraft(draft)

	assert.Len(t, errs, 1)
	assert.Equal(t, "contacts", errs[0].Field)
}

func TestValidationErrorsJoin(t *testing.T) {
	err := ValidationErrors{
		{"account_name", "is required"},
		{"industry", "is required"},
	}

	assert.Equal(t, "account_name: is required; industry: is required", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(ValidationError{"to", "is required"}))
}
