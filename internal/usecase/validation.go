package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDraft checks required-field presence plus the numeric shape of
// num_emails. Anything deeper (enum typos, language codes) is normalized by
// BuildRequest instead of rejected here.
func ValidateDraft(draft DraftInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(draft.AccountName) == "" {
		errors = append(errors, ValidationError{"account_name", "is required"})
	}
	if strings.TrimSpace(draft.Industry) == "" {
		errors = append(errors, ValidationError{"industry", "is required"})
	}
	if strings.TrimSpace(draft.Interest) == "" {
		errors = append(errors, ValidationError{"interest", "is required"})
	}
	if strings.TrimSpace(draft.Language) == "" {
		errors = append(errors, ValidationError{"language", "is required"})
	}
	if !hasToken(draft.Contacts) {
		errors = append(errors, ValidationError{"contacts", "at least one contact is required"})
	}
	if strings.TrimSpace(draft.NumEmails) == "" {
		errors = append(errors, ValidationError{"num_emails", "is required"})
	} else if _, err := strconv.Atoi(strings.TrimSpace(draft.NumEmails)); err != nil {
		errors = append(errors, ValidationError{"num_emails", "must be a number"})
	}

	return errors
}

// hasToken reports whether a comma-separated list has at least one non-empty
// entry after trimming.
func hasToken(list string) bool {
	for _, tok := range strings.Split(list, ",") {
		if strings.TrimSpace(tok) != "" {
			return true
		}
	}
	return false
}
