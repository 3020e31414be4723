package usecase

import "strings"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// ValidationErrors joins the per-field errors of ValidateDraft into a single
// error for the workflow boundary.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func IsValidationError(err error) bool {
	if _, ok := err.(ValidationError); ok {
		return true
	}
	_, ok := err.(ValidationErrors)
	return ok
}
