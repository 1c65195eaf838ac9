package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rentdesk/rentdesk/validation"
)

// ErrNotFound is returned when an id does not resolve to a visible record.
var ErrNotFound = errors.New("record not found")

// ValidationError reports field constraint violations from a mutation.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Violations.Fields(), ", "))
}

// AsValidation unwraps err into a ValidationError, if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func violationsErr(v validation.Violations) error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Violations: v}
}
