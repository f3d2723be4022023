package formspec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFieldNotFound is returned by builder operations targeting an id
	// that is not part of the form.
	ErrFieldNotFound = errors.New("field not found")
	// ErrFormTitleRequired is returned by Validate when the form has no title.
	ErrFormTitleRequired = errors.New("form title is required")
	// ErrInvalidDirection is returned by MoveField for directions other than
	// up and down.
	ErrInvalidDirection = errors.New("invalid move direction")
	// ErrDuplicateFieldID is returned by AddExistingField when the id is
	// already taken.
	ErrDuplicateFieldID = errors.New("duplicate field id")
)

// Rule identifiers carried by FieldError so clients can map a failure back
// to the violated constraint.
const (
	RuleRequired        = "required"
	RuleUnknownField    = "unknown_field"
	RuleMinLength       = "min_length"
	RuleMaxLength       = "max_length"
	RuleMinValue        = "min_value"
	RuleMaxValue        = "max_value"
	RuleNumber          = "number"
	RuleEmail           = "email"
	RulePattern         = "pattern"
	RuleDate            = "date"
	RuleTime            = "time"
	RuleChoice          = "choice"
	RuleDuplicateChoice = "duplicate_choice"
	RuleExtension       = "extension"
	RuleFileSize        = "file_size"
	RuleUpload          = "upload"

	// Field-definition rules reported by ValidateSelf.
	RuleLabelRequired   = "label_required"
	RuleIDRequired      = "id_required"
	RuleIDDuplicate     = "id_duplicate"
	RuleTypeInvalid     = "type_invalid"
	RuleOptionsRequired = "options_required"
	RuleOptionsDistinct = "options_distinct"
	RuleBoundsInvalid   = "bounds_invalid"
	RulePatternInvalid  = "pattern_invalid"
)

// FieldError describes one violated constraint on one field. Label is the
// display name shown to users; FieldID is kept for clients that need to
// highlight the input.
type FieldError struct {
	FieldID string `json:"fieldId,omitempty"`
	Label   string `json:"label"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

// ValidationError aggregates every field-level failure of an operation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
