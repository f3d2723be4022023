package formspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FormSpec is an ordered, titled collection of fields owned by exactly one
// program. Field order values are kept in lock-step with slice positions by
// the builder; they are never settable independently.
type FormSpec struct {
	ID          string      `json:"id,omitempty"`
	ProgramID   string      `json:"programId,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldSpec `json:"fields"`
}

func (f FormSpec) clone() FormSpec {
	out := f
	out.Fields = make([]FieldSpec, len(f.Fields))
	for i, field := range f.Fields {
		out.Fields[i] = field.clone()
	}
	return out
}

// Field looks a field up by id.
func (f FormSpec) Field(id string) (FieldSpec, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Validate runs the save-time checks: non-empty title, unique ids, dense
// order in lock-step with slice positions, and every field self-valid.
// Title absence is reported as ErrFormTitleRequired, everything else as a
// *ValidationError.
func (f FormSpec) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrFormTitleRequired
	}

	var errs []FieldError
	seen := make(map[string]struct{}, len(f.Fields))
	for i, field := range f.Fields {
		if field.ID == "" {
			errs = append(errs, FieldError{Label: field.displayLabel(), Rule: RuleIDRequired, Message: "field has no id"})
		} else if _, dup := seen[field.ID]; dup {
			errs = append(errs, FieldError{FieldID: field.ID, Label: field.displayLabel(), Rule: RuleIDDuplicate, Message: "duplicate field id"})
		}
		seen[field.ID] = struct{}{}
		if field.Order != i {
			errs = append(errs, FieldError{FieldID: field.ID, Label: field.displayLabel(), Rule: RuleBoundsInvalid,
				Message: fmt.Sprintf("field order %d does not match position %d", field.Order, i)})
		}
		errs = append(errs, field.ValidateSelf()...)
	}
	return newValidationError(errs)
}

// Encode serializes the form deterministically; encoding the result of
// Decode reproduces the input byte for byte.
func (f FormSpec) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// Decode parses a persisted form strictly: unknown JSON members and unknown
// field types are hard errors, as is a broken order invariant. A form that
// fails here is corrupt, not user-fixable.
func Decode(data []byte) (FormSpec, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var f FormSpec
	if err := dec.Decode(&f); err != nil {
		return FormSpec{}, fmt.Errorf("decode form: %w", err)
	}
	if err := checkOrder(f.Fields); err != nil {
		return FormSpec{}, err
	}
	return f, nil
}

// DecodeFields parses a persisted field array with the same strictness as
// Decode.
func DecodeFields(data []byte) ([]FieldSpec, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var fields []FieldSpec
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	if err := checkOrder(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// EncodeFields serializes just the field array, deterministically.
func EncodeFields(fields []FieldSpec) ([]byte, error) {
	if fields == nil {
		fields = []FieldSpec{}
	}
	return json.Marshal(fields)
}

func checkOrder(fields []FieldSpec) error {
	for i, field := range fields {
		if field.Order != i {
			return fmt.Errorf("decode form: field %q order %d does not match position %d", field.ID, field.Order, i)
		}
	}
	return nil
}
