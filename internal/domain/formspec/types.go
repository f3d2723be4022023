package formspec

import (
	"encoding/json"
	"fmt"
)

// FieldType is the closed set of question types an administrator can compose.
type FieldType string

const (
	FieldShortText      FieldType = "short_text"
	FieldLongText       FieldType = "long_text"
	FieldNumber         FieldType = "number"
	FieldEmail          FieldType = "email"
	FieldPhone          FieldType = "phone"
	FieldDate           FieldType = "date"
	FieldTime           FieldType = "time"
	FieldSingleChoice   FieldType = "single_choice"
	FieldMultipleChoice FieldType = "multiple_choice"
	FieldDropdown       FieldType = "dropdown"
	FieldFileUpload     FieldType = "file_upload"
)

var fieldTypes = map[FieldType]struct{}{
	FieldShortText:      {},
	FieldLongText:       {},
	FieldNumber:         {},
	FieldEmail:          {},
	FieldPhone:          {},
	FieldDate:           {},
	FieldTime:           {},
	FieldSingleChoice:   {},
	FieldMultipleChoice: {},
	FieldDropdown:       {},
	FieldFileUpload:     {},
}

// ParseFieldType rejects anything outside the closed set. There is no
// generic-text fallback for unknown types.
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(s)
	if _, ok := fieldTypes[t]; !ok {
		return "", fmt.Errorf("unknown field type: %q", s)
	}
	return t, nil
}

func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// HasOptions reports whether the type carries a closed option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldSingleChoice, FieldMultipleChoice, FieldDropdown:
		return true
	}
	return false
}

// UnmarshalJSON enforces the closed set when decoding persisted forms.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFieldType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// DefaultPhonePattern matches the NNN-NNNN-NNNN mobile format used on
// application forms when a field does not configure its own pattern.
const DefaultPhonePattern = `^\d{3}-\d{4}-\d{4}$`

// Validation is the type-dependent constraint bag of a field. Only the
// members matching the field type are honored; the rest stay nil.
type Validation struct {
	MinLength         *int     `json:"minLength,omitempty"`
	MaxLength         *int     `json:"maxLength,omitempty"`
	MinValue          *float64 `json:"minValue,omitempty"`
	MaxValue          *float64 `json:"maxValue,omitempty"`
	Pattern           string   `json:"pattern,omitempty"`
	AllowedExtensions []string `json:"allowedExtensions,omitempty"`
	MaxFileSize       *int64   `json:"maxFileSize,omitempty"`
}

func (v Validation) clone() Validation {
	out := v
	if v.AllowedExtensions != nil {
		out.AllowedExtensions = append([]string(nil), v.AllowedExtensions...)
	}
	return out
}
