package formspec

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldSpec is one typed question inside a FormSpec. ID is assigned once by
// the builder and survives edits; Order mirrors the field's position in the
// form's slice.
type FieldSpec struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Type        FieldType  `json:"type"`
	Required    bool       `json:"required"`
	Order       int        `json:"order"`
	Description string     `json:"description,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Options     []string   `json:"options,omitempty"`
	Validation  Validation `json:"validation"`
}

// FieldDraft is the admin-supplied content of a field: everything except the
// id and position, which the builder owns.
type FieldDraft struct {
	Label       string     `json:"label"`
	Type        FieldType  `json:"type"`
	Required    bool       `json:"required"`
	Description string     `json:"description,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Options     []string   `json:"options,omitempty"`
	Validation  Validation `json:"validation"`
}

// spec materializes the draft into a FieldSpec, normalizing type-irrelevant
// parts: options are dropped for non-choice types and file extensions are
// lower-cased without their leading dot.
func (d FieldDraft) spec() FieldSpec {
	f := FieldSpec{
		Label:       d.Label,
		Type:        d.Type,
		Required:    d.Required,
		Description: d.Description,
		Placeholder: d.Placeholder,
		Validation:  d.Validation.clone(),
	}
	if d.Type.HasOptions() {
		f.Options = append([]string(nil), d.Options...)
	}
	if len(f.Validation.AllowedExtensions) > 0 {
		exts := make([]string, 0, len(f.Validation.AllowedExtensions))
		for _, ext := range f.Validation.AllowedExtensions {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				exts = append(exts, ext)
			}
		}
		f.Validation.AllowedExtensions = exts
	}
	return f
}

func (f FieldSpec) clone() FieldSpec {
	out := f
	if f.Options != nil {
		out.Options = append([]string(nil), f.Options...)
	}
	out.Validation = f.Validation.clone()
	return out
}

// ValidateSelf checks the field definition itself, not an answer to it.
// Every violation is reported; nothing panics.
func (f FieldSpec) ValidateSelf() []FieldError {
	var errs []FieldError
	fail := func(rule, msg string) {
		errs = append(errs, FieldError{FieldID: f.ID, Label: f.displayLabel(), Rule: rule, Message: msg})
	}

	if strings.TrimSpace(f.Label) == "" {
		fail(RuleLabelRequired, "label must not be empty")
	}
	if !f.Type.Valid() {
		fail(RuleTypeInvalid, fmt.Sprintf("unknown field type %q", string(f.Type)))
		return errs
	}

	if f.Type.HasOptions() {
		if len(f.Options) == 0 {
			fail(RuleOptionsRequired, "choice fields need at least one option")
		}
		seen := make(map[string]struct{}, len(f.Options))
		for _, opt := range f.Options {
			if strings.TrimSpace(opt) == "" {
				fail(RuleOptionsRequired, "options must not be blank")
				continue
			}
			if _, dup := seen[opt]; dup {
				fail(RuleOptionsDistinct, fmt.Sprintf("duplicate option %q", opt))
			}
			seen[opt] = struct{}{}
		}
	}

	v := f.Validation
	switch f.Type {
	case FieldShortText, FieldLongText:
		if v.MinLength != nil && *v.MinLength < 0 {
			fail(RuleBoundsInvalid, "minLength must not be negative")
		}
		if v.MaxLength != nil && *v.MaxLength < 0 {
			fail(RuleBoundsInvalid, "maxLength must not be negative")
		}
		if v.MinLength != nil && v.MaxLength != nil && *v.MinLength > *v.MaxLength {
			fail(RuleBoundsInvalid, "minLength must not exceed maxLength")
		}
	case FieldNumber:
		if v.MinValue != nil && v.MaxValue != nil && *v.MinValue > *v.MaxValue {
			fail(RuleBoundsInvalid, "minValue must not exceed maxValue")
		}
	case FieldPhone:
		if v.Pattern != "" {
			if _, err := regexp.Compile(v.Pattern); err != nil {
				fail(RulePatternInvalid, "pattern is not a valid regular expression")
			}
		}
	case FieldFileUpload:
		if v.MaxFileSize != nil && *v.MaxFileSize < 0 {
			fail(RuleBoundsInvalid, "maxFileSize must not be negative")
		}
	}
	return errs
}

// displayLabel keeps error messages readable for fields that are themselves
// missing a label.
func (f FieldSpec) displayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	if f.ID != "" {
		return "field " + f.ID
	}
	return "field"
}

// phonePattern returns the compiled pattern for a phone field, falling back
// to the default when the field sets none.
func (f FieldSpec) phonePattern() *regexp.Regexp {
	if f.Validation.Pattern != "" {
		if re, err := regexp.Compile(f.Validation.Pattern); err == nil {
			return re
		}
	}
	return defaultPhoneRe
}

var defaultPhoneRe = regexp.MustCompile(DefaultPhonePattern)
