package formspec

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Collect validates raw per-field input against the form and assembles a
// Response. Every field is checked and every error reported together;
// nothing short-circuits and no input key is silently dropped. The returned
// Response is non-nil only when the error slice is empty.
//
// Consent flags are a precondition of the caller and are checked before
// Collect is ever invoked.
func Collect(form FormSpec, input map[string]json.RawMessage) (Response, []FieldError) {
	var errs []FieldError

	known := make(map[string]struct{}, len(form.Fields))
	for _, f := range form.Fields {
		known[f.ID] = struct{}{}
	}
	unknown := make([]string, 0)
	for id := range input {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		errs = append(errs, FieldError{FieldID: id, Label: "field " + id, Rule: RuleUnknownField,
			Message: "answer does not match any question on this form"})
	}

	fields := make([]FieldSpec, len(form.Fields))
	copy(fields, form.Fields)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })

	resp := make(Response, len(fields))
	for _, f := range fields {
		value, fieldErrs := collectField(f, input[f.ID])
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}
		if value != nil {
			resp[f.ID] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return resp, nil
}

// collectField validates one answer. It returns (nil, nil) for an optional
// field with no answer.
func collectField(f FieldSpec, raw json.RawMessage) (any, []FieldError) {
	fail := func(rule, msg string) []FieldError {
		return []FieldError{{FieldID: f.ID, Label: f.displayLabel(), Rule: rule, Message: msg}}
	}
	missing := func() []FieldError {
		if f.Required {
			return fail(RuleRequired, "a response is required")
		}
		return nil
	}

	if isAbsent(raw) {
		return nil, missing()
	}

	switch f.Type {
	case FieldMultipleChoice:
		var values []string
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fail(RuleChoice, "expected a list of selected options")
		}
		// An empty selection on a required field is a missing answer, not an
		// invalid choice.
		if len(values) == 0 {
			return nil, missing()
		}
		var errs []FieldError
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if !contains(f.Options, v) {
				errs = append(errs, fail(RuleChoice, fmt.Sprintf("%q is not one of the available options", v))...)
				continue
			}
			if _, dup := seen[v]; dup {
				errs = append(errs, fail(RuleDuplicateChoice, fmt.Sprintf("%q is selected more than once", v))...)
			}
			seen[v] = struct{}{}
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return values, nil

	case FieldFileUpload:
		var ref FileReference
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, fail(RuleUpload, "expected an uploaded file reference")
		}
		if ref.Key == "" && ref.URL == "" {
			if ref.Name == "" {
				return nil, missing()
			}
			// A name without a key means the upload never completed; the
			// field must not pass as answered.
			return nil, fail(RuleUpload, "the file upload did not complete")
		}
		if fe := CheckFile(f, ref.Name, ref.Size); fe != nil {
			return nil, []FieldError{*fe}
		}
		return ref, nil

	case FieldNumber:
		s, num, err := decodeNumber(raw)
		if err != nil {
			return nil, fail(RuleNumber, "expected a number")
		}
		if s == "" {
			return nil, missing()
		}
		if f.Validation.MinValue != nil && num < *f.Validation.MinValue {
			return nil, fail(RuleMinValue, fmt.Sprintf("must be at least %s", trimFloat(*f.Validation.MinValue)))
		}
		if f.Validation.MaxValue != nil && num > *f.Validation.MaxValue {
			return nil, fail(RuleMaxValue, fmt.Sprintf("must be at most %s", trimFloat(*f.Validation.MaxValue)))
		}
		return s, nil

	default:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fail(RuleRequired, "expected a text value")
		}
		if s == "" {
			return nil, missing()
		}
		if errs := validateText(f, s); len(errs) > 0 {
			return nil, errs
		}
		return s, nil
	}
}

func validateText(f FieldSpec, s string) []FieldError {
	fail := func(rule, msg string) []FieldError {
		return []FieldError{{FieldID: f.ID, Label: f.displayLabel(), Rule: rule, Message: msg}}
	}

	switch f.Type {
	case FieldShortText, FieldLongText:
		length := utf8.RuneCountInString(s)
		if f.Validation.MinLength != nil && length < *f.Validation.MinLength {
			return fail(RuleMinLength, fmt.Sprintf("must be at least %d characters", *f.Validation.MinLength))
		}
		if f.Validation.MaxLength != nil && length > *f.Validation.MaxLength {
			return fail(RuleMaxLength, fmt.Sprintf("must be at most %d characters", *f.Validation.MaxLength))
		}
	case FieldEmail:
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return fail(RuleEmail, "is not a valid email address")
		}
	case FieldPhone:
		if !f.phonePattern().MatchString(s) {
			return fail(RulePattern, "is not a valid phone number")
		}
	case FieldDate:
		if _, err := time.Parse(dateLayout, s); err != nil {
			return fail(RuleDate, "is not a valid date (YYYY-MM-DD)")
		}
	case FieldTime:
		if _, err := time.Parse(timeLayout, s); err != nil {
			return fail(RuleTime, "is not a valid time (HH:MM)")
		}
	case FieldSingleChoice, FieldDropdown:
		if !contains(f.Options, s) {
			return fail(RuleChoice, fmt.Sprintf("%q is not one of the available options", s))
		}
	}
	return nil
}

// CheckFile applies a file field's constraints to file metadata. It runs
// before any bytes are transmitted so a rejected file never reaches the
// upload service. Extension matching ignores case.
func CheckFile(f FieldSpec, filename string, size int64) *FieldError {
	v := f.Validation
	if len(v.AllowedExtensions) > 0 {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
		if !contains(v.AllowedExtensions, ext) {
			return &FieldError{FieldID: f.ID, Label: f.displayLabel(), Rule: RuleExtension,
				Message: fmt.Sprintf("files of type %q are not accepted (allowed: %s)", ext, strings.Join(v.AllowedExtensions, ", "))}
		}
	}
	if v.MaxFileSize != nil && size > *v.MaxFileSize {
		return &FieldError{FieldID: f.ID, Label: f.displayLabel(), Rule: RuleFileSize,
			Message: fmt.Sprintf("file exceeds the %d byte limit", *v.MaxFileSize)}
	}
	return nil
}

// isAbsent treats missing keys, JSON null and the empty string as "no
// answer". The number 0 and the string "0" are answers.
func isAbsent(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "null" || trimmed == `""`
}

func decodeNumber(raw json.RawMessage) (s string, num float64, err error) {
	if err = json.Unmarshal(raw, &num); err == nil {
		return trimFloat(num), num, nil
	}
	if err = json.Unmarshal(raw, &s); err != nil {
		return "", 0, err
	}
	if s == "" {
		return "", 0, nil
	}
	num, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(s), num, nil
}

func trimFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
