package formspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func sampleForm(t *testing.T) FormSpec {
	t.Helper()
	form := FormSpec{ID: "form-1", ProgramID: "prog-1", Title: "Volunteer application", Description: "2026 spring term"}

	var err error
	form, err = AddField(form, FieldDraft{
		Label: "Name", Type: FieldShortText, Required: true,
		Validation: Validation{MinLength: intPtr(2), MaxLength: intPtr(30)},
	})
	require.NoError(t, err)
	form, err = AddField(form, FieldDraft{
		Label: "Age", Type: FieldNumber,
		Validation: Validation{MinValue: floatPtr(14), MaxValue: floatPtr(99)},
	})
	require.NoError(t, err)
	form, err = AddField(form, FieldDraft{
		Label: "Interests", Type: FieldMultipleChoice, Required: true,
		Options: []string{"education", "environment", "welfare"},
	})
	require.NoError(t, err)
	form, err = AddField(form, FieldDraft{
		Label: "Resume", Type: FieldFileUpload,
		Validation: Validation{AllowedExtensions: []string{"pdf", "hwp"}, MaxFileSize: int64Ptr(1 << 20)},
	})
	require.NoError(t, err)
	return form
}

// Encoding a decoded form reproduces the original bytes exactly.
func TestFormEncodingRoundTripIsStable(t *testing.T) {
	form := sampleForm(t)

	first, err := form.Encode()
	require.NoError(t, err)

	decoded, err := Decode(first)
	require.NoError(t, err)

	second, err := decoded.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, form, decoded)
}

func TestDecodeRejectsUnknownFieldType(t *testing.T) {
	_, err := Decode([]byte(`{"title":"t","fields":[{"id":"a","label":"x","type":"telepathy","required":false,"order":0,"validation":{}}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field type")
}

func TestDecodeRejectsUnknownMembers(t *testing.T) {
	_, err := Decode([]byte(`{"title":"t","fields":[],"bogus":1}`))
	assert.Error(t, err)
}

func TestDecodeRejectsBrokenOrder(t *testing.T) {
	_, err := Decode([]byte(`{"title":"t","fields":[{"id":"a","label":"x","type":"short_text","required":false,"order":3,"validation":{}}]}`))
	assert.Error(t, err)
}

func TestValidateRequiresTitle(t *testing.T) {
	form := sampleForm(t)
	form.Title = "  "
	assert.ErrorIs(t, form.Validate(), ErrFormTitleRequired)
}

func TestValidateReportsEveryBrokenField(t *testing.T) {
	form := FormSpec{
		Title: "t",
		Fields: []FieldSpec{
			{ID: "a", Label: "", Type: FieldShortText, Order: 0},
			{ID: "b", Label: "Region", Type: FieldDropdown, Order: 1},
		},
	}
	err := form.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	rules := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		rules = append(rules, fe.Rule)
	}
	assert.Contains(t, rules, RuleLabelRequired)
	assert.Contains(t, rules, RuleOptionsRequired)
}

func TestValidateSelfBounds(t *testing.T) {
	f := FieldSpec{ID: "a", Label: "Summary", Type: FieldShortText,
		Validation: Validation{MinLength: intPtr(10), MaxLength: intPtr(2)}}
	errs := f.ValidateSelf()
	require.Len(t, errs, 1)
	assert.Equal(t, RuleBoundsInvalid, errs[0].Rule)
	assert.Equal(t, "Summary", errs[0].Label)

	f = FieldSpec{ID: "a", Label: "Count", Type: FieldNumber,
		Validation: Validation{MinValue: floatPtr(5), MaxValue: floatPtr(1)}}
	require.Len(t, f.ValidateSelf(), 1)

	f = FieldSpec{ID: "a", Label: "Phone", Type: FieldPhone,
		Validation: Validation{Pattern: "("}}
	errs = f.ValidateSelf()
	require.Len(t, errs, 1)
	assert.Equal(t, RulePatternInvalid, errs[0].Rule)
}

func TestValidateSelfDuplicateOptions(t *testing.T) {
	f := FieldSpec{ID: "a", Label: "Region", Type: FieldSingleChoice,
		Options: []string{"seoul", "busan", "seoul"}}
	errs := f.ValidateSelf()
	require.Len(t, errs, 1)
	assert.Equal(t, RuleOptionsDistinct, errs[0].Rule)
}

func TestValidateDetectsOrderGaps(t *testing.T) {
	form := FormSpec{
		Title: "t",
		Fields: []FieldSpec{
			{ID: "a", Label: "A", Type: FieldShortText, Order: 0},
			{ID: "b", Label: "B", Type: FieldShortText, Order: 2},
		},
	}
	var verr *ValidationError
	require.ErrorAs(t, form.Validate(), &verr)
}

func TestValidateTagsIDViolations(t *testing.T) {
	form := FormSpec{
		Title: "t",
		Fields: []FieldSpec{
			{ID: "", Label: "A", Type: FieldShortText, Order: 0},
			{ID: "b", Label: "B", Type: FieldShortText, Order: 1},
			{ID: "b", Label: "C", Type: FieldShortText, Order: 2},
		},
	}
	var verr *ValidationError
	require.ErrorAs(t, form.Validate(), &verr)

	rules := make([]string, 0, len(verr.Fields))
	for _, fe := range verr.Fields {
		rules = append(rules, fe.Rule)
	}
	assert.Contains(t, rules, RuleIDRequired)
	assert.Contains(t, rules, RuleIDDuplicate)
}

func TestEncodeDecodeFieldsRoundTrip(t *testing.T) {
	form := sampleForm(t)

	data, err := EncodeFields(form.Fields)
	require.NoError(t, err)

	fields, err := DecodeFields(data)
	require.NoError(t, err)
	assert.Equal(t, form.Fields, fields)
}

func TestDecodeFieldsRejectsBrokenOrder(t *testing.T) {
	_, err := DecodeFields([]byte(`[{"id":"f1","label":"Name","type":"short_text","required":false,"order":3}]`))
	assert.Error(t, err)
}

func TestEncodeFieldsNilIsEmptyArray(t *testing.T) {
	data, err := EncodeFields(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
