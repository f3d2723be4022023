package formspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFollowsFormOrder(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "a", Label: "Name", Type: FieldShortText, Order: 0},
		{ID: "b", Label: "Interests", Type: FieldMultipleChoice, Options: []string{"x", "y"}, Order: 1},
		{ID: "c", Label: "Resume", Type: FieldFileUpload, Order: 2},
	}}
	resp := Response{
		"a": "Kim Minji",
		"b": []string{"y", "x"},
		"c": FileReference{Key: "uploads/r", Name: "resume.pdf", Size: 1234},
	}

	items := Render(form, resp)
	require.Len(t, items, 3)

	assert.Equal(t, "Name", items[0].Label)
	assert.Equal(t, FieldShortText, items[0].TypeHint)
	assert.Equal(t, DisplayValue{Kind: ValueText, Text: "Kim Minji"}, items[0].Value)

	// Token order is the applicant's selection order.
	assert.Equal(t, DisplayValue{Kind: ValueTokens, Tokens: []string{"y", "x"}}, items[1].Value)

	require.Equal(t, ValueFile, items[2].Value.Kind)
	assert.Equal(t, "resume.pdf", items[2].Value.File.Name)
}

func TestRenderUnansweredFieldGetsPlaceholder(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "a", Label: "Name", Type: FieldShortText, Order: 0},
	}}

	items := Render(form, Response{})
	require.Len(t, items, 1)
	assert.Equal(t, DisplayValue{Kind: ValueNone, Text: NoResponsePlaceholder}, items[0].Value)

	// An empty stored string is indistinguishable from no answer.
	items = Render(form, Response{"a": ""})
	assert.Equal(t, ValueNone, items[0].Value.Kind)
}

func TestRenderOrphanedAnswers(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "keep", Label: "Kept", Type: FieldShortText, Order: 0},
	}}
	resp := Response{
		"keep":    "v",
		"removed": "old answer",
		"gone":    []string{"a", "b"},
	}

	items := Render(form, resp)
	require.Len(t, items, 3)

	assert.Equal(t, "Kept", items[0].Label)

	// Orphans are appended after form fields, labeled synthetically, with
	// no type hint, and rendered by their stored shape.
	assert.Equal(t, "field gone", items[1].Label)
	assert.True(t, items[1].Orphaned)
	assert.Equal(t, FieldType(""), items[1].TypeHint)
	assert.Equal(t, ValueTokens, items[1].Value.Kind)

	assert.Equal(t, "field removed", items[2].Label)
	assert.Equal(t, ValueText, items[2].Value.Kind)
}

// Rendering is total: any response against any form, including fully
// disjoint ones, yields |response| + unanswered-field items.
func TestRenderDisjointFormAndResponse(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "q1", Label: "Q1", Type: FieldShortText, Order: 0},
		{ID: "q2", Label: "Q2", Type: FieldNumber, Order: 1},
	}}
	resp := Response{"x": "1", "y": "2", "z": "3"}

	items := Render(form, resp)
	assert.Len(t, items, len(resp)+len(form.Fields))

	items = Render(FormSpec{}, resp)
	assert.Len(t, items, len(resp))

	items = Render(form, nil)
	assert.Len(t, items, len(form.Fields))
}

func TestRenderDateFormatting(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "d", Label: "Date", Type: FieldDate, Order: 0},
	}}

	items := Render(form, Response{"d": "2026-03-09"})
	assert.Equal(t, "Mar 9, 2026", items[0].Value.Text)

	// Unparsable values fall back to the raw stored string.
	items = Render(form, Response{"d": "sometime in spring"})
	assert.Equal(t, "sometime in spring", items[0].Value.Text)
}

func TestRenderTimeVerbatim(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "t", Label: "Time", Type: FieldTime, Order: 0},
	}}
	items := Render(form, Response{"t": "09:30"})
	assert.Equal(t, DisplayValue{Kind: ValueText, Text: "09:30"}, items[0].Value)
}

// A stored value whose shape no longer matches the field's current type
// renders by its own shape.
func TestRenderTypeMismatchUsesStoredShape(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "a", Label: "Was multi-choice", Type: FieldShortText, Order: 0},
		{ID: "b", Label: "Was file", Type: FieldLongText, Order: 1},
	}}
	resp := Response{
		"a": []string{"x", "y"},
		"b": FileReference{Key: "uploads/f", Name: "f.pdf"},
	}

	items := Render(form, resp)
	assert.Equal(t, ValueTokens, items[0].Value.Kind)
	assert.Equal(t, ValueFile, items[1].Value.Kind)
}

func TestRenderFileFieldWithBareStringValue(t *testing.T) {
	form := FormSpec{Title: "t", Fields: []FieldSpec{
		{ID: "f", Label: "Upload", Type: FieldFileUpload, Order: 0},
	}}
	items := Render(form, Response{"f": "uploads/legacy-key"})
	require.Equal(t, ValueFile, items[0].Value.Kind)
	assert.Equal(t, "uploads/legacy-key", items[0].Value.File.Key)
}

func TestDecodeResponseNormalizesShapes(t *testing.T) {
	data := []byte(`{
		"s": "text",
		"l": ["a","b"],
		"f": {"key":"uploads/k","name":"doc.pdf","size":10},
		"n": 42,
		"o": {"weird": true}
	}`)

	resp, err := DecodeResponse(data)
	require.NoError(t, err)
	assert.Equal(t, "text", resp["s"])
	assert.Equal(t, []string{"a", "b"}, resp["l"])
	assert.Equal(t, FileReference{Key: "uploads/k", Name: "doc.pdf", Size: 10}, resp["f"])
	assert.Equal(t, "42", resp["n"])
	// Unrecognized shapes degrade to their raw JSON text.
	assert.Contains(t, resp["o"], "weird")
}

func TestDecodeResponseEmpty(t *testing.T) {
	resp, err := DecodeResponse(nil)
	require.NoError(t, err)
	assert.Empty(t, resp)

	_, err = DecodeResponse([]byte("not json"))
	assert.Error(t, err)
}
