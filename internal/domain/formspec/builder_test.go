package formspec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFieldIDs(t *testing.T) {
	t.Helper()
	orig := newFieldID
	n := 0
	newFieldID = func() string {
		n++
		return fmt.Sprintf("fld-%03d", n)
	}
	t.Cleanup(func() { newFieldID = orig })
}

func textDraft(label string) FieldDraft {
	return FieldDraft{Label: label, Type: FieldShortText}
}

func buildForm(t *testing.T, labels ...string) FormSpec {
	t.Helper()
	form := FormSpec{Title: "Application"}
	for _, label := range labels {
		var err error
		form, err = AddField(form, textDraft(label))
		require.NoError(t, err)
	}
	return form
}

func assertDenseOrder(t *testing.T, form FormSpec) {
	t.Helper()
	seen := make(map[string]struct{})
	for i, f := range form.Fields {
		assert.Equalf(t, i, f.Order, "field %q order out of step with position", f.ID)
		_, dup := seen[f.ID]
		assert.Falsef(t, dup, "duplicate field id %q", f.ID)
		seen[f.ID] = struct{}{}
	}
}

func TestAddFieldAppendsAtEnd(t *testing.T) {
	stubFieldIDs(t)

	form := buildForm(t, "Name", "Motivation")
	require.Len(t, form.Fields, 2)
	assert.Equal(t, "fld-001", form.Fields[0].ID)
	assert.Equal(t, "fld-002", form.Fields[1].ID)
	assertDenseOrder(t, form)
}

func TestAddFieldRejectsInvalidDraft(t *testing.T) {
	form := buildForm(t, "Name")

	_, err := AddField(form, FieldDraft{Label: "", Type: FieldShortText})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleLabelRequired, verr.Fields[0].Rule)

	_, err = AddField(form, FieldDraft{Label: "Region", Type: FieldDropdown})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleOptionsRequired, verr.Fields[0].Rule)
}

func TestAddFieldDropsOptionsForNonChoiceTypes(t *testing.T) {
	form, err := AddField(FormSpec{Title: "t"}, FieldDraft{
		Label:   "Age",
		Type:    FieldNumber,
		Options: []string{"unused"},
	})
	require.NoError(t, err)
	assert.Nil(t, form.Fields[0].Options)
}

func TestUpdateFieldReplacesAllButID(t *testing.T) {
	form := buildForm(t, "Name", "Motivation")
	id := form.Fields[1].ID

	updated, err := UpdateField(form, id, FieldDraft{
		Label:    "Motivation letter",
		Type:     FieldLongText,
		Required: true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated.Fields[1].ID)
	assert.Equal(t, 1, updated.Fields[1].Order)
	assert.Equal(t, "Motivation letter", updated.Fields[1].Label)
	assert.Equal(t, FieldLongText, updated.Fields[1].Type)

	// The input form is untouched.
	assert.Equal(t, "Motivation", form.Fields[1].Label)
}

func TestUpdateFieldNotFound(t *testing.T) {
	form := buildForm(t, "Name")
	_, err := UpdateField(form, "missing", textDraft("x"))
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestUpdateFieldValidationFailureLeavesFormUntouched(t *testing.T) {
	form := buildForm(t, "Name")
	before := form.Fields[0]

	_, err := UpdateField(form, form.Fields[0].ID, FieldDraft{Label: "", Type: FieldShortText})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, before, form.Fields[0])
}

func TestDeleteFieldRenumbersDensely(t *testing.T) {
	form := buildForm(t, "A", "B", "C", "D")
	out, err := DeleteField(form, form.Fields[1].ID)
	require.NoError(t, err)
	require.Len(t, out.Fields, 3)
	assert.Equal(t, []string{"A", "C", "D"}, fieldLabels(out))
	assertDenseOrder(t, out)

	_, err = DeleteField(form, "missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestMoveFieldSwapsWithNeighbor(t *testing.T) {
	form := buildForm(t, "A", "B", "C")

	out, err := MoveField(form, form.Fields[2].ID, MoveUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, fieldLabels(out))
	assertDenseOrder(t, out)

	out, err = MoveField(out, out.Fields[0].ID, MoveDown)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, fieldLabels(out))
	assertDenseOrder(t, out)
}

func TestMoveFieldAtBoundaryIsNoOp(t *testing.T) {
	form := buildForm(t, "A", "B", "C")

	up, err := MoveField(form, form.Fields[0].ID, MoveUp)
	require.NoError(t, err)
	assert.Equal(t, form, up)

	down, err := MoveField(form, form.Fields[2].ID, MoveDown)
	require.NoError(t, err)
	assert.Equal(t, form, down)
}

func TestMoveFieldInvalidDirection(t *testing.T) {
	form := buildForm(t, "A", "B")
	_, err := MoveField(form, form.Fields[0].ID, MoveDirection("sideways"))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

// Order stays a dense 0..n-1 permutation under an arbitrary mix of
// operations.
func TestBuilderKeepsOrderDenseUnderMixedOps(t *testing.T) {
	form := buildForm(t, "A", "B", "C", "D", "E")

	var err error
	form, err = DeleteField(form, form.Fields[2].ID)
	require.NoError(t, err)
	assertDenseOrder(t, form)

	form, err = MoveField(form, form.Fields[3].ID, MoveUp)
	require.NoError(t, err)
	assertDenseOrder(t, form)

	form, err = AddField(form, FieldDraft{Label: "F", Type: FieldDropdown, Options: []string{"x", "y"}})
	require.NoError(t, err)
	assertDenseOrder(t, form)

	form, err = UpdateField(form, form.Fields[0].ID, FieldDraft{Label: "A2", Type: FieldLongText})
	require.NoError(t, err)
	assertDenseOrder(t, form)

	form, err = MoveField(form, form.Fields[len(form.Fields)-1].ID, MoveUp)
	require.NoError(t, err)
	assertDenseOrder(t, form)
	require.NoError(t, form.Validate())
}

func fieldLabels(form FormSpec) []string {
	labels := make([]string, 0, len(form.Fields))
	for _, f := range form.Fields {
		labels = append(labels, f.Label)
	}
	return labels
}

func TestAddExistingFieldKeepsID(t *testing.T) {
	form := buildForm(t, "Name")

	form, err := AddExistingField(form, "fld-keep", textDraft("Motivation"))
	require.NoError(t, err)
	require.Len(t, form.Fields, 2)
	assert.Equal(t, "fld-keep", form.Fields[1].ID)
	assertDenseOrder(t, form)

	_, err = AddExistingField(form, "fld-keep", textDraft("Again"))
	assert.ErrorIs(t, err, ErrDuplicateFieldID)
}

func TestAddExistingFieldRejectsInvalidDraft(t *testing.T) {
	_, err := AddExistingField(FormSpec{Title: "t"}, "fld-1", FieldDraft{Type: FieldShortText})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, RuleLabelRequired, verr.Fields[0].Rule)
}
