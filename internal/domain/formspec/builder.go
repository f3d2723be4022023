package formspec

import "github.com/google/uuid"

// Builder operations are pure: each returns a new FormSpec and leaves its
// input untouched. A failed operation returns the zero FormSpec and an
// error; the caller keeps editing its previous draft.

// MoveDirection selects the neighbor a field swaps places with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// newFieldID exists so tests can pin id generation.
var newFieldID = uuid.NewString

// AddField appends the draft as a new field at the end of the form with a
// fresh id. Ids are never reused, including ids of deleted fields.
func AddField(form FormSpec, draft FieldDraft) (FormSpec, error) {
	field := draft.spec()
	field.ID = newFieldID()
	field.Order = len(form.Fields)
	if errs := field.ValidateSelf(); len(errs) > 0 {
		return FormSpec{}, newValidationError(errs)
	}
	out := form.clone()
	out.Fields = append(out.Fields, field)
	return out, nil
}

// AddExistingField appends the draft at the end of the form keeping the
// given id. It serves whole-form saves that replay a known field list; the
// id must not already be present.
func AddExistingField(form FormSpec, fieldID string, draft FieldDraft) (FormSpec, error) {
	if indexOf(form, fieldID) >= 0 {
		return FormSpec{}, ErrDuplicateFieldID
	}
	field := draft.spec()
	field.ID = fieldID
	field.Order = len(form.Fields)
	if errs := field.ValidateSelf(); len(errs) > 0 {
		return FormSpec{}, newValidationError(errs)
	}
	out := form.clone()
	out.Fields = append(out.Fields, field)
	return out, nil
}

// UpdateField replaces the field's contents except its id and position.
func UpdateField(form FormSpec, fieldID string, draft FieldDraft) (FormSpec, error) {
	idx := indexOf(form, fieldID)
	if idx < 0 {
		return FormSpec{}, ErrFieldNotFound
	}
	field := draft.spec()
	field.ID = fieldID
	field.Order = idx
	if errs := field.ValidateSelf(); len(errs) > 0 {
		return FormSpec{}, newValidationError(errs)
	}
	out := form.clone()
	out.Fields[idx] = field
	return out, nil
}

// DeleteField removes the field and renumbers the remainder so order stays
// a dense 0..n-2 permutation.
func DeleteField(form FormSpec, fieldID string) (FormSpec, error) {
	idx := indexOf(form, fieldID)
	if idx < 0 {
		return FormSpec{}, ErrFieldNotFound
	}
	out := form.clone()
	out.Fields = append(out.Fields[:idx], out.Fields[idx+1:]...)
	for i := range out.Fields {
		out.Fields[i].Order = i
	}
	return out, nil
}

// MoveField swaps the field with its neighbor in the given direction. At the
// boundary (first field moving up, last moving down) it is a no-op and the
// result is structurally equal to the input.
func MoveField(form FormSpec, fieldID string, dir MoveDirection) (FormSpec, error) {
	idx := indexOf(form, fieldID)
	if idx < 0 {
		return FormSpec{}, ErrFieldNotFound
	}
	out := form.clone()

	var other int
	switch dir {
	case MoveUp:
		other = idx - 1
	case MoveDown:
		other = idx + 1
	default:
		return FormSpec{}, ErrInvalidDirection
	}
	if other < 0 || other >= len(out.Fields) {
		return out, nil
	}

	out.Fields[idx], out.Fields[other] = out.Fields[other], out.Fields[idx]
	out.Fields[idx].Order = idx
	out.Fields[other].Order = other
	return out, nil
}

func indexOf(form FormSpec, fieldID string) int {
	for i, f := range form.Fields {
		if f.ID == fieldID {
			return i
		}
	}
	return -1
}
