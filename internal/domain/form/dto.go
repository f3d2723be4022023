package form

import "github.com/dasomcenter/dasom-api/internal/domain/formspec"

// FieldPayload is one field in a whole-form save. An empty ID means a newly
// created field; a non-empty ID must refer to a field of the stored form so
// ids stay stable across edits.
type FieldPayload struct {
	formspec.FieldDraft
	ID string `json:"id"`
}

// SaveFormDTO replaces the whole form of a program in one request. Field
// order is the payload order.
type SaveFormDTO struct {
	Title       string         `json:"title" binding:"required" example:"2026 Spring Program Application"`
	Description string         `json:"description" example:"Tell us about yourself."`
	Fields      []FieldPayload `json:"fields"`
}
