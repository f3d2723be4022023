package formspec

import (
	"fmt"
	"sort"
	"time"
)

// ValueKind tells a client how to present a rendered answer.
type ValueKind string

const (
	ValueText   ValueKind = "text"
	ValueTokens ValueKind = "tokens"
	ValueFile   ValueKind = "file"
	ValueNone   ValueKind = "none"
)

// NoResponsePlaceholder marks a question the applicant left unanswered,
// distinguishable from a question that was never asked.
const NoResponsePlaceholder = "no response"

// DisplayValue is a display-ready answer value.
type DisplayValue struct {
	Kind   ValueKind      `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Tokens []string       `json:"tokens,omitempty"`
	File   *FileReference `json:"file,omitempty"`
}

// DisplayItem pairs an answer with the field definition it reconciled to.
// Orphaned items carry answers whose field no longer exists on the form;
// they have a synthetic label and no type hint.
type DisplayItem struct {
	FieldID  string       `json:"fieldId"`
	Label    string       `json:"label"`
	TypeHint FieldType    `json:"typeHint,omitempty"`
	Value    DisplayValue `json:"value"`
	Orphaned bool         `json:"orphaned,omitempty"`
}

// Render reconciles a stored response with a form that may post-date or
// pre-date it. It never fails: form fields come first in form order (with a
// placeholder for unanswered ones), followed by orphaned answers. A stored
// value whose shape disagrees with the field's current type renders by its
// own shape.
func Render(form FormSpec, resp Response) []DisplayItem {
	items := make([]DisplayItem, 0, len(form.Fields)+len(resp))
	rendered := make(map[string]struct{}, len(form.Fields))

	fields := make([]FieldSpec, len(form.Fields))
	copy(fields, form.Fields)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })

	for _, f := range fields {
		rendered[f.ID] = struct{}{}
		items = append(items, DisplayItem{
			FieldID:  f.ID,
			Label:    f.displayLabel(),
			TypeHint: f.Type,
			Value:    renderValue(f.Type, resp[f.ID]),
		})
	}

	orphans := make([]string, 0)
	for id := range resp {
		if _, ok := rendered[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		items = append(items, DisplayItem{
			FieldID:  id,
			Label:    "field " + id,
			Value:    renderValue("", resp[id]),
			Orphaned: true,
		})
	}
	return items
}

func renderValue(hint FieldType, v any) DisplayValue {
	switch val := v.(type) {
	case nil:
		return DisplayValue{Kind: ValueNone, Text: NoResponsePlaceholder}
	case []string:
		if len(val) == 0 {
			return DisplayValue{Kind: ValueNone, Text: NoResponsePlaceholder}
		}
		return DisplayValue{Kind: ValueTokens, Tokens: append([]string(nil), val...)}
	case FileReference:
		ref := val
		return DisplayValue{Kind: ValueFile, File: &ref}
	case *FileReference:
		if val == nil {
			return DisplayValue{Kind: ValueNone, Text: NoResponsePlaceholder}
		}
		ref := *val
		return DisplayValue{Kind: ValueFile, File: &ref}
	case string:
		if val == "" {
			return DisplayValue{Kind: ValueNone, Text: NoResponsePlaceholder}
		}
		switch hint {
		case FieldFileUpload:
			// Older records stored bare object keys for uploads; still
			// render them as something downloadable.
			return DisplayValue{Kind: ValueFile, File: &FileReference{Key: val, Name: val}}
		case FieldDate:
			if t, err := time.Parse(dateLayout, val); err == nil {
				return DisplayValue{Kind: ValueText, Text: t.Format("Jan 2, 2006")}
			}
			return DisplayValue{Kind: ValueText, Text: val}
		default:
			// Times and everything else render verbatim.
			return DisplayValue{Kind: ValueText, Text: val}
		}
	default:
		return DisplayValue{Kind: ValueText, Text: fmt.Sprint(val)}
	}
}
