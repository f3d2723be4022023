package formspec

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FileReference is the opaque handle to an already-uploaded file. Responses
// carry references, never bytes.
type FileReference struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Response maps field ids to accepted answer values. Values are one of
// string, []string or FileReference, matching the field's type at the time
// of submission. A Response is created once and never re-validated.
type Response map[string]any

// Encode serializes the response for storage inside the application record.
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// FieldIDs returns the answered ids in deterministic order.
func (r Response) FieldIDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DecodeResponse reads a stored response back, normalizing each value to
// its own shape: string, []string or FileReference. Values that match none
// of those shapes degrade to their raw JSON text rather than failing,
// since stored answers only ever need to be renderable.
func DecodeResponse(data []byte) (Response, error) {
	if len(data) == 0 {
		return Response{}, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	resp := make(Response, len(raw))
	for id, msg := range raw {
		resp[id] = decodeValue(msg)
	}
	return resp, nil
}

func decodeValue(msg json.RawMessage) any {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(msg, &list); err == nil {
		return list
	}
	var ref FileReference
	if err := json.Unmarshal(msg, &ref); err == nil && (ref.Key != "" || ref.URL != "" || ref.Name != "") {
		return ref
	}
	var n float64
	if err := json.Unmarshal(msg, &n); err == nil {
		return formatNumber(n)
	}
	return string(msg)
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%g", n)
}
