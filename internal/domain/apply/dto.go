package apply

import "encoding/json"

// SubmitApplicationDTO is the public submission payload. Answers carries the
// raw per-field values keyed by field id; the form engine decodes them.
type SubmitApplicationDTO struct {
	Name            string                     `json:"name" binding:"required" example:"Kim Dasom"`
	Email           string                     `json:"email" binding:"required,email" example:"dasom@example.com"`
	Phone           string                     `json:"phone" example:"010-1234-5678"`
	PortraitConsent bool                       `json:"portrait_consent"`
	PrivacyConsent  bool                       `json:"privacy_consent"`
	Answers         map[string]json.RawMessage `json:"answers"`
}

// ReviewApplicationDTO marks an application reviewed with an optional note.
type ReviewApplicationDTO struct {
	Note string `json:"note" example:"Interview scheduled."`
}
