package apply

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	// ErrConsentRequired is returned when a submission is missing either
	// consent flag. Answers are not validated in that case.
	ErrConsentRequired = errors.New("portrait and privacy consent are required")
	// ErrNotAccepting is returned when the target program is not open for
	// applications at submission time.
	ErrNotAccepting = errors.New("program is not accepting applications")
	// ErrProgramFull is returned when the program has a capacity and it is
	// already reached.
	ErrProgramFull = errors.New("program has reached its capacity")
)

// Application is one submitted response to a program's form. Rows are
// immutable after insert; staff review only flips ReviewedAt and ReviewNote.
type Application struct {
	AppID           uint           `json:"app_id" gorm:"column:app_id;primaryKey;autoIncrement"`
	ProgramID       uint           `json:"prg_id" gorm:"column:prg_id;index;not null"`
	ApplicantName   string         `json:"applicant_name" gorm:"column:applicant_name;not null"`
	ApplicantEmail  string         `json:"applicant_email" gorm:"column:applicant_email;not null"`
	ApplicantPhone  string         `json:"applicant_phone" gorm:"column:applicant_phone"`
	PortraitConsent bool           `json:"portrait_consent" gorm:"column:portrait_consent;not null"`
	PrivacyConsent  bool           `json:"privacy_consent" gorm:"column:privacy_consent;not null"`
	Answers         datatypes.JSON `json:"answers" gorm:"column:answers;type:jsonb;not null"`
	ReviewedAt      *time.Time     `json:"reviewed_at" gorm:"column:reviewed_at"`
	ReviewNote      string         `json:"review_note" gorm:"column:review_note"`
	CreatedAt       time.Time      `json:"create_at" gorm:"column:create_at;autoCreateTime"`
}

func (Application) TableName() string {
	return "applications"
}
