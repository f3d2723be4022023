package program

import (
	"time"

	"github.com/lib/pq"
)

// Program status lifecycle. Draft programs are invisible to the public
// site; closed programs stay listed but stop accepting applications.
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Program struct {
	PrgID        uint           `gorm:"primaryKey;column:prg_id;autoIncrement" json:"program_id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Summary      string         `gorm:"size:500" json:"summary"`
	Content      string         `gorm:"type:text" json:"content"` // sanitized editor HTML
	Location     string         `gorm:"size:200" json:"location"`
	Capacity     int            `gorm:"default:0" json:"capacity"` // 0 means unlimited
	Status       string         `gorm:"type:program_status;default:'draft'" json:"status"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	ApplyStartAt *time.Time     `gorm:"column:apply_start_at" json:"apply_start_at"`
	ApplyEndAt   *time.Time     `gorm:"column:apply_end_at" json:"apply_end_at"`
	CreatedAt    time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Program) TableName() string {
	return "programs"
}

// AcceptingAt reports whether applications are open at the given instant.
// Nil window bounds are open-ended.
func (p *Program) AcceptingAt(now time.Time) bool {
	if p.Status != StatusOpen {
		return false
	}
	if p.ApplyStartAt != nil && now.Before(*p.ApplyStartAt) {
		return false
	}
	if p.ApplyEndAt != nil && now.After(*p.ApplyEndAt) {
		return false
	}
	return true
}
