package program

import "time"

type CreateProgramDTO struct {
	Title        string     `json:"title" binding:"required,max=200"`
	Summary      string     `json:"summary" binding:"omitempty,max=500"`
	Content      string     `json:"content"`
	Location     string     `json:"location" binding:"omitempty,max=200"`
	Capacity     int        `json:"capacity" binding:"omitempty,min=0"`
	Tags         []string   `json:"tags"`
	ApplyStartAt *time.Time `json:"apply_start_at"`
	ApplyEndAt   *time.Time `json:"apply_end_at"`
}

type UpdateProgramDTO struct {
	Title        *string    `json:"title" binding:"omitempty,max=200"`
	Summary      *string    `json:"summary" binding:"omitempty,max=500"`
	Content      *string    `json:"content"`
	Location     *string    `json:"location" binding:"omitempty,max=200"`
	Capacity     *int       `json:"capacity" binding:"omitempty,min=0"`
	Status       *string    `json:"status" binding:"omitempty,oneof=draft open closed"`
	Tags         []string   `json:"tags"`
	ApplyStartAt *time.Time `json:"apply_start_at"`
	ApplyEndAt   *time.Time `json:"apply_end_at"`
}
