package post

type CreatePostDTO struct {
	CategoryID  *uint    `json:"category_id"`
	Kind        string   `json:"kind" binding:"omitempty,oneof=post notice"`
	Title       string   `json:"title" binding:"required,max=200"`
	Content     string   `json:"content"`
	Pinned      bool     `json:"pinned"`
	Published   *bool    `json:"published"`
	Attachments []string `json:"attachments"`
}

type UpdatePostDTO struct {
	CategoryID  *uint    `json:"category_id"`
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Content     *string  `json:"content"`
	Pinned      *bool    `json:"pinned"`
	Published   *bool    `json:"published"`
	Attachments []string `json:"attachments"`
}

// ListQuery narrows public post listings. IncludeUnpublished is set by
// admin handlers only, never bound from the request.
type ListQuery struct {
	CategoryID         uint   `form:"category_id"`
	Kind               string `form:"kind" binding:"omitempty,oneof=post notice"`
	Page               int    `form:"page"`
	Limit              int    `form:"limit"`
	IncludeUnpublished bool   `form:"-"`
}
