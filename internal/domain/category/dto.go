package category

type CreateCategoryDTO struct {
	ParentID  *uint  `json:"parent_id"`
	Name      string `json:"name" binding:"required,max=100" example:"Programs"`
	Slug      string `json:"slug" binding:"required,max=100" example:"programs"`
	SortOrder int    `json:"sort_order"`
}

type UpdateCategoryDTO struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Slug      *string `json:"slug" binding:"omitempty,max=100"`
	SortOrder *int    `json:"sort_order"`
}
