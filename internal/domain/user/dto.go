package user

type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"dasom-admin"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	FullName string `json:"full_name" example:"Kim Dasom"`
	Email    string `json:"email" binding:"omitempty,email" example:"admin@dasom.example.org"`
	Role     string `json:"role" binding:"omitempty,oneof=admin staff" example:"staff"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required" example:"dasom-admin"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UpdateUserInput struct {
	Password *string `json:"password" binding:"omitempty,min=6"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin staff"`
}
