package dto

// UpdateUserRequest body para PUT /api/users/:id (solo admin).
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"omitempty,max=100"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Role     string  `json:"role" validate:"omitempty,oneof=ADMIN OPERATOR"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
