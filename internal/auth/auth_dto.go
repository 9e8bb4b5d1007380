package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=hr employee"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Department string `json:"department" binding:"required"`
	Position   string `json:"position" binding:"required"`
	CategoryID string `json:"category" binding:"required,uuid"`
	IsIntern   bool   `json:"isIntern"`
}

type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	CategoryID *string `json:"category,omitempty"`
	IsIntern   bool    `json:"isIntern"`
}
