package employee

type CreateEmployeeRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	CategoryID     string `json:"category" binding:"required,uuid"`
	IsIntern       bool   `json:"isIntern"`
	EmployeeNumber string `json:"employeeNumber"`
}

type UpdateEmployeeRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	CategoryID string `json:"category" binding:"required,uuid"`
	IsIntern   bool   `json:"isIntern"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest is the self-service whitelist. Role is deliberately
// absent so an employee can never escalate themselves.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
	Password  string `json:"password" binding:"omitempty,min=8"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employeeNumber,omitempty"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Department     string `json:"department,omitempty"`
	Position       string `json:"position,omitempty"`
	CategoryID     string `json:"category,omitempty"`
	IsIntern       bool   `json:"isIntern"`
	CreatedAt      string `json:"createdAt"`
}

type EmployeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
