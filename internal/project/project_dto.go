package project

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	EmployeeIDs []string `json:"assignedEmployees" binding:"omitempty,dive,uuid"`
}

type AssignEmployeesRequest struct {
	EmployeeIDs []string `json:"employeeIds" binding:"required,min=1,dive,uuid"`
}

type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	ManagerID   string   `json:"manager"`
	EmployeeIDs []string `json:"assignedEmployees"`
	CreatedAt   string   `json:"createdAt"`
}

// AssignResult reports what the assignment actually changed: ids already
// on the project come back under skipped instead of failing the call.
type AssignResult struct {
	Assigned []string `json:"assigned"`
	Skipped  []string `json:"skipped"`
}
