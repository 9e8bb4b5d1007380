package task

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ProjectID   string `json:"project" binding:"required,uuid"`
	AssignedTo  string `json:"assignedTo" binding:"required,uuid"`
	DueDate     string `json:"dueDate" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in-progress completed"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   string `json:"project"`
	AssignedTo  string `json:"assignedTo"`
	AssignedBy  string `json:"assignedBy"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}
