package leave

type SubmitLeaveRequest struct {
	Type      string `json:"type" binding:"required,oneof=casual sick lop"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type UpdateLeaveDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Days       int    `json:"days"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type LeaveTypeUsage struct {
	Used int `json:"used"`
}

type LeaveBalanceResponse struct {
	Casual LeaveTypeUsage `json:"casual"`
	Sick   LeaveTypeUsage `json:"sick"`
	Lop    LeaveTypeUsage `json:"lop"`
	Month  string         `json:"currentMonth"`
}
