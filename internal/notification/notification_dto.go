package notification

type NotificationResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee"`
	Kind       string  `json:"kind"`
	Message    string  `json:"message"`
	ReadAt     *string `json:"readAt,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}
