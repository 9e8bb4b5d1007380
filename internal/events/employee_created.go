package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
