package events

import "time"

const EmployeeLifecycleTopic = "org.employee.lifecycle.v1"

// EmployeeCreatedEvent is published through the outbox whenever a new
// employee record enters the directory, for downstream consumers such
// as provisioning or payroll systems.
type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeID   string    `json:"employee_id"`
	DepartmentID string    `json:"department_id"`
	SectionID    string    `json:"section_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
