package events

import "time"

const EmployeeLifecycleTopic = "rh.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Matricula  string    `json:"matricula"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EmployeeImportCompletedEvent summarizes one spreadsheet reconciliation
// pass. Error messages stay out of the payload; only counts travel.
type EmployeeImportCompletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Filename   string    `json:"filename"`
	Inserted   int       `json:"inserted"`
	Updated    int       `json:"updated"`
	ErrorCount int       `json:"error_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
