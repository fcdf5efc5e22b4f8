package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/department-store/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDepartmentCreated EventType = "department_created"
	EventDepartmentUpdated EventType = "department_updated"
	EventDepartmentDeleted EventType = "department_deleted"
	EventTableCreated      EventType = "departments_table_created"
	EventTableDropped      EventType = "departments_table_dropped"
)

// AllTypes lists every event type in publication order of a typical lifecycle.
var AllTypes = []EventType{
	EventTableCreated,
	EventDepartmentCreated,
	EventDepartmentUpdated,
	EventDepartmentDeleted,
	EventTableDropped,
}

// Event represents a change emitted by the department service.
type Event struct {
	ID           string      `json:"id"`
	Type         EventType   `json:"type"`
	DepartmentID int64       `json:"department_id,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	Payload      interface{} `json:"payload,omitempty"`
}

// DepartmentPayload snapshots department fields.
type DepartmentPayload struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// DepartmentUpdatedPayload payload.
type DepartmentUpdatedPayload struct {
	Before DepartmentPayload `json:"before"`
	After  DepartmentPayload `json:"after"`
}

// NewEvent stamps a fresh id and timestamp on an event.
func NewEvent(eventType EventType, departmentID int64, payload interface{}) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		DepartmentID: departmentID,
		Timestamp:    time.Now().UTC(),
		Payload:      payload,
	}
}

// PayloadOf snapshots a department for an event payload.
func PayloadOf(dept domain.Department) DepartmentPayload {
	return DepartmentPayload{Name: dept.Name, Location: dept.Location}
}
