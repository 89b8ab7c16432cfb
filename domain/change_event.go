package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChangeAction string

const (
	ActionInsert ChangeAction = "INSERT"
	ActionUpdate ChangeAction = "UPDATE"
	ActionDelete ChangeAction = "DELETE"
)

// Tables published on the change feed.
const (
	TableApplications = "applications"
	TableSchedules    = "payment_schedules"
)

// ChangeEvent describes a row-level change made through a repository.
type ChangeEvent struct {
	ID         uuid.UUID    `json:"id"`
	Table      string       `json:"table"`
	Action     ChangeAction `json:"action"`
	Key        string       `json:"key"`
	Record     any          `json:"record"`
	OccurredAt time.Time    `json:"occurredAt"`
}
