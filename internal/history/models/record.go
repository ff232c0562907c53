package models

import (
	"encoding/json"
	"time"
)

// Action is the kind of mutation a history record captures.
type Action string

const (
	ActionInserted Action = "INSERTED"
	ActionUpdated  Action = "UPDATED"
	ActionDeleted  Action = "DELETED"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionInserted, ActionUpdated, ActionDeleted:
		return true
	}
	return false
}

// EmptySnapshot stands in for the absent side of a mutation: OldData of an
// insert and NewData of a delete.
var EmptySnapshot = json.RawMessage(`{}`)

// Record is one immutable before/after snapshot of a mutation.
//
// Invariants:
//   - created only after the triggering mutation affected at least one row
//   - never updated or deleted once appended
//   - INSERTED carries OldData {}; DELETED carries NewData {}
type Record struct {
	ID          *int64          `json:"id"`
	EventID     string          `json:"eventId"`
	ActorID     int64           `json:"actorId"`
	Action      Action          `json:"actionName"`
	SourceTable string          `json:"tableSource"`
	NewData     json.RawMessage `json:"newData"`
	OldData     json.RawMessage `json:"oldData"`
	CreatedAt   time.Time       `json:"createdAt"`
}
