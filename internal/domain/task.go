package domain

import "strings"

// Task represents a single to-do item.
// This is a pure domain model without storage-specific concerns; the JSON
// field names define the durable storage layout under the "tasks" key.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds, immutable
}

// TaskFormData carries the caller-supplied fields for creating or replacing
// a task. ID, completion state and creation time are owned by the store.
type TaskFormData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// TaskUpdate carries a partial update. Nil fields are left unchanged.
// ID and CreatedAt are deliberately not representable here.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Completed   *bool
}

// TaskCounts holds per-status totals for the canonical collection.
type TaskCounts struct {
	All       int `json:"all"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when the caller leaves the priority unspecified.
const DefaultPriority = PriorityMedium

// IsValid reports whether p is one of the known priority values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Weight returns the sort weight of the priority. Higher means more urgent;
// unknown values weigh zero so they sort after every known priority.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Label returns the capitalized display name for the priority.
func (p Priority) Label() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}
