package domain

// FilterStatus selects tasks by completion state.
type FilterStatus string

const (
	StatusAll       FilterStatus = "all"
	StatusActive    FilterStatus = "active"
	StatusCompleted FilterStatus = "completed"
)

// IsValid reports whether s is one of the known filter statuses.
func (s FilterStatus) IsValid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// SortOption selects the ordering of a derived task view.
type SortOption string

const (
	SortByDate     SortOption = "date"     // newest first
	SortByPriority SortOption = "priority" // high to low, newest first within ties
)

// FilterOptions is the transient view state supplied by the list UI.
// It lives for a session and is never persisted.
type FilterOptions struct {
	Status      FilterStatus
	SearchQuery string
	SortBy      SortOption
}

// NewFilterOptions returns the session-start defaults: all tasks, no search,
// sorted by creation date.
func NewFilterOptions() FilterOptions {
	return FilterOptions{
		Status:      StatusAll,
		SearchQuery: "",
		SortBy:      SortByDate,
	}
}
