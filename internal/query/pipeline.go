// Package query implements the pure filter/search/sort pipeline applied to a
// snapshot of the task collection before display. Every function returns a
// new slice and leaves its input untouched; unknown enumeration values
// degrade to identity behavior instead of failing.
package query

import (
	"sort"
	"strings"

	"task-manager/internal/domain"
)

// FilterByStatus returns the tasks matching the given completion status,
// preserving relative order. StatusAll and unknown statuses select everything.
func FilterByStatus(tasks []domain.Task, status domain.FilterStatus) []domain.Task {
	switch status {
	case domain.StatusActive:
		return filter(tasks, func(t domain.Task) bool { return !t.Completed })
	case domain.StatusCompleted:
		return filter(tasks, func(t domain.Task) bool { return t.Completed })
	default:
		return copyTasks(tasks)
	}
}

// Search returns the tasks whose title or description contains query,
// case-insensitively. A query that trims to empty selects everything.
// Relative order is preserved.
func Search(tasks []domain.Task, query string) []domain.Task {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return copyTasks(tasks)
	}

	return filter(tasks, func(t domain.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), trimmed) ||
			strings.Contains(strings.ToLower(t.Description), trimmed)
	})
}

// Sort returns a new slice ordered by the given option. SortByDate orders
// newest first; SortByPriority orders by descending priority weight with
// newest-first as the tie-break, giving a deterministic total order. Unknown
// options return an unmodified copy.
func Sort(tasks []domain.Task, sortBy domain.SortOption) []domain.Task {
	sorted := copyTasks(tasks)

	switch sortBy {
	case domain.SortByPriority:
		sort.Slice(sorted, func(i, j int) bool {
			if d := sorted[i].Priority.Weight() - sorted[j].Priority.Weight(); d != 0 {
				return d > 0
			}
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	case domain.SortByDate:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	}

	return sorted
}

// Process applies the full pipeline: filter by status, then search, then
// sort.
func Process(tasks []domain.Task, opts domain.FilterOptions) []domain.Task {
	processed := FilterByStatus(tasks, opts.Status)
	processed = Search(processed, opts.SearchQuery)
	return Sort(processed, opts.SortBy)
}

// filter returns the tasks satisfying pred, in their original order.
func filter(tasks []domain.Task, pred func(domain.Task) bool) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			result = append(result, t)
		}
	}
	return result
}

// copyTasks returns a shallow copy so callers can never observe a mutation
// of their input.
func copyTasks(tasks []domain.Task) []domain.Task {
	copied := make([]domain.Task, len(tasks))
	copy(copied, tasks)
	return copied
}
