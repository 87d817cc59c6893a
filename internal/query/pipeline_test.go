package query

import (
	"testing"

	"task-manager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTasks returns a collection in insertion order: oldest first.
func fixtureTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Buy milk", Description: "semi-skimmed", Priority: domain.PriorityLow, Completed: false, CreatedAt: 1000},
		{ID: "2", Title: "Write report", Description: "quarterly numbers", Priority: domain.PriorityHigh, Completed: true, CreatedAt: 2000},
		{ID: "3", Title: "Plan trip", Description: "pack MILK money", Priority: domain.PriorityMedium, Completed: false, CreatedAt: 3000},
		{ID: "4", Title: "Call dentist", Description: "", Priority: domain.PriorityHigh, Completed: false, CreatedAt: 4000},
	}
}

func ids(tasks []domain.Task) []string {
	result := make([]string, len(tasks))
	for i, t := range tasks {
		result[i] = t.ID
	}
	return result
}

func TestFilterByStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.FilterStatus
		wantIDs []string
	}{
		{
			name:    "should return everything for all",
			status:  domain.StatusAll,
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "should return only incomplete tasks for active",
			status:  domain.StatusActive,
			wantIDs: []string{"1", "3", "4"},
		},
		{
			name:    "should return only completed tasks for completed",
			status:  domain.StatusCompleted,
			wantIDs: []string{"2"},
		},
		{
			name:    "should degrade to identity for unknown status",
			status:  domain.FilterStatus("archived"),
			wantIDs: []string{"1", "2", "3", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByStatus(fixtureTasks(), tt.status)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{
			name:    "should return everything for empty query",
			query:   "",
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "should return everything for whitespace-only query",
			query:   "   ",
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "should match titles case-insensitively",
			query:   "MILK",
			wantIDs: []string{"1", "3"}, // "Buy milk" title and "pack MILK money" description
		},
		{
			name:    "should match descriptions",
			query:   "quarterly",
			wantIDs: []string{"2"},
		},
		{
			name:    "should trim the query before matching",
			query:   "  milk  ",
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "should return empty result for unmatched query",
			query:   "zzz",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(fixtureTasks(), tt.query)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		sortBy  domain.SortOption
		wantIDs []string
	}{
		{
			name:    "should order newest first by date",
			sortBy:  domain.SortByDate,
			wantIDs: []string{"4", "3", "2", "1"},
		},
		{
			name:   "should order by descending priority weight with newest-first tie-break",
			sortBy: domain.SortByPriority,
			// high(4000), high(2000), medium(3000), low(1000)
			wantIDs: []string{"4", "2", "3", "1"},
		},
		{
			name:    "should degrade to identity for unknown option",
			sortBy:  domain.SortOption("title"),
			wantIDs: []string{"1", "2", "3", "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(fixtureTasks(), tt.sortBy)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestSort_TotalOrder(t *testing.T) {
	// Priority sort must be a deterministic total order: weights
	// non-increasing, createdAt non-increasing within equal weights.
	tasks := []domain.Task{
		{ID: "a", Priority: domain.PriorityMedium, CreatedAt: 10},
		{ID: "b", Priority: domain.PriorityHigh, CreatedAt: 20},
		{ID: "c", Priority: domain.PriorityMedium, CreatedAt: 30},
		{ID: "d", Priority: domain.PriorityLow, CreatedAt: 40},
		{ID: "e", Priority: domain.PriorityHigh, CreatedAt: 50},
		{ID: "f", Priority: domain.PriorityMedium, CreatedAt: 30},
	}

	sorted := Sort(tasks, domain.SortByPriority)

	require.Len(t, sorted, len(tasks))
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		assert.GreaterOrEqual(t, prev.Priority.Weight(), cur.Priority.Weight())
		if prev.Priority.Weight() == cur.Priority.Weight() {
			assert.GreaterOrEqual(t, prev.CreatedAt, cur.CreatedAt)
		}
	}
}

func TestPipeline_Immutability(t *testing.T) {
	tests := []struct {
		name string
		call func(tasks []domain.Task) []domain.Task
	}{
		{
			name: "FilterByStatus should not mutate its input",
			call: func(tasks []domain.Task) []domain.Task {
				return FilterByStatus(tasks, domain.StatusActive)
			},
		},
		{
			name: "Search should not mutate its input",
			call: func(tasks []domain.Task) []domain.Task {
				return Search(tasks, "milk")
			},
		},
		{
			name: "Sort should not mutate its input",
			call: func(tasks []domain.Task) []domain.Task {
				return Sort(tasks, domain.SortByPriority)
			},
		},
		{
			name: "Process should not mutate its input",
			call: func(tasks []domain.Task) []domain.Task {
				return Process(tasks, domain.FilterOptions{
					Status:      domain.StatusActive,
					SearchQuery: "milk",
					SortBy:      domain.SortByPriority,
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := fixtureTasks()
			snapshot := fixtureTasks()

			got := tt.call(input)

			assert.Equal(t, snapshot, input, "input sequence must be unchanged")
			if len(got) > 0 {
				assert.NotSame(t, &input[0], &got[0], "result must be a new sequence")
			}
		})
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	empty := []domain.Task{}

	assert.Empty(t, FilterByStatus(empty, domain.StatusActive))
	assert.Empty(t, Search(empty, "milk"))
	assert.Empty(t, Sort(empty, domain.SortByPriority))
	assert.Empty(t, Process(nil, domain.NewFilterOptions()))
}

func TestProcess(t *testing.T) {
	t.Run("should filter then search then sort", func(t *testing.T) {
		got := Process(fixtureTasks(), domain.FilterOptions{
			Status:      domain.StatusActive,
			SearchQuery: "milk",
			SortBy:      domain.SortByPriority,
		})

		// Active tasks matching "milk": 1 (low, 1000) and 3 (medium, 3000).
		assert.Equal(t, []string{"3", "1"}, ids(got))
	})

	t.Run("should order by priority across the whole set", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: "low", Priority: domain.PriorityLow, CreatedAt: 1},
			{ID: "high", Priority: domain.PriorityHigh, CreatedAt: 2},
			{ID: "medium", Priority: domain.PriorityMedium, CreatedAt: 3},
		}

		got := Process(tasks, domain.FilterOptions{
			Status: domain.StatusAll,
			SortBy: domain.SortByPriority,
		})

		assert.Equal(t, []string{"high", "medium", "low"}, ids(got))
	})
}
