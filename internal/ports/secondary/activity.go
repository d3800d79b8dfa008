// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Structures named in activity entries.
const (
	StructureQueue   = "queue"
	StructureHistory = "history"
)

// Actions recorded in activity entries.
const (
	ActionSeed    = "seed"
	ActionEnqueue = "enqueue"
	ActionDequeue = "dequeue"
	ActionPush    = "push"
	ActionPop     = "pop"
)

// ActivityLog defines the interface for writing desk activity entries.
// Implementations extract the operator from context.
type ActivityLog interface {
	// Record logs one action applied to a structure.
	Record(ctx context.Context, structure, action, elementID, summary string) error
}

// ActivityRepository defines the secondary port for activity persistence.
type ActivityRepository interface {
	// Create persists a new activity entry.
	Create(ctx context.Context, record *ActivityRecord) error

	// GetByID retrieves an activity entry by its ID.
	GetByID(ctx context.Context, id string) (*ActivityRecord, error)

	// List retrieves activity entries matching the given filters, newest first.
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityRecord, error)

	// GetNextID returns the next available activity ID.
	GetNextID(ctx context.Context) (string, error)
}

// ActivityRecord represents an activity entry as stored in persistence.
type ActivityRecord struct {
	ID        string
	Operator  string
	Structure string
	Action    string
	ElementID string
	Summary   string
	CreatedAt string
}

// ActivityFilters contains filter options for querying activity entries.
type ActivityFilters struct {
	Structure string
	Action    string
	Operator  string
	Limit     int
}
