// Package primary defines the primary ports (driving adapters) for the application.
package primary

import "context"

// DeskService defines the primary port for service desk operations.
//
// Mutating operations change the queue or history before writing to the
// activity log. If only the log write fails they return both the result and
// the error, so callers can tell that the change itself took effect.
type DeskService interface {
	// Seed loads the initial customers and history requests.
	Seed(ctx context.Context) error

	// ListQueue returns waiting customers from front to back.
	ListQueue(ctx context.Context) []*Customer

	// ServeNext serves the customer at the front of the queue and records
	// the service on top of the history.
	ServeNext(ctx context.Context) (*ServeResponse, error)

	// ListHistory returns history requests from top to bottom.
	ListHistory(ctx context.Context) []*Request

	// AddRequest pushes a new request onto the history.
	AddRequest(ctx context.Context, req AddRequestRequest) (*Request, error)

	// RemoveLastRequest pops the most recent request from the history.
	RemoveLastRequest(ctx context.Context) (*Request, error)

	// AddCustomer appends a customer to the back of the queue.
	AddCustomer(ctx context.Context, req AddCustomerRequest) (*Customer, error)

	// Status reports whether each structure is empty.
	Status(ctx context.Context) *Status

	// Activity returns activity entries matching filters, newest first.
	Activity(ctx context.Context, filters ActivityFilters) ([]*ActivityEntry, error)

	// GetActivity returns a single activity entry by its ID.
	GetActivity(ctx context.Context, id string) (*ActivityEntry, error)
}

// AddCustomerRequest contains parameters for adding a customer to the queue.
type AddCustomerRequest struct {
	ID     string
	Name   string
	Reason string
}

// AddRequestRequest contains parameters for adding a request to the history.
type AddRequestRequest struct {
	ID          string
	Description string
}

// ServeResponse contains the result of serving a customer.
type ServeResponse struct {
	Customer *Customer
	Record   *Request
}

// Customer is the public view of a queued customer.
type Customer struct {
	ID     string
	Name   string
	Reason string
	Line   string // formatted customer record
}

// Request is the public view of a history request.
type Request struct {
	ID          string
	Description string
	Timestamp   string
	Line        string // formatted request record
}

// Status reports the empty/non-empty state of both structures.
type Status struct {
	QueueEmpty   bool
	HistoryEmpty bool
}

// ActivityFilters narrows an activity query. Empty fields match everything;
// a Limit of zero returns all entries.
type ActivityFilters struct {
	Structure string
	Action    string
	Operator  string
	Limit     int
}

// ActivityEntry is the public view of an activity log entry.
type ActivityEntry struct {
	ID        string
	Operator  string
	Structure string
	Action    string
	ElementID string
	Summary   string
	CreatedAt string
}
