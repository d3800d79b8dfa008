package secondary

import "context"

// SeedSource provides the records loaded into the desk at startup.
type SeedSource interface {
	// Load returns the seed data. Customers are in queue order and
	// history requests in the order they were originally filed.
	Load(ctx context.Context) (*SeedData, error)
}

// SeedData is the full set of initial records.
type SeedData struct {
	Customers []SeedCustomer
	History   []SeedRequest
}

// SeedCustomer is one initial queue entry.
type SeedCustomer struct {
	ID     string
	Name   string
	Reason string
}

// SeedRequest is one initial history entry.
type SeedRequest struct {
	ID          string
	Description string
	Timestamp   string
}

// RequestIDGenerator produces id suffixes for automatically created requests.
type RequestIDGenerator interface {
	NextRequestID() string
}
