package desk

import (
	"fmt"

	"github.com/example/desk/internal/core/element"
)

// ServiceRecordPrefix starts the id of every request generated by serving a customer.
const ServiceRecordPrefix = "REQ_AUTO_"

// ServeInput contains pre-fetched data for building a service record.
// All values must be gathered by the caller - no I/O in the planner.
type ServeInput struct {
	Customer  element.Element
	RequestID string // generated suffix, without prefix
	Timestamp string // already formatted
}

// PlanServiceRecord builds the history request that documents a served customer.
func PlanServiceRecord(in ServeInput) element.Element {
	description := fmt.Sprintf("Service completed for customer %s (Reason: %s)",
		in.Customer.Primary(), in.Customer.Secondary())
	return element.NewRequest(ServiceRecordPrefix+in.RequestID, description, in.Timestamp)
}
