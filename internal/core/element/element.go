// Package element defines the records held by the desk containers.
package element

import (
	"fmt"
	"strings"
)

// Kind tags an Element with how it should be presented.
type Kind int

const (
	// KindUnknown is used when the caller did not say what the element is.
	KindUnknown Kind = iota
	// KindCustomer is a customer waiting in the service queue.
	KindCustomer
	// KindRequest is a service request in the history.
	KindRequest
)

// customerIDPrefix is the id convention for customers. Describe only
// consults it for elements of KindUnknown.
const customerIDPrefix = "CLI"

func (k Kind) String() string {
	switch k {
	case KindCustomer:
		return "customer"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Element is an immutable customer or request record.
// For customers Primary is the name and Secondary the reason for the visit;
// for requests Primary is the description and Secondary the date/time.
type Element struct {
	id        string
	primary   string
	secondary string
	kind      Kind
}

// New creates an untagged element.
func New(id, primary, secondary string) Element {
	return Element{id: id, primary: primary, secondary: secondary}
}

// NewCustomer creates a customer element.
func NewCustomer(id, name, reason string) Element {
	return Element{id: id, primary: name, secondary: reason, kind: KindCustomer}
}

// NewRequest creates a service request element.
func NewRequest(id, description, timestamp string) Element {
	return Element{id: id, primary: description, secondary: timestamp, kind: KindRequest}
}

func (e Element) ID() string        { return e.id }
func (e Element) Primary() string   { return e.primary }
func (e Element) Secondary() string { return e.secondary }
func (e Element) Kind() Kind        { return e.kind }

// AsCustomer formats the element as a customer record.
func (e Element) AsCustomer() string {
	return fmt.Sprintf("Customer ID: %s | Name: %s | Reason: %s", e.id, e.primary, e.secondary)
}

// AsRequest formats the element as a service request.
func (e Element) AsRequest() string {
	return fmt.Sprintf("Request ID: %s | Description: %s | Date/Time: %s", e.id, e.primary, e.secondary)
}

// Describe formats the element according to its Kind. Untagged elements
// whose id starts with "CLI" are shown as customers, all others as requests.
func (e Element) Describe() string {
	switch e.kind {
	case KindCustomer:
		return e.AsCustomer()
	case KindRequest:
		return e.AsRequest()
	}
	if strings.HasPrefix(e.id, customerIDPrefix) {
		return e.AsCustomer()
	}
	return e.AsRequest()
}

func (e Element) String() string {
	return e.Describe()
}
