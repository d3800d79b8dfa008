// Package desk contains the pure business logic for desk operations.
// Guards are pure functions that evaluate preconditions without side effects.
package desk

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// AddCustomerContext provides context for customer intake guards.
type AddCustomerContext struct {
	ID     string
	Name   string
	Reason string // optional
}

// AddRequestContext provides context for history request guards.
type AddRequestContext struct {
	ID          string
	Description string
}

// CanAddCustomer evaluates whether a customer can join the queue.
// Rules:
// - ID must not be blank
// - Name must not be blank
func CanAddCustomer(ctx AddCustomerContext) GuardResult {
	if strings.TrimSpace(ctx.ID) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "customer ID is required (e.g. CLI011)",
		}
	}

	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("customer %s needs a name", ctx.ID),
		}
	}

	return GuardResult{Allowed: true}
}

// CanAddRequest evaluates whether a request can be pushed onto the history.
// Rules:
// - ID must not be blank
// - Description must not be blank
func CanAddRequest(ctx AddRequestContext) GuardResult {
	if strings.TrimSpace(ctx.ID) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "request ID is required (e.g. REQ011)",
		}
	}

	if strings.TrimSpace(ctx.Description) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("request %s needs a description", ctx.ID),
		}
	}

	return GuardResult{Allowed: true}
}
