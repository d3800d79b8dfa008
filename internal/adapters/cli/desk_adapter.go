// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/desk/internal/ports/primary"
)

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	okColor      = color.New(color.FgHiGreen)
	dimColor     = color.New(color.FgHiBlack)
	idColor      = color.New(color.FgYellow)
	emptyColor   = color.New(color.FgHiMagenta)
)

// DeskAdapter is a thin adapter that translates menu actions to DeskService calls.
// It depends only on the DeskService interface, enabling easy testing with mocks.
type DeskAdapter struct {
	service primary.DeskService
	out     io.Writer
}

// NewDeskAdapter creates a new DeskAdapter with the given service.
func NewDeskAdapter(service primary.DeskService, out io.Writer) *DeskAdapter {
	return &DeskAdapter{
		service: service,
		out:     out,
	}
}

// ShowQueue prints waiting customers from front to back.
func (a *DeskAdapter) ShowQueue(ctx context.Context) {
	headingColor.Fprintln(a.out, "\n=== SERVICE QUEUE (front -> back) ===")
	customers := a.service.ListQueue(ctx)
	if len(customers) == 0 {
		dimColor.Fprintln(a.out, "[Queue empty]")
		return
	}
	for i, c := range customers {
		fmt.Fprintf(a.out, "[%d] %s\n", i+1, c.Line)
	}
}

// ServeNext serves the next customer and reports the saved history record.
// A result that comes back with a logging error is still printed.
func (a *DeskAdapter) ServeNext(ctx context.Context) error {
	resp, err := a.service.ServeNext(ctx)
	if resp == nil {
		return err
	}

	headingColor.Fprintln(a.out, "\n--- CUSTOMER SERVED ---")
	fmt.Fprintf(a.out, "Served: %s\n", resp.Customer.Line)
	okColor.Fprintf(a.out, "✓ Saved to history (ID: %s)\n", idColor.Sprint(resp.Record.ID))
	return err
}

// ShowHistory prints history requests from top to bottom.
func (a *DeskAdapter) ShowHistory(ctx context.Context) {
	headingColor.Fprintln(a.out, "\n=== REQUEST HISTORY (top -> bottom) ===")
	requests := a.service.ListHistory(ctx)
	if len(requests) == 0 {
		dimColor.Fprintln(a.out, "[History empty]")
		return
	}
	for i, r := range requests {
		fmt.Fprintf(a.out, "[%d] %s\n", i+1, r.Line)
	}
}

// AddRequest pushes a request onto the history.
func (a *DeskAdapter) AddRequest(ctx context.Context, id, description string) error {
	r, err := a.service.AddRequest(ctx, primary.AddRequestRequest{
		ID:          id,
		Description: description,
	})
	if r == nil {
		return err
	}

	okColor.Fprintf(a.out, "✓ Request %s added to history\n", r.ID)
	return err
}

// RemoveLast pops the most recent request from the history.
func (a *DeskAdapter) RemoveLast(ctx context.Context) error {
	r, err := a.service.RemoveLastRequest(ctx)
	if r == nil {
		return err
	}

	headingColor.Fprintln(a.out, "\n--- REMOVED FROM HISTORY ---")
	fmt.Fprintf(a.out, "Removed (top): %s\n", r.Line)
	return err
}

// AddCustomer appends a customer to the queue.
func (a *DeskAdapter) AddCustomer(ctx context.Context, id, name, reason string) error {
	c, err := a.service.AddCustomer(ctx, primary.AddCustomerRequest{
		ID:     id,
		Name:   name,
		Reason: reason,
	})
	if c == nil {
		return err
	}

	okColor.Fprintf(a.out, "✓ Customer %s (ID: %s) added to the queue\n", c.Name, c.ID)
	return err
}

// Status prints whether each structure is empty.
func (a *DeskAdapter) Status(ctx context.Context) {
	st := a.service.Status(ctx)
	headingColor.Fprintln(a.out, "\n--- STRUCTURE STATUS ---")
	fmt.Fprintf(a.out, "Service queue:   %s\n", emptiness(st.QueueEmpty))
	fmt.Fprintf(a.out, "Request history: %s\n", emptiness(st.HistoryEmpty))
}

// Activity prints activity entries matching filters, newest first.
func (a *DeskAdapter) Activity(ctx context.Context, filters primary.ActivityFilters) error {
	entries, err := a.service.Activity(ctx, filters)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-10s %-8s %-8s %-16s %s\n", "ID", "OPERATOR", "ACTION", "ON", "ELEMENT", "SUMMARY")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-10s %-10s %-8s %-8s %-16s %s\n", e.ID, e.Operator, e.Action, orDash(e.Structure), e.ElementID, e.Summary)
	}
	return nil
}

// ShowActivity prints one activity entry in full.
func (a *DeskAdapter) ShowActivity(ctx context.Context, id string) error {
	e, err := a.service.GetActivity(ctx, id)
	if err != nil {
		return err
	}

	headingColor.Fprintf(a.out, "\n%s\n", e.ID)
	fmt.Fprintf(a.out, "Operator:  %s\n", orDash(e.Operator))
	fmt.Fprintf(a.out, "Action:    %s\n", e.Action)
	fmt.Fprintf(a.out, "Structure: %s\n", orDash(e.Structure))
	fmt.Fprintf(a.out, "Element:   %s\n", orDash(e.ElementID))
	fmt.Fprintf(a.out, "Summary:   %s\n", orDash(e.Summary))
	fmt.Fprintf(a.out, "At:        %s\n", e.CreatedAt)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func emptiness(empty bool) string {
	if empty {
		return emptyColor.Sprint("EMPTY")
	}
	return okColor.Sprint("NOT EMPTY")
}
