package sqlite

import (
	"context"

	"github.com/example/desk/internal/ctxutil"
	"github.com/example/desk/internal/ports/secondary"
)

// ActivityLogWriter implements secondary.ActivityLog using ActivityRepository.
type ActivityLogWriter struct {
	repo            secondary.ActivityRepository
	defaultOperator string
}

// NewActivityLogWriter creates a new ActivityLogWriter.
// defaultOperator is recorded when the context carries no operator.
func NewActivityLogWriter(repo secondary.ActivityRepository, defaultOperator string) *ActivityLogWriter {
	return &ActivityLogWriter{
		repo:            repo,
		defaultOperator: defaultOperator,
	}
}

// Record logs one action applied to a structure.
func (w *ActivityLogWriter) Record(ctx context.Context, structure, action, elementID, summary string) error {
	operator := ctxutil.OperatorFromContext(ctx)
	if operator == "" {
		operator = w.defaultOperator
	}

	id, err := w.repo.GetNextID(ctx)
	if err != nil {
		return err
	}

	return w.repo.Create(ctx, &secondary.ActivityRecord{
		ID:        id,
		Operator:  operator,
		Structure: structure,
		Action:    action,
		ElementID: elementID,
		Summary:   summary,
	})
}

// Ensure ActivityLogWriter implements the interface
var _ secondary.ActivityLog = (*ActivityLogWriter)(nil)
