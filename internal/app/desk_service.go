package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/desk/internal/core/chain"
	"github.com/example/desk/internal/core/desk"
	"github.com/example/desk/internal/core/element"
	"github.com/example/desk/internal/ports/primary"
	"github.com/example/desk/internal/ports/secondary"
)

// Labels used in EmptyStructure errors.
const (
	QueueName   = "service queue"
	HistoryName = "request history"
)

// TimestampLayout formats the date/time of requests created at the desk.
const TimestampLayout = "2006-01-02 15:04:05"

// DeskServiceImpl implements the DeskService interface.
// It owns one customer queue and one request history and is meant to be
// driven by a single goroutine.
type DeskServiceImpl struct {
	queue   *chain.Queue[element.Element]
	history *chain.Stack[element.Element]

	seeds        secondary.SeedSource
	activity     secondary.ActivityLog
	activityRepo secondary.ActivityRepository
	ids          secondary.RequestIDGenerator
	now          func() time.Time
}

// NewDeskService creates a new DeskService with injected dependencies.
// now may be nil, in which case time.Now is used.
func NewDeskService(
	seeds secondary.SeedSource,
	activity secondary.ActivityLog,
	activityRepo secondary.ActivityRepository,
	ids secondary.RequestIDGenerator,
	now func() time.Time,
) *DeskServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &DeskServiceImpl{
		queue:        chain.NewQueue[element.Element](QueueName),
		history:      chain.NewStack[element.Element](HistoryName),
		seeds:        seeds,
		activity:     activity,
		activityRepo: activityRepo,
		ids:          ids,
		now:          now,
	}
}

// Seed loads the initial customers and history requests.
func (s *DeskServiceImpl) Seed(ctx context.Context) error {
	data, err := s.seeds.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	for _, c := range data.Customers {
		s.queue.Enqueue(element.NewCustomer(c.ID, c.Name, c.Reason))
	}
	for _, r := range data.History {
		s.history.Push(element.NewRequest(r.ID, r.Description, r.Timestamp))
	}

	summary := fmt.Sprintf("%d customers, %d requests", len(data.Customers), len(data.History))
	if err := s.activity.Record(ctx, "", secondary.ActionSeed, "", summary); err != nil {
		return fmt.Errorf("failed to record seed: %w", err)
	}
	return nil
}

// ListQueue returns waiting customers from front to back.
func (s *DeskServiceImpl) ListQueue(ctx context.Context) []*primary.Customer {
	var customers []*primary.Customer
	for el := range s.queue.All() {
		customers = append(customers, toCustomer(el))
	}
	return customers
}

// ServeNext serves the customer at the front of the queue and pushes the
// resulting service record onto the history. Both structures change before
// anything is logged; a logging error is returned alongside the response.
func (s *DeskServiceImpl) ServeNext(ctx context.Context) (*primary.ServeResponse, error) {
	served, err := s.queue.Dequeue()
	if err != nil {
		return nil, err
	}
	record := desk.PlanServiceRecord(desk.ServeInput{
		Customer:  served,
		RequestID: s.ids.NextRequestID(),
		Timestamp: s.timestamp(),
	})
	s.history.Push(record)

	resp := &primary.ServeResponse{
		Customer: toCustomer(served),
		Record:   toRequest(record),
	}
	if err := s.activity.Record(ctx, secondary.StructureQueue, secondary.ActionDequeue, served.ID(), served.Primary()); err != nil {
		return resp, fmt.Errorf("failed to record dequeue: %w", err)
	}
	if err := s.activity.Record(ctx, secondary.StructureHistory, secondary.ActionPush, record.ID(), record.Primary()); err != nil {
		return resp, fmt.Errorf("failed to record push: %w", err)
	}
	return resp, nil
}

// ListHistory returns history requests from top to bottom.
func (s *DeskServiceImpl) ListHistory(ctx context.Context) []*primary.Request {
	var requests []*primary.Request
	for el := range s.history.All() {
		requests = append(requests, toRequest(el))
	}
	return requests
}

// AddRequest pushes a new request, stamped with the current time, onto the history.
func (s *DeskServiceImpl) AddRequest(ctx context.Context, req primary.AddRequestRequest) (*primary.Request, error) {
	guard := desk.CanAddRequest(desk.AddRequestContext{
		ID:          req.ID,
		Description: req.Description,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	el := element.NewRequest(req.ID, req.Description, s.timestamp())
	s.history.Push(el)
	if err := s.activity.Record(ctx, secondary.StructureHistory, secondary.ActionPush, el.ID(), el.Primary()); err != nil {
		return toRequest(el), fmt.Errorf("failed to record push: %w", err)
	}
	return toRequest(el), nil
}

// RemoveLastRequest pops the most recent request from the history.
func (s *DeskServiceImpl) RemoveLastRequest(ctx context.Context) (*primary.Request, error) {
	removed, err := s.history.Pop()
	if err != nil {
		return nil, err
	}

	// Popped records keep their tag, so Describe renders them as requests.
	r := &primary.Request{
		ID:          removed.ID(),
		Description: removed.Primary(),
		Timestamp:   removed.Secondary(),
		Line:        removed.Describe(),
	}
	if err := s.activity.Record(ctx, secondary.StructureHistory, secondary.ActionPop, removed.ID(), removed.Primary()); err != nil {
		return r, fmt.Errorf("failed to record pop: %w", err)
	}
	return r, nil
}

// AddCustomer appends a customer to the back of the queue.
func (s *DeskServiceImpl) AddCustomer(ctx context.Context, req primary.AddCustomerRequest) (*primary.Customer, error) {
	guard := desk.CanAddCustomer(desk.AddCustomerContext{
		ID:     req.ID,
		Name:   req.Name,
		Reason: req.Reason,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	el := element.NewCustomer(req.ID, req.Name, req.Reason)
	s.queue.Enqueue(el)
	if err := s.activity.Record(ctx, secondary.StructureQueue, secondary.ActionEnqueue, el.ID(), el.Primary()); err != nil {
		return toCustomer(el), fmt.Errorf("failed to record enqueue: %w", err)
	}
	return toCustomer(el), nil
}

// Status reports whether each structure is empty.
func (s *DeskServiceImpl) Status(ctx context.Context) *primary.Status {
	return &primary.Status{
		QueueEmpty:   s.queue.IsEmpty(),
		HistoryEmpty: s.history.IsEmpty(),
	}
}

// Activity returns activity entries matching filters, newest first.
func (s *DeskServiceImpl) Activity(ctx context.Context, filters primary.ActivityFilters) ([]*primary.ActivityEntry, error) {
	if err := validateActivityFilters(filters); err != nil {
		return nil, err
	}

	records, err := s.activityRepo.List(ctx, secondary.ActivityFilters{
		Structure: filters.Structure,
		Action:    filters.Action,
		Operator:  filters.Operator,
		Limit:     filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	entries := make([]*primary.ActivityEntry, len(records))
	for i, r := range records {
		entries[i] = toActivityEntry(r)
	}
	return entries, nil
}

// GetActivity returns a single activity entry by its ID.
func (s *DeskServiceImpl) GetActivity(ctx context.Context, id string) (*primary.ActivityEntry, error) {
	if id == "" {
		return nil, errors.New("activity ID is required (e.g. ACT-0001)")
	}
	record, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toActivityEntry(record), nil
}

func validateActivityFilters(f primary.ActivityFilters) error {
	switch f.Structure {
	case "", secondary.StructureQueue, secondary.StructureHistory:
	default:
		return fmt.Errorf("unknown structure %q (want %s or %s)", f.Structure, secondary.StructureQueue, secondary.StructureHistory)
	}
	switch f.Action {
	case "", secondary.ActionSeed, secondary.ActionEnqueue, secondary.ActionDequeue, secondary.ActionPush, secondary.ActionPop:
	default:
		return fmt.Errorf("unknown action %q", f.Action)
	}
	if f.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", f.Limit)
	}
	return nil
}

func (s *DeskServiceImpl) timestamp() string {
	return s.now().Format(TimestampLayout)
}

func toCustomer(el element.Element) *primary.Customer {
	return &primary.Customer{
		ID:     el.ID(),
		Name:   el.Primary(),
		Reason: el.Secondary(),
		Line:   el.AsCustomer(),
	}
}

func toRequest(el element.Element) *primary.Request {
	return &primary.Request{
		ID:          el.ID(),
		Description: el.Primary(),
		Timestamp:   el.Secondary(),
		Line:        el.AsRequest(),
	}
}

func toActivityEntry(r *secondary.ActivityRecord) *primary.ActivityEntry {
	return &primary.ActivityEntry{
		ID:        r.ID,
		Operator:  r.Operator,
		Structure: r.Structure,
		Action:    r.Action,
		ElementID: r.ElementID,
		Summary:   r.Summary,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure DeskServiceImpl implements the interface
var _ primary.DeskService = (*DeskServiceImpl)(nil)
