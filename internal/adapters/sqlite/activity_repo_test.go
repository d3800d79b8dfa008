package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/desk/internal/adapters/sqlite"
	"github.com/example/desk/internal/ctxutil"
	"github.com/example/desk/internal/ports/secondary"
)

func TestActivityRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.ActivityRecord{
		ID:        "ACT-0001",
		Operator:  "ana",
		Structure: secondary.StructureQueue,
		Action:    secondary.ActionEnqueue,
		ElementID: "CLI011",
		Summary:   "Beatriz Nunes",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "ACT-0001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Operator != "ana" || got.Structure != "queue" || got.Action != "enqueue" || got.ElementID != "CLI011" || got.Summary != "Beatriz Nunes" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Error("CreatedAt should be set")
	}
}

func TestActivityRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)

	_, err := repo.GetByID(context.Background(), "ACT-9999")
	if err == nil {
		t.Fatal("expected error for missing entry")
	}
	if err.Error() != "activity entry ACT-9999 not found" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestActivityRepository_SeedRowHasNoStructure(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.ActivityRecord{ID: "ACT-0001", Action: secondary.ActionSeed, Summary: "10 customers, 10 requests"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := repo.GetByID(ctx, "ACT-0001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Structure != "" || got.ElementID != "" {
		t.Errorf("expected empty structure and element, got %+v", got)
	}
}

func TestActivityRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	seedActivity(t, db, "ACT-0001", "", "seed", "")
	seedActivity(t, db, "ACT-0002", "queue", "dequeue", "CLI001")
	seedActivity(t, db, "ACT-0003", "history", "push", "REQ_AUTO_1")
	seedActivity(t, db, "ACT-0010", "history", "pop", "REQ_AUTO_1")

	tests := []struct {
		name    string
		filters secondary.ActivityFilters
		wantIDs []string
	}{
		{
			name:    "all newest first",
			filters: secondary.ActivityFilters{},
			wantIDs: []string{"ACT-0010", "ACT-0003", "ACT-0002", "ACT-0001"},
		},
		{
			name:    "by structure",
			filters: secondary.ActivityFilters{Structure: "history"},
			wantIDs: []string{"ACT-0010", "ACT-0003"},
		},
		{
			name:    "by action",
			filters: secondary.ActivityFilters{Action: "dequeue"},
			wantIDs: []string{"ACT-0002"},
		},
		{
			name:    "by operator",
			filters: secondary.ActivityFilters{Operator: "nobody"},
			wantIDs: nil,
		},
		{
			name:    "limit",
			filters: secondary.ActivityFilters{Limit: 2},
			wantIDs: []string{"ACT-0010", "ACT-0003"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.List(ctx, tt.filters)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(records) != len(tt.wantIDs) {
				t.Fatalf("got %d records, want %d", len(records), len(tt.wantIDs))
			}
			for i, r := range records {
				if r.ID != tt.wantIDs[i] {
					t.Errorf("records[%d].ID = %s, want %s", i, r.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestActivityRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "ACT-0001" {
		t.Errorf("expected ACT-0001, got %s", id)
	}

	seedActivity(t, db, "ACT-0041", "queue", "enqueue", "CLI001")

	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "ACT-0042" {
		t.Errorf("expected ACT-0042, got %s", id)
	}
}

func TestActivityLogWriter_Record(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewActivityRepository(db)
	writer := sqlite.NewActivityLogWriter(repo, "desk")

	ctx := context.Background()
	if err := writer.Record(ctx, secondary.StructureQueue, secondary.ActionDequeue, "CLI001", "Maria Silva"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	opCtx := ctxutil.WithOperator(ctx, "ana")
	if err := writer.Record(opCtx, secondary.StructureHistory, secondary.ActionPush, "REQ_AUTO_1", "Service completed"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	records, err := repo.List(ctx, secondary.ActivityFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "ACT-0002" || records[0].Operator != "ana" {
		t.Errorf("unexpected newest record: %+v", records[0])
	}
	if records[1].ID != "ACT-0001" || records[1].Operator != "desk" {
		t.Errorf("unexpected oldest record: %+v", records[1])
	}
}
