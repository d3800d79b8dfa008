package wire

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/desk/internal/config"
	"github.com/example/desk/internal/ports/primary"
)

func TestBuildDeskService_SeedsAndLogs(t *testing.T) {
	c := config.DefaultConfig()
	c.Operator = "ana"

	svc, activityDB, err := BuildDeskService(c)
	if err != nil {
		t.Fatalf("BuildDeskService failed: %v", err)
	}
	t.Cleanup(func() { activityDB.Close() })

	ctx := context.Background()
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if got := len(svc.ListQueue(ctx)); got != 10 {
		t.Errorf("expected 10 seeded customers, got %d", got)
	}

	resp, err := svc.ServeNext(ctx)
	if err != nil {
		t.Fatalf("ServeNext failed: %v", err)
	}
	if resp.Customer.ID != "CLI001" {
		t.Errorf("served %s, want CLI001", resp.Customer.ID)
	}

	entries, err := svc.Activity(ctx, primary.ActivityFilters{})
	if err != nil {
		t.Fatalf("Activity failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected seed, dequeue and push entries, got %d", len(entries))
	}
	if entries[0].Action != "push" || entries[1].Action != "dequeue" || entries[2].Action != "seed" {
		t.Errorf("unexpected order: %s, %s, %s", entries[0].Action, entries[1].Action, entries[2].Action)
	}
	if entries[0].Operator != "ana" {
		t.Errorf("operator = %s, want ana", entries[0].Operator)
	}
}

func TestBuildDeskService_BadSeedFile(t *testing.T) {
	c := config.DefaultConfig()
	c.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	svc, activityDB, err := BuildDeskService(c)
	if err != nil {
		t.Fatalf("BuildDeskService failed: %v", err)
	}
	t.Cleanup(func() { activityDB.Close() })

	if err := svc.Seed(context.Background()); err == nil {
		t.Error("expected seed error for missing file")
	}
}
