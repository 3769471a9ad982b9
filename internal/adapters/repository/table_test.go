package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/types"
)

func seedEvent() model.Event {
	return model.Event{ID: "seed", CustomerID: 0, Action: model.ActionStart, TS: time.Now()}
}

func TestMemTable_SeedAndAppendOrder(t *testing.T) {
	ctx := context.Background()
	table := NewMemTable(ctx, WithSeed(seedEvent()))

	// Never empty after construction.
	if n := table.Len(ctx); n != 1 {
		t.Fatalf("expected 1 seed record, got %d", n)
	}

	appended := []string{model.ActionView, model.ActionView, model.ActionClick}
	for i, action := range appended {
		table.Append(ctx, model.Event{
			ID:         fmt.Sprintf("e%d", i),
			CustomerID: i + 1,
			Action:     action,
			TS:         time.Now(),
		})
	}

	snapshot := table.Snapshot(ctx)
	if len(snapshot) != len(appended)+1 {
		t.Fatalf("expected %d records, got %d", len(appended)+1, len(snapshot))
	}
	if snapshot[0].Action != model.ActionStart {
		t.Errorf("expected seed first, got %q", snapshot[0].Action)
	}
	for i, action := range appended {
		if snapshot[i+1].Action != action {
			t.Errorf("record %d: expected %q, got %q", i+1, action, snapshot[i+1].Action)
		}
	}
}

func TestMemTable_SnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	table := NewMemTable(ctx, WithSeed(seedEvent()))

	first := table.Snapshot(ctx)
	first[0].Action = "mutated"

	second := table.Snapshot(ctx)
	if second[0].Action != model.ActionStart {
		t.Errorf("snapshot mutation leaked into the table: %q", second[0].Action)
	}
}

func TestMemTable_SnapshotIdempotent(t *testing.T) {
	ctx := context.Background()
	table := NewMemTable(ctx, WithSeed(seedEvent()))
	table.Append(ctx, model.Event{ID: "e1", CustomerID: 9, Action: model.ActionClick, TS: time.Now()})

	a := table.Snapshot(ctx)
	b := table.Snapshot(ctx)
	if !reflect.DeepEqual(a, b) {
		t.Error("two snapshots with no intervening append differ")
	}
}

func TestMemTable_CountByAction(t *testing.T) {
	ctx := context.Background()
	table := NewMemTable(ctx, WithSeed(seedEvent()))

	// Seed only.
	counts := table.CountByAction(ctx)
	want := []types.ActionCount{{Action: model.ActionStart, Count: 1}}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("seed-only aggregate: got %v, want %v", counts, want)
	}

	for i, action := range []string{model.ActionView, model.ActionView, model.ActionClick} {
		table.Append(ctx, model.Event{ID: fmt.Sprintf("e%d", i), CustomerID: i, Action: action, TS: time.Now()})
	}

	counts = table.CountByAction(ctx)
	want = []types.ActionCount{
		{Action: model.ActionStart, Count: 1},
		{Action: model.ActionView, Count: 2},
		{Action: model.ActionClick, Count: 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("aggregate: got %v, want %v", counts, want)
	}
}

func TestMemTable_ConcurrentAppendAndSnapshot(t *testing.T) {
	ctx := context.Background()
	table := NewMemTable(ctx, WithSeed(seedEvent()))

	const writers = 8
	const appendsPerWriter = 200
	const readers = 4

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < appendsPerWriter; i++ {
				table.Append(ctx, model.Event{
					ID:         fmt.Sprintf("w%d-e%d", w, i),
					CustomerID: w,
					Action:     model.ActionView,
					TS:         time.Now(),
				})
			}
		}(w)
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for _, e := range table.Snapshot(ctx) {
					// A partially-written record would surface as a
					// zero-valued field mix never appended.
					if e.ID == "" || e.Action == "" {
						t.Error("observed partially-written record")
						return
					}
				}
			}
		}()
	}

	wg.Wait()

	if n := table.Len(ctx); n != writers*appendsPerWriter+1 {
		t.Errorf("expected %d records, got %d", writers*appendsPerWriter+1, n)
	}
}
