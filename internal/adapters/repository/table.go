// Package repository defines the event table interface and its in-memory
// implementation.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/pulse/internal/domain/model"
	"github.com/okian/pulse/internal/domain/types"
	"github.com/okian/pulse/pkg/metrics"
)

// Store provides append and read access to the event table.
type Store interface {
	// Append adds one record. Visible to all subsequent snapshots.
	Append(ctx context.Context, e model.Event)

	// Snapshot returns a consistent point-in-time copy of all records in
	// append order.
	Snapshot(ctx context.Context) []model.Event

	// CountByAction groups the current snapshot by action label, in
	// first-seen order of each label.
	CountByAction(ctx context.Context) []types.ActionCount

	// Len returns the current number of records.
	Len(ctx context.Context) int
}

// MemTable implements Store with a single RWMutex around an append-only
// slice. The lock covers only the append or the copy, never I/O.
type MemTable struct {
	mu       sync.RWMutex
	events   []model.Event
	seed     []model.Event
	capacity int
}

// NewMemTable creates a table and applies the seed records, if any.
func NewMemTable(ctx context.Context, opts ...Option) *MemTable {
	t := &MemTable{
		capacity: defaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.events = make([]model.Event, 0, t.capacity)
	t.events = append(t.events, t.seed...)
	metrics.UpdateTableRecords(len(t.events))
	return t
}

// Append adds one record to the table.
func (t *MemTable) Append(_ context.Context, e model.Event) {
	t.mu.Lock()
	t.events = append(t.events, e)
	size := len(t.events)
	t.mu.Unlock()

	metrics.UpdateTableRecords(size)
}

// Snapshot returns a copy of all records in append order.
func (t *MemTable) Snapshot(_ context.Context) []model.Event {
	start := time.Now()
	defer func() {
		metrics.RecordSnapshotLatency(float64(time.Since(start).Microseconds()) / 1e3)
	}()

	t.mu.RLock()
	out := make([]model.Event, len(t.events))
	copy(out, t.events)
	t.mu.RUnlock()
	return out
}

// CountByAction returns per-action counts in first-seen order. The table is
// append-only, so first-seen order is stable across calls.
func (t *MemTable) CountByAction(ctx context.Context) []types.ActionCount {
	start := time.Now()
	defer func() {
		metrics.RecordAggregateLatency(float64(time.Since(start).Microseconds()) / 1e3)
	}()

	snapshot := t.Snapshot(ctx)
	index := make(map[string]int, 8)
	counts := make([]types.ActionCount, 0, 8)
	for _, e := range snapshot {
		i, ok := index[e.Action]
		if !ok {
			index[e.Action] = len(counts)
			counts = append(counts, types.ActionCount{Action: e.Action})
			i = len(counts) - 1
		}
		counts[i].Count++
	}
	return counts
}

// Len returns the current number of records.
func (t *MemTable) Len(_ context.Context) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.events)
}
