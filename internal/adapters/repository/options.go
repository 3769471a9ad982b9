// Package repository defines the event table interface and its in-memory
// implementation.
package repository

import "github.com/okian/pulse/internal/domain/model"

// Default table configuration constants.
const (
	defaultInitialCapacity = 1024
)

// Option applies a configuration option to the MemTable.
type Option func(*MemTable)

// WithSeed sets records present in the table at construction.
func WithSeed(events ...model.Event) Option {
	return func(t *MemTable) {
		t.seed = events
	}
}

// WithInitialCapacity sets the initial backing-slice capacity.
func WithInitialCapacity(n int) Option {
	return func(t *MemTable) {
		if n > 0 {
			t.capacity = n
		}
	}
}
