// Package model contains domain models passed between layers.
package model

import "time"

// Action labels for the fixed activity set.
const (
	// ActionStart labels the single seed record the table is created with.
	ActionStart = "start"

	ActionView     = "view"
	ActionClick    = "click"
	ActionPurchase = "purchase"
	ActionSignup   = "signup"
)

// DefaultActions is the label set the emitter draws from.
// The seed label is deliberately excluded: "start" marks process birth only.
func DefaultActions() []string {
	return []string{ActionView, ActionClick, ActionPurchase, ActionSignup}
}

// Event is one logged customer action. Immutable once appended to the table.
type Event struct {
	ID         string    // unique event id
	CustomerID int       // customer identity
	Action     string    // activity label, one of the fixed set
	TS         time.Time // event timestamp
}
