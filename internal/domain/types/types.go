// Package types contains common types used across the application.
package types

// Record is the wire shape of one event returned by GET /get_data.
type Record struct {
	Timestamp string `json:"timestamp"`
	Identity  int    `json:"identity"`
	Category  string `json:"category"`
}

// ActionCount is one row of the count-by-action aggregate.
type ActionCount struct {
	Action string `json:"category"`
	Count  int    `json:"count"`
}
