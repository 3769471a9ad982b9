// Package probe polls a running pulse service and verifies that its read
// endpoints stay consistent with each other.
package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Polls    int           // Number of poll rounds
	Interval time.Duration // Delay between poll rounds
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// Stats holds probe run statistics.
type Stats struct {
	Polls        int
	RecordsFirst int
	RecordsLast  int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

// Record mirrors the wire shape of GET /get_data entries.
type Record struct {
	Timestamp string `json:"timestamp"`
	Identity  int    `json:"identity"`
	Category  string `json:"category"`
}

// Figure mirrors the wire shape of GET /plot.
type Figure struct {
	Data []struct {
		Type string   `json:"type"`
		X    []string `json:"x"`
		Y    []int    `json:"y"`
	} `json:"data"`
	Layout struct {
		Title struct {
			Text string `json:"text"`
		} `json:"title"`
	} `json:"layout"`
}
