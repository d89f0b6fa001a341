package dto

import "time"

// RunSummary describes the outcome of one scheduling run
type RunSummary struct {
	RunID     string        `json:"run_id"`
	Slots     int           `json:"slots"`
	Inbounded int           `json:"inbounded"`
	Pending   int           `json:"pending"`
	Dropped   int           `json:"dropped"`
	Completed int           `json:"completed_orders"`
	Duration  time.Duration `json:"duration"`
	// Scheduled is false when no item could be placed at all
	Scheduled bool `json:"scheduled"`
}
