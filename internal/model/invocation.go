package model

import "time"

// Invocation records a single command routed from the frontend through the
// registry. Entries are kept only in memory, for the history panel.
type Invocation struct {
	ID         string
	Command    string
	OK         bool
	Detail     string // result summary on success, error text on failure
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the handler ran
func (inv *Invocation) Elapsed() time.Duration {
	if inv.FinishedAt.IsZero() {
		return 0
	}
	return inv.FinishedAt.Sub(inv.StartedAt)
}

// GetDisplaySummary returns "command · detail", or just the command name when
// there is no detail to show
func (inv *Invocation) GetDisplaySummary() string {
	if inv.Detail == "" {
		return inv.Command
	}
	return inv.Command + " · " + inv.Detail
}
