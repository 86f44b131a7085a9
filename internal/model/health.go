package model

import "time"

// HealthState represents the shell's view of the backend API
type HealthState string

const (
	// HealthStateUnknown means no check has been performed yet
	HealthStateUnknown HealthState = "Unknown"

	// HealthStateChecking means a check request is in flight
	HealthStateChecking HealthState = "Checking"

	// HealthStateHealthy means the last check returned a 2xx status
	HealthStateHealthy HealthState = "Healthy"

	// HealthStateUnhealthy means the last check returned a non-2xx status
	HealthStateUnhealthy HealthState = "Unhealthy"

	// HealthStateError means the last check failed at the transport level
	HealthStateError HealthState = "Error"
)

// String returns the string representation of HealthState
func (hs HealthState) String() string {
	return string(hs)
}

// IsTerminal returns true if the state is the settled outcome of a check
func (hs HealthState) IsTerminal() bool {
	return hs == HealthStateHealthy || hs == HealthStateUnhealthy || hs == HealthStateError
}

// HealthReport captures the outcome of a single backend health check
type HealthReport struct {
	URL       string
	State     HealthState
	Healthy   bool      // true only when State is Healthy
	LastError string    // transport error text when State is Error
	CheckedAt time.Time // when the check finished (or started, while Checking)
}
