package domain

import "time"

// Invocation records one run of the build step.
type Invocation struct {
	ID           string        `json:"id"`
	BuildName    string        `json:"build_name,omitzero"`
	BuildNumber  int           `json:"build_number,omitzero"`
	Installation string        `json:"installation,omitzero"`
	Fingerprint  string        `json:"fingerprint,omitzero"`
	ExitCode     int           `json:"exit_code"`
	Result       BuildResult   `json:"result"`
	StartedAt    time.Time     `json:"started_at,omitzero"`
	Duration     time.Duration `json:"duration,omitzero"`
}
