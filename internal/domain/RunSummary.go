package domain

import "time"

// RunSummary resume uma execução da extração
type RunSummary struct {
	RunID          string    `json:"run_id"`
	TimeRange      TimeRange `json:"time_range"`
	Level          Level     `json:"level"`
	Accounts       int       `json:"accounts"`
	FailedAccounts []string  `json:"failed_accounts"`
	Rows           int       `json:"rows"`
	OutputPath     string    `json:"output_path,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}
