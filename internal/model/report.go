package model

import "time"

// PhaseStatus describes how a pipeline phase ended.
type PhaseStatus string

const (
	PhaseStatusSuccess PhaseStatus = "success"
	PhaseStatusFailed  PhaseStatus = "failed"
	PhaseStatusSkipped PhaseStatus = "skipped"
)

// TokenUsage accumulates token consumption across external calls.
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Cost         float64 `json:"cost"`
}

// Add accumulates another usage into u.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Cost += other.Cost
}

// PhaseReport records one pipeline phase for the run report.
type PhaseReport struct {
	Name       string      `json:"name"`
	Status     PhaseStatus `json:"status"`
	Duration   int64       `json:"duration_ms"`
	TokenUsage TokenUsage  `json:"token_usage"`
	Error      string      `json:"error,omitempty"`
}

// EnrichmentReport is the final outcome of one enrichment run.
type EnrichmentReport struct {
	RunID          string         `json:"run_id"`
	Table          *Table         `json:"table"`
	Results        []SectorResult `json:"results,omitempty"`
	Tally          SectorTally    `json:"tally"`
	Recommendation string         `json:"recommendation"`
	Phases         []PhaseReport  `json:"phases"`
	TotalUsage     TokenUsage     `json:"total_usage"`
	StartedAt      time.Time      `json:"started_at"`
	FinishedAt     time.Time      `json:"finished_at"`
}
