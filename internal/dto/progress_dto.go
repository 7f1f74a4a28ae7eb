package dto

// ProgressSummaryResponse reports per-period workflow progress: how many
// assignments exist and how recorded results split across lifecycle
// statuses. Counts only; score aggregation is out of scope.
type ProgressSummaryResponse struct {
	PeriodID      uint             `json:"period_id"`
	PeriodCode    string           `json:"period_code"`
	Assignments   int64            `json:"assignments"`
	Results       int64            `json:"results"`
	StatusCounts  map[string]int64 `json:"status_counts"`
	SubmittedRate float64          `json:"submitted_rate"`
	CacheHit      bool             `json:"cache_hit,omitempty"`
}
