package dto

// CostStatsDTO is the per-project cost summary with three buckets.
// Every field is always present and defaults to 0.
type CostStatsDTO struct {
	Fixed float64 `json:"fixed"`
	Human float64 `json:"human"`
	Other float64 `json:"other"`
}

// TaskStatsDTO holds per-project task counters.
type TaskStatsDTO struct {
	Total      int64 `json:"total"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// TimeStatsDTO holds per-project hour totals.
type TimeStatsDTO struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

// CostPairDTO is the two-bucket cost summary used inside project
// stats. Unlike CostStatsDTO there is no "other" bucket here.
type CostPairDTO struct {
	Fixed float64 `json:"fixed"`
	Human float64 `json:"human"`
}

// ProjectStatsDTO is the combined per-project statistics payload.
type ProjectStatsDTO struct {
	TaskStats TaskStatsDTO `json:"taskStats"`
	TimeStats TimeStatsDTO `json:"timeStats"`
	CostStats CostPairDTO  `json:"costStats"`
}

// StatusDistributionDTO is one row of the task status distribution.
type StatusDistributionDTO struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SystemStatisticsDTO is the system-wide statistics payload.
type SystemStatisticsDTO struct {
	ProjectCount        int64                   `json:"project_count"`
	ActiveProjectCount  int64                   `json:"active_project_count"`
	TotalTasks          int64                   `json:"total_tasks"`
	CompletedTasks      int64                   `json:"completed_tasks"`
	InProgressTasks     int64                   `json:"in_progress_tasks"`
	TotalEstimatedHours float64                 `json:"total_estimated_hours"`
	TotalActualHours    float64                 `json:"total_actual_hours"`
	StatusDistribution  []StatusDistributionDTO `json:"status_distribution"`
}
