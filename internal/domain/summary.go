package domain

// TimesheetSummary aggregates logged hours over a set of entries.
type TimesheetSummary struct {
	TotalHours    float64
	ApprovedHours float64
	PendingHours  float64
	ByWorkstream  map[string]float64
	ByUser        map[string]float64
	// UnresolvedWorkstreams lists workstream ids referenced by entries but
	// absent from the store. Their hours count toward TotalHours but are
	// excluded from ByWorkstream.
	UnresolvedWorkstreams []string
	DateRange             [2]string
}

// BudgetBreakdown pairs planned and actual amounts within one grouping bucket.
type BudgetBreakdown struct {
	Planned float64
	Actual  float64
}

// BudgetSummary rolls up all budget entries and forecasts for one workstream.
type BudgetSummary struct {
	WorkstreamID  string
	TotalBudget   float64
	TotalActual   float64
	TotalForecast float64
	Variance      float64
	// VariancePct is zero when the planned total is zero.
	VariancePct float64
	ByPeriod    map[BudgetPeriod]BudgetBreakdown
	ByProfile   map[string]BudgetBreakdown
	ByType      map[BudgetType]BudgetBreakdown
}

// WorkstreamRollup is the per-workstream slice of the dashboard.
type WorkstreamRollup struct {
	WorkstreamID    string
	Name            string
	Status          WorkstreamStatus
	BudgetAmount    float64
	SpentAmount     float64
	RemainingAmount float64
	HoursLogged     float64
	// ProgressPct is zero when the workstream has no estimated hours.
	ProgressPct float64
}

// DashboardRollup joins workstreams, profiles, timesheets and budgets
// into project-level totals.
type DashboardRollup struct {
	Workstreams      []WorkstreamRollup
	TotalBudget      float64
	TotalSpent       float64
	TotalHours       float64
	OverallProgress  float64
	ResourceRisk     bool
	ProfileCount     int
	WorkstreamCount  int
	TimesheetEntries int
}

// TrendPoint is one bucket of a hours-over-time series.
type TrendPoint struct {
	Bucket string
	Hours  float64
}

// TrendAnalysis buckets logged hours by day, ISO week, or month.
type TrendAnalysis struct {
	Period  string
	Points  []TrendPoint
	Total   float64
	Average float64
}
