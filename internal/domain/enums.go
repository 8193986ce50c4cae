package domain

type WorkstreamStatus string

const (
	WorkstreamPlanned    WorkstreamStatus = "planned"
	WorkstreamInProgress WorkstreamStatus = "in_progress"
	WorkstreamOnHold     WorkstreamStatus = "on_hold"
	WorkstreamCompleted  WorkstreamStatus = "completed"
	WorkstreamCancelled  WorkstreamStatus = "cancelled"
)

type WorkstreamPriority string

const (
	PriorityLow      WorkstreamPriority = "low"
	PriorityMedium   WorkstreamPriority = "medium"
	PriorityHigh     WorkstreamPriority = "high"
	PriorityCritical WorkstreamPriority = "critical"
)

type ApprovalStatus string

const (
	ApprovalOpen      ApprovalStatus = "open"
	ApprovalSubmitted ApprovalStatus = "submitted"
	ApprovalApproved  ApprovalStatus = "approved"
	ApprovalRejected  ApprovalStatus = "rejected"
)

type BudgetType string

const (
	BudgetLabor    BudgetType = "labor"
	BudgetNonLabor BudgetType = "non_labor"
	BudgetTotal    BudgetType = "total"
)

type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodAnnually  BudgetPeriod = "annually"
)

type BudgetStatus string

const (
	BudgetDraft     BudgetStatus = "draft"
	BudgetSubmitted BudgetStatus = "submitted"
	BudgetApproved  BudgetStatus = "approved"
	BudgetRejected  BudgetStatus = "rejected"
)

// ValidWorkstreamStatuses is the canonical set of accepted workstream status strings.
var ValidWorkstreamStatuses = map[string]bool{
	"planned": true, "in_progress": true, "on_hold": true,
	"completed": true, "cancelled": true,
}

// ValidApprovalStatuses is the canonical set of accepted approval status strings.
var ValidApprovalStatuses = map[string]bool{
	"open": true, "submitted": true, "approved": true, "rejected": true,
}

// ValidBudgetTypes is the canonical set of accepted budget type strings.
var ValidBudgetTypes = map[string]bool{
	"labor": true, "non_labor": true, "total": true,
}

// ValidBudgetPeriods is the canonical set of accepted budget period strings.
var ValidBudgetPeriods = map[string]bool{
	"monthly": true, "quarterly": true, "annually": true,
}
