package domain

import (
	"fmt"
	"time"
)

// BudgetEntry is a planned-versus-actual budget line for a workstream,
// optionally scoped to a single profile.
type BudgetEntry struct {
	ID           string
	AnonymizedID string

	WorkstreamID  string
	ProfileID     string
	Type          BudgetType
	Period        BudgetPeriod
	StartDate     time.Time
	EndDate       time.Time
	PlannedHours  float64
	PlannedAmount float64
	ActualHours   float64
	ActualAmount  float64
	Status        BudgetStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b *BudgetEntry) Kind() EntityKind { return KindBudget }
func (b *BudgetEntry) Key() string      { return b.ID }
func (b *BudgetEntry) Token() string    { return b.AnonymizedID }

// Validate checks required fields and enum values.
func (b *BudgetEntry) Validate() error {
	if b.WorkstreamID == "" {
		return fmt.Errorf("budget workstream id is required")
	}
	if !ValidBudgetTypes[string(b.Type)] {
		return fmt.Errorf("invalid budget type %q", b.Type)
	}
	if !ValidBudgetPeriods[string(b.Period)] {
		return fmt.Errorf("invalid budget period %q", b.Period)
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return fmt.Errorf("budget date range is required")
	}
	if b.EndDate.Before(b.StartDate) {
		return fmt.Errorf("budget end date %s is before start date %s",
			b.EndDate.Format("2006-01-02"), b.StartDate.Format("2006-01-02"))
	}
	if b.PlannedHours < 0 || b.ActualHours < 0 {
		return fmt.Errorf("budget hours must not be negative")
	}
	return nil
}

// BudgetForecast is a forward-looking estimate for a workstream.
type BudgetForecast struct {
	ID           string
	AnonymizedID string

	WorkstreamID   string
	ProfileID      string
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	ForecastHours  float64
	ForecastAmount float64
	// ConfidenceLevel is in [0.0, 1.0].
	ConfidenceLevel float64
	Assumptions     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (f *BudgetForecast) Kind() EntityKind { return KindForecast }
func (f *BudgetForecast) Key() string      { return f.ID }
func (f *BudgetForecast) Token() string    { return f.AnonymizedID }

// Validate checks required fields and the confidence range.
func (f *BudgetForecast) Validate() error {
	if f.WorkstreamID == "" {
		return fmt.Errorf("forecast workstream id is required")
	}
	if !ValidBudgetPeriods[string(f.Period)] {
		return fmt.Errorf("invalid forecast period %q", f.Period)
	}
	if f.ConfidenceLevel < 0 || f.ConfidenceLevel > 1 {
		return fmt.Errorf("confidence level must be between 0.0 and 1.0, got %v", f.ConfidenceLevel)
	}
	return nil
}
