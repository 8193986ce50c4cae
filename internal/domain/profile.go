package domain

import (
	"fmt"
	"time"
)

// Profile is a team member assigned to one or more workstreams.
type Profile struct {
	ID           string
	AnonymizedID string

	Name           string
	Role           string
	HourlyRate     float64
	DailyRate      float64
	Workstreams    []string
	AllocatedHours map[string]float64
	Skills         []string
	StartDate      *time.Time
	EndDate        *time.Time
	// UtilizationTarget is the target utilization ratio (1.0 = 100%).
	UtilizationTarget float64
}

func (p *Profile) Kind() EntityKind { return KindProfile }
func (p *Profile) Key() string      { return p.ID }
func (p *Profile) Token() string    { return p.AnonymizedID }

// Validate checks required fields and numeric ranges.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if p.HourlyRate < 0 {
		return fmt.Errorf("hourly rate must not be negative, got %v", p.HourlyRate)
	}
	if p.DailyRate < 0 {
		return fmt.Errorf("daily rate must not be negative, got %v", p.DailyRate)
	}
	if p.UtilizationTarget < 0 {
		return fmt.Errorf("utilization target must not be negative, got %v", p.UtilizationTarget)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}
