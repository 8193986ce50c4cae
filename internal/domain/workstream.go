package domain

import (
	"fmt"
	"time"
)

// Workstream is a budgeted unit of project work. Dependencies reference
// other workstream ids and are expected to form a DAG; cycle checking
// happens at write time in the service layer.
type Workstream struct {
	ID           string
	AnonymizedID string

	Name             string
	Description      string
	Status           WorkstreamStatus
	Priority         WorkstreamPriority
	EstimatedHours   float64
	ActualHours      float64
	CompletionPct    float64
	StartDate        *time.Time
	EndDate          *time.Time
	AssignedProfiles []string
	Dependencies     []string
	Tags             []string
}

func (w *Workstream) Kind() EntityKind { return KindWorkstream }
func (w *Workstream) Key() string      { return w.ID }
func (w *Workstream) Token() string    { return w.AnonymizedID }

// Validate checks required fields and numeric ranges.
func (w *Workstream) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("workstream name is required")
	}
	if w.Status != "" && !ValidWorkstreamStatuses[string(w.Status)] {
		return fmt.Errorf("invalid workstream status %q", w.Status)
	}
	if w.EstimatedHours < 0 {
		return fmt.Errorf("estimated hours must not be negative, got %v", w.EstimatedHours)
	}
	if w.CompletionPct < 0 || w.CompletionPct > 100 {
		return fmt.Errorf("completion percentage must be between 0 and 100, got %v", w.CompletionPct)
	}
	for _, dep := range w.Dependencies {
		if dep == w.ID && w.ID != "" {
			return fmt.Errorf("workstream %q cannot depend on itself", w.ID)
		}
	}
	return nil
}
