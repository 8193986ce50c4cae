package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/trackveil/internal/domain"
)

var fixtureCounter atomic.Int64

func nextName(prefix string) string {
	return fmt.Sprintf("%s %02d", prefix, fixtureCounter.Add(1))
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithProfileID(id string) ProfileOption {
	return func(p *domain.Profile) {
		p.ID = id
	}
}

func WithHourlyRate(rate float64) ProfileOption {
	return func(p *domain.Profile) {
		p.HourlyRate = rate
	}
}

func WithUtilizationTarget(target float64) ProfileOption {
	return func(p *domain.Profile) {
		p.UtilizationTarget = target
	}
}

func WithProfileWorkstreams(ids ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Workstreams = ids
	}
}

func WithAllocatedHours(alloc map[string]float64) ProfileOption {
	return func(p *domain.Profile) {
		p.AllocatedHours = alloc
	}
}

func WithSkills(skills ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Skills = skills
	}
}

func NewTestProfile(opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		ID:                uuid.New().String(),
		Name:              nextName("Profile"),
		Role:              "engineer",
		HourlyRate:        100,
		DailyRate:         800,
		UtilizationTarget: 0.8,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workstream options
type WorkstreamOption func(*domain.Workstream)

func WithWorkstreamID(id string) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.ID = id
	}
}

func WithWorkstreamStatus(s domain.WorkstreamStatus) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.Status = s
	}
}

func WithEstimatedHours(h float64) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.EstimatedHours = h
	}
}

func WithDependencies(ids ...string) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.Dependencies = ids
	}
}

func WithAssignedProfiles(ids ...string) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.AssignedProfiles = ids
	}
}

func WithTags(tags ...string) WorkstreamOption {
	return func(w *domain.Workstream) {
		w.Tags = tags
	}
}

func NewTestWorkstream(opts ...WorkstreamOption) *domain.Workstream {
	w := &domain.Workstream{
		ID:             uuid.New().String(),
		Name:           nextName("Workstream"),
		Description:    "fixture workstream",
		Status:         domain.WorkstreamInProgress,
		Priority:       domain.PriorityMedium,
		EstimatedHours: 100,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Timesheet options
type TimesheetOption func(*domain.TimesheetEntry)

func WithTimesheetID(id string) TimesheetOption {
	return func(t *domain.TimesheetEntry) {
		t.ID = id
	}
}

func WithDate(d time.Time) TimesheetOption {
	return func(t *domain.TimesheetEntry) {
		t.Date = d
	}
}

func WithHours(h float64) TimesheetOption {
	return func(t *domain.TimesheetEntry) {
		t.Hours = h
	}
}

func WithApprovalStatus(s domain.ApprovalStatus) TimesheetOption {
	return func(t *domain.TimesheetEntry) {
		t.ApprovalStatus = s
	}
}

func WithNotes(notes string) TimesheetOption {
	return func(t *domain.TimesheetEntry) {
		t.Notes = notes
	}
}

func NewTestTimesheet(userID, workstreamID string, opts ...TimesheetOption) *domain.TimesheetEntry {
	t := &domain.TimesheetEntry{
		ID:             uuid.New().String(),
		Date:           time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		UserID:         userID,
		WorkstreamID:   workstreamID,
		Hours:          8,
		ApprovalStatus: domain.ApprovalOpen,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Budget options
type BudgetOption func(*domain.BudgetEntry)

func WithBudgetID(id string) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.ID = id
	}
}

func WithBudgetProfile(profileID string) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.ProfileID = profileID
	}
}

func WithBudgetType(t domain.BudgetType) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.Type = t
	}
}

func WithBudgetPeriod(p domain.BudgetPeriod) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.Period = p
	}
}

func WithPlanned(hours, amount float64) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.PlannedHours = hours
		b.PlannedAmount = amount
	}
}

func WithActual(hours, amount float64) BudgetOption {
	return func(b *domain.BudgetEntry) {
		b.ActualHours = hours
		b.ActualAmount = amount
	}
}

func NewTestBudget(workstreamID string, opts ...BudgetOption) *domain.BudgetEntry {
	now := time.Now().UTC()
	b := &domain.BudgetEntry{
		ID:            uuid.New().String(),
		WorkstreamID:  workstreamID,
		Type:          domain.BudgetLabor,
		Period:        domain.PeriodMonthly,
		StartDate:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		PlannedHours:  100,
		PlannedAmount: 10000,
		Status:        domain.BudgetDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Forecast options
type ForecastOption func(*domain.BudgetForecast)

func WithForecastID(id string) ForecastOption {
	return func(f *domain.BudgetForecast) {
		f.ID = id
	}
}

func WithForecast(hours, amount float64) ForecastOption {
	return func(f *domain.BudgetForecast) {
		f.ForecastHours = hours
		f.ForecastAmount = amount
	}
}

func WithConfidence(level float64) ForecastOption {
	return func(f *domain.BudgetForecast) {
		f.ConfidenceLevel = level
	}
}

func WithAssumptions(assumptions ...string) ForecastOption {
	return func(f *domain.BudgetForecast) {
		f.Assumptions = assumptions
	}
}

func NewTestForecast(workstreamID string, opts ...ForecastOption) *domain.BudgetForecast {
	now := time.Now().UTC()
	f := &domain.BudgetForecast{
		ID:              uuid.New().String(),
		WorkstreamID:    workstreamID,
		Period:          domain.PeriodMonthly,
		StartDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		ForecastHours:   80,
		ForecastAmount:  8000,
		ConfidenceLevel: 0.7,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
