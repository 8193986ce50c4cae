package aggregate

import (
	"github.com/alexanderramin/trackveil/internal/domain"
)

// Dashboard joins workstreams, profiles, timesheets and budgets into
// project-level totals. Each workstream's hourly rate comes from its budget
// entries (planned amount over planned hours); workstreams with no budget
// rate cost zero. Missing optional fields count as zero rather than failing.
func Dashboard(workstreams []*domain.Workstream, profiles []*domain.Profile, entries []*domain.TimesheetEntry, budgets []*domain.BudgetEntry) *domain.DashboardRollup {
	rates := budgetRates(budgets)
	plannedHours := make(map[string]float64)
	for _, b := range budgets {
		plannedHours[b.WorkstreamID] += b.PlannedHours
	}
	loggedHours := make(map[string]float64)
	for _, e := range entries {
		loggedHours[e.WorkstreamID] += e.Hours
	}

	rollup := &domain.DashboardRollup{
		ProfileCount:     len(profiles),
		WorkstreamCount:  len(workstreams),
		TimesheetEntries: len(entries),
	}

	var totalEstimated float64
	for _, w := range workstreams {
		key := rollupKey(w)
		rate := rates[key]
		logged := loggedHours[key]

		ws := domain.WorkstreamRollup{
			WorkstreamID: key,
			Name:         w.Name,
			Status:       w.Status,
			BudgetAmount: plannedHours[key] * rate,
			SpentAmount:  logged * rate,
			HoursLogged:  logged,
		}
		ws.RemainingAmount = ws.BudgetAmount - ws.SpentAmount
		if w.EstimatedHours > 0 {
			ws.ProgressPct = logged / w.EstimatedHours * 100
		}

		rollup.Workstreams = append(rollup.Workstreams, ws)
		rollup.TotalBudget += ws.BudgetAmount
		rollup.TotalSpent += ws.SpentAmount
		rollup.TotalHours += logged
		totalEstimated += w.EstimatedHours
	}

	if totalEstimated > 0 {
		rollup.OverallProgress = rollup.TotalHours / totalEstimated * 100
	}
	for _, p := range profiles {
		if p.UtilizationTarget > 0.9 {
			rollup.ResourceRisk = true
			break
		}
	}
	return rollup
}

// budgetRates derives an hourly rate per workstream from its budget entries.
func budgetRates(budgets []*domain.BudgetEntry) map[string]float64 {
	amounts := make(map[string]float64)
	hours := make(map[string]float64)
	for _, b := range budgets {
		amounts[b.WorkstreamID] += b.PlannedAmount
		hours[b.WorkstreamID] += b.PlannedHours
	}
	rates := make(map[string]float64, len(amounts))
	for ws, amount := range amounts {
		if h := hours[ws]; h > 0 {
			rates[ws] = amount / h
		}
	}
	return rates
}

// rollupKey matches a workstream against timesheet and budget references. In
// the public partition records carry no original id, so the anonymized id is
// the shared key there.
func rollupKey(w *domain.Workstream) string {
	if w.ID != "" {
		return w.ID
	}
	return w.AnonymizedID
}
