package aggregate

import (
	"github.com/alexanderramin/trackveil/internal/domain"
)

// BudgetSummary rolls up budget entries and forecasts for one workstream.
// The caller is expected to pass entries already scoped to workstreamID.
// Variance is actual minus planned; the percentage guards against a zero
// planned total. Entries without a profile id are skipped in the by-profile
// breakdown only.
func BudgetSummary(workstreamID string, budgets []*domain.BudgetEntry, forecasts []*domain.BudgetForecast) *domain.BudgetSummary {
	summary := &domain.BudgetSummary{
		WorkstreamID: workstreamID,
		ByPeriod:     make(map[domain.BudgetPeriod]domain.BudgetBreakdown),
		ByProfile:    make(map[string]domain.BudgetBreakdown),
		ByType:       make(map[domain.BudgetType]domain.BudgetBreakdown),
	}

	for _, b := range budgets {
		summary.TotalBudget += b.PlannedAmount
		summary.TotalActual += b.ActualAmount

		period := summary.ByPeriod[b.Period]
		period.Planned += b.PlannedAmount
		period.Actual += b.ActualAmount
		summary.ByPeriod[b.Period] = period

		if b.ProfileID != "" {
			profile := summary.ByProfile[b.ProfileID]
			profile.Planned += b.PlannedAmount
			profile.Actual += b.ActualAmount
			summary.ByProfile[b.ProfileID] = profile
		}

		typ := summary.ByType[b.Type]
		typ.Planned += b.PlannedAmount
		typ.Actual += b.ActualAmount
		summary.ByType[b.Type] = typ
	}

	for _, f := range forecasts {
		summary.TotalForecast += f.ForecastAmount
	}

	summary.Variance = summary.TotalActual - summary.TotalBudget
	if summary.TotalBudget != 0 {
		summary.VariancePct = summary.Variance / summary.TotalBudget * 100
	}
	return summary
}
