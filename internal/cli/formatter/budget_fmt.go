package formatter

import (
	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatBudgetList renders budget entries as a table.
func FormatBudgetList(budgets []*domain.BudgetEntry) string {
	headers := []string{"ID", "Workstream", "Type", "Period", "Planned", "Actual"}
	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		id := b.ID
		if id == "" {
			id = b.AnonymizedID
		}
		rows = append(rows, []string{
			TruncID(id),
			b.WorkstreamID,
			StylePurple.Render(string(b.Type)),
			Dim(string(b.Period)),
			Money(b.PlannedAmount),
			Money(b.ActualAmount),
		})
	}
	return RenderTable(headers, rows)
}

// FormatForecastList renders forecasts as a table.
func FormatForecastList(forecasts []*domain.BudgetForecast) string {
	headers := []string{"ID", "Workstream", "Period", "Hours", "Amount", "Confidence"}
	rows := make([][]string, 0, len(forecasts))
	for _, f := range forecasts {
		id := f.ID
		if id == "" {
			id = f.AnonymizedID
		}
		rows = append(rows, []string{
			TruncID(id),
			f.WorkstreamID,
			Dim(string(f.Period)),
			Hours(f.ForecastHours),
			Money(f.ForecastAmount),
			Pct(f.ConfidenceLevel * 100),
		})
	}
	return RenderTable(headers, rows)
}
