package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// FormatTimesheetSummary renders hour totals and breakdowns.
func FormatTimesheetSummary(s *domain.TimesheetSummary) string {
	var b strings.Builder

	if s.DateRange[0] != "" || s.DateRange[1] != "" {
		from, to := s.DateRange[0], s.DateRange[1]
		if from == "" {
			from = "beginning"
		}
		if to == "" {
			to = "now"
		}
		fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%s to %s", from, to)))
	}

	fmt.Fprintf(&b, "Total:    %s\n", Bold(Hours(s.TotalHours)))
	fmt.Fprintf(&b, "Approved: %s\n", StyleGreen.Render(Hours(s.ApprovedHours)))
	fmt.Fprintf(&b, "Pending:  %s\n", StyleYellow.Render(Hours(s.PendingHours)))

	if len(s.ByWorkstream) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Header("by workstream"))
		for _, k := range sortedKeys(s.ByWorkstream) {
			fmt.Fprintf(&b, "%-24s %s\n", k, Hours(s.ByWorkstream[k]))
		}
	}
	if len(s.ByUser) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Header("by user"))
		for _, k := range sortedKeys(s.ByUser) {
			fmt.Fprintf(&b, "%-24s %s\n", k, Hours(s.ByUser[k]))
		}
	}
	if len(s.UnresolvedWorkstreams) > 0 {
		fmt.Fprintf(&b, "\n%s %s\n",
			StyleYellow.Render("unresolved workstreams:"),
			Dim(strings.Join(s.UnresolvedWorkstreams, ", ")))
	}
	return b.String()
}

// FormatBudgetSummary renders one workstream's budget rollup.
func FormatBudgetSummary(s *domain.BudgetSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Planned:  %s\n", Money(s.TotalBudget))
	fmt.Fprintf(&b, "Actual:   %s\n", Money(s.TotalActual))
	fmt.Fprintf(&b, "Forecast: %s\n", Dim(Money(s.TotalForecast)))
	fmt.Fprintf(&b, "Variance: %s (%s)\n", VarianceStyled(s.Variance), Pct(s.VariancePct))

	if len(s.ByPeriod) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Header("by period"))
		b.WriteString(breakdownTable(periodKeys(s.ByPeriod), func(k string) domain.BudgetBreakdown {
			return s.ByPeriod[domain.BudgetPeriod(k)]
		}))
	}
	if len(s.ByProfile) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Header("by profile"))
		keys := make([]string, 0, len(s.ByProfile))
		for k := range s.ByProfile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(breakdownTable(keys, func(k string) domain.BudgetBreakdown {
			return s.ByProfile[k]
		}))
	}
	if len(s.ByType) > 0 {
		fmt.Fprintf(&b, "\n%s\n", Header("by type"))
		b.WriteString(breakdownTable(typeKeys(s.ByType), func(k string) domain.BudgetBreakdown {
			return s.ByType[domain.BudgetType(k)]
		}))
	}
	return RenderBox("budget "+s.WorkstreamID, strings.TrimRight(b.String(), "\n"))
}

// FormatTrend renders an hours-over-time series.
func FormatTrend(t *domain.TrendAnalysis) string {
	label := t.Period
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	headers := []string{label, "Hours"}
	rows := make([][]string, 0, len(t.Points))
	for _, p := range t.Points {
		rows = append(rows, []string{p.Bucket, Hours(p.Hours)})
	}
	table := RenderTable(headers, rows)
	return fmt.Sprintf("%s\nTotal: %s  Average: %s\n",
		table, Bold(Hours(t.Total)), Dim(Hours(t.Average)))
}

func breakdownTable(keys []string, get func(string) domain.BudgetBreakdown) string {
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		bd := get(k)
		rows = append(rows, []string{k, Money(bd.Planned), Money(bd.Actual)})
	}
	return RenderTable([]string{"", "Planned", "Actual"}, rows)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func periodKeys(m map[domain.BudgetPeriod]domain.BudgetBreakdown) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

func typeKeys(m map[domain.BudgetType]domain.BudgetBreakdown) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}
