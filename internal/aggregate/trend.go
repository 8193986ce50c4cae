package aggregate

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/trackveil/internal/domain"
)

// Trend periods.
const (
	TrendDaily   = "daily"
	TrendWeekly  = "weekly"
	TrendMonthly = "monthly"
)

// Trend buckets logged hours over time. Weekly buckets follow ISO weeks.
// The average is hours per non-empty bucket.
func Trend(entries []*domain.TimesheetEntry, period string) (*domain.TrendAnalysis, error) {
	switch period {
	case TrendDaily, TrendWeekly, TrendMonthly:
	default:
		return nil, fmt.Errorf("unknown trend period %q", period)
	}

	buckets := make(map[string]float64)
	for _, e := range entries {
		var key string
		switch period {
		case TrendDaily:
			key = e.Date.Format(dateLayout)
		case TrendWeekly:
			year, week := e.Date.ISOWeek()
			key = fmt.Sprintf("%04d-W%02d", year, week)
		case TrendMonthly:
			key = e.Date.Format("2006-01")
		}
		buckets[key] += e.Hours
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	analysis := &domain.TrendAnalysis{Period: period}
	for _, k := range keys {
		analysis.Points = append(analysis.Points, domain.TrendPoint{Bucket: k, Hours: buckets[k]})
		analysis.Total += buckets[k]
	}
	if len(analysis.Points) > 0 {
		analysis.Average = analysis.Total / float64(len(analysis.Points))
	}
	return analysis, nil
}
