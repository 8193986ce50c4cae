package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/trackveil/internal/aggregate"
	"github.com/alexanderramin/trackveil/internal/domain"
	"github.com/alexanderramin/trackveil/internal/testutil"
)

func TestTrendDailyBuckets(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(2)), testutil.WithHours(4)),
		testutil.NewTestTimesheet("bob", "ws-a", testutil.WithDate(day(2)), testutil.WithHours(2)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(3)), testutil.WithHours(8)),
	}

	analysis, err := aggregate.Trend(entries, aggregate.TrendDaily)
	require.NoError(t, err)

	require.Len(t, analysis.Points, 2)
	assert.Equal(t, domain.TrendPoint{Bucket: "2026-03-02", Hours: 6}, analysis.Points[0])
	assert.Equal(t, domain.TrendPoint{Bucket: "2026-03-03", Hours: 8}, analysis.Points[1])
	assert.Equal(t, 14.0, analysis.Total)
	assert.Equal(t, 7.0, analysis.Average)
}

func TestTrendWeeklyUsesISOWeeks(t *testing.T) {
	// 2026-03-02 is a Monday; the previous entry falls in the prior ISO week.
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(1)), testutil.WithHours(3)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(2)), testutil.WithHours(5)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(6)), testutil.WithHours(1)),
	}

	analysis, err := aggregate.Trend(entries, aggregate.TrendWeekly)
	require.NoError(t, err)

	require.Len(t, analysis.Points, 2)
	assert.Equal(t, domain.TrendPoint{Bucket: "2026-W09", Hours: 3}, analysis.Points[0])
	assert.Equal(t, domain.TrendPoint{Bucket: "2026-W10", Hours: 6}, analysis.Points[1])
}

func TestTrendMonthlyBuckets(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a",
			testutil.WithDate(time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)), testutil.WithHours(2)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(2)), testutil.WithHours(4)),
	}

	analysis, err := aggregate.Trend(entries, aggregate.TrendMonthly)
	require.NoError(t, err)

	require.Len(t, analysis.Points, 2)
	assert.Equal(t, "2026-02", analysis.Points[0].Bucket)
	assert.Equal(t, "2026-03", analysis.Points[1].Bucket)
}

func TestTrendUnknownPeriod(t *testing.T) {
	_, err := aggregate.Trend(nil, "hourly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trend period")
}

func TestTrendEmptyEntries(t *testing.T) {
	analysis, err := aggregate.Trend(nil, aggregate.TrendWeekly)
	require.NoError(t, err)

	assert.Empty(t, analysis.Points)
	assert.Zero(t, analysis.Total)
	assert.Zero(t, analysis.Average)
}
