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

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeSummaryTotalsAndBreakdowns(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a",
			testutil.WithHours(4), testutil.WithApprovalStatus(domain.ApprovalApproved)),
		testutil.NewTestTimesheet("bob", "ws-a",
			testutil.WithHours(4), testutil.WithApprovalStatus(domain.ApprovalOpen)),
		testutil.NewTestTimesheet("alice", "ws-b",
			testutil.WithHours(2), testutil.WithApprovalStatus(domain.ApprovalApproved)),
	}

	summary, err := aggregate.TimeSummary(entries, nil, aggregate.TimeFilter{})
	require.NoError(t, err)

	assert.Equal(t, 10.0, summary.TotalHours)
	assert.Equal(t, 6.0, summary.ApprovedHours)
	assert.Equal(t, 4.0, summary.PendingHours)
	assert.Equal(t, map[string]float64{"ws-a": 8, "ws-b": 2}, summary.ByWorkstream)
	assert.Equal(t, map[string]float64{"alice": 6, "bob": 4}, summary.ByUser)
	assert.Empty(t, summary.UnresolvedWorkstreams)
}

func TestTimeSummarySubmittedAndRejectedArePending(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a",
			testutil.WithHours(3), testutil.WithApprovalStatus(domain.ApprovalSubmitted)),
		testutil.NewTestTimesheet("alice", "ws-a",
			testutil.WithHours(2), testutil.WithApprovalStatus(domain.ApprovalRejected)),
	}

	summary, err := aggregate.TimeSummary(entries, nil, aggregate.TimeFilter{})
	require.NoError(t, err)

	assert.Equal(t, 5.0, summary.TotalHours)
	assert.Zero(t, summary.ApprovedHours)
	assert.Equal(t, 5.0, summary.PendingHours)
}

func TestTimeSummaryDateBoundsAreInclusive(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(1)), testutil.WithHours(1)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(5)), testutil.WithHours(2)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(10)), testutil.WithHours(4)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(11)), testutil.WithHours(8)),
	}

	summary, err := aggregate.TimeSummary(entries, nil, aggregate.TimeFilter{
		Start: "2026-03-05",
		End:   "2026-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 6.0, summary.TotalHours)
	assert.Equal(t, [2]string{"2026-03-05", "2026-03-10"}, summary.DateRange)
}

func TestTimeSummaryOpenEndedFilter(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(1)), testutil.WithHours(1)),
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithDate(day(20)), testutil.WithHours(2)),
	}

	summary, err := aggregate.TimeSummary(entries, nil, aggregate.TimeFilter{Start: "2026-03-10"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, summary.TotalHours)

	summary, err = aggregate.TimeSummary(entries, nil, aggregate.TimeFilter{End: "2026-03-10"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.TotalHours)
}

func TestTimeSummaryRejectsMalformedDates(t *testing.T) {
	_, err := aggregate.TimeSummary(nil, nil, aggregate.TimeFilter{Start: "03/05/2026"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing start date")

	_, err = aggregate.TimeSummary(nil, nil, aggregate.TimeFilter{End: "not-a-date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing end date")
}

func TestTimeSummaryOrphanWorkstreamRefs(t *testing.T) {
	entries := []*domain.TimesheetEntry{
		testutil.NewTestTimesheet("alice", "ws-a", testutil.WithHours(4)),
		testutil.NewTestTimesheet("alice", "ws-gone", testutil.WithHours(2)),
		testutil.NewTestTimesheet("bob", "ws-also-gone", testutil.WithHours(1)),
	}
	known := map[string]bool{"ws-a": true}

	summary, err := aggregate.TimeSummary(entries, known, aggregate.TimeFilter{})
	require.NoError(t, err)

	// Orphan hours stay in the total but never enter the breakdown.
	assert.Equal(t, 7.0, summary.TotalHours)
	assert.Equal(t, map[string]float64{"ws-a": 4}, summary.ByWorkstream)
	assert.Equal(t, []string{"ws-also-gone", "ws-gone"}, summary.UnresolvedWorkstreams)
}

func TestTimeSummaryEmptyInput(t *testing.T) {
	summary, err := aggregate.TimeSummary(nil, nil, aggregate.TimeFilter{})
	require.NoError(t, err)

	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.PendingHours)
	assert.Empty(t, summary.ByWorkstream)
	assert.Empty(t, summary.ByUser)
}
