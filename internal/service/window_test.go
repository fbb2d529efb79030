package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestResolveWindowWeekDaily(t *testing.T) {
	spec := resolveWindow(testNow, PeriodWeek, "")

	require.Equal(t, PeriodWeek, spec.Period)
	require.Equal(t, GranularityDaily, spec.Granularity)
	require.Equal(t, testNow.AddDate(0, 0, -7), spec.Start)
	require.Len(t, spec.Labels, 7)
	require.Equal(t, "2026-03-09", spec.Labels[0])
	require.Equal(t, "2026-03-15", spec.Labels[6])
}

func TestResolveWindowMonthDailyRespectsMonthLength(t *testing.T) {
	spec := resolveWindow(testNow, PeriodMonth, GranularityDaily)

	// February 2026 has 28 days, so a mid-March window spans 28 calendar days.
	require.Len(t, spec.Labels, 28)
	require.Equal(t, "2026-02-16", spec.Labels[0])
	require.Equal(t, "2026-03-15", spec.Labels[27])

	july := time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)
	spec = resolveWindow(july, PeriodMonth, GranularityDaily)
	require.Len(t, spec.Labels, 31)
}

func TestResolveWindowMonthWeekly(t *testing.T) {
	spec := resolveWindow(testNow, PeriodMonth, GranularityWeekly)

	require.Equal(t, []string{"Week 1", "Week 2", "Week 3", "Week 4"}, spec.Labels)
	// The newest block must end exactly at the window end.
	require.True(t, spec.ends[len(spec.ends)-1].Equal(testNow))
}

func TestResolveWindowWeekMonthly(t *testing.T) {
	spec := resolveWindow(testNow, PeriodWeek, GranularityMonthly)

	// A week inside a single month still gets one bucket covering it.
	require.Equal(t, []string{"Mar"}, spec.Labels)
	require.True(t, spec.starts[0].Equal(spec.Start))
	require.Equal(t, 0, spec.bucketIndex(testNow.AddDate(0, 0, -3)))
	require.Equal(t, 0, spec.bucketIndex(testNow))

	// A week straddling a month boundary gets both months.
	april := time.Date(2026, time.April, 3, 10, 30, 0, 0, time.UTC)
	spec = resolveWindow(april, PeriodWeek, GranularityMonthly)
	require.Equal(t, []string{"Mar", "Apr"}, spec.Labels)
}

func TestResolveWindowMonthMonthly(t *testing.T) {
	spec := resolveWindow(testNow, PeriodMonth, GranularityMonthly)

	require.Equal(t, []string{"Feb", "Mar"}, spec.Labels)
	require.True(t, spec.starts[0].Equal(spec.Start))

	// Completions in the clamped leading month land in its bucket.
	require.Equal(t, 0, spec.bucketIndex(time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, 1, spec.bucketIndex(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)))
	require.Equal(t, -1, spec.bucketIndex(time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)))
}

func TestResolveWindowYearMonthly(t *testing.T) {
	spec := resolveWindow(testNow, PeriodYear, "")

	require.Equal(t, GranularityMonthly, spec.Granularity)
	require.Len(t, spec.Labels, 12)
	require.Equal(t, "Apr", spec.Labels[0])
	require.Equal(t, "Mar", spec.Labels[11])

	// The fragment of the starting month that falls before the 12-month cap
	// is outside the schema.
	require.Equal(t, -1, spec.bucketIndex(testNow.AddDate(-1, 0, 3)))
}

func TestResolveWindowDefaultsUnrecognizedKeywords(t *testing.T) {
	spec := resolveWindow(testNow, "quarterly", "hourly")

	require.Equal(t, PeriodMonth, spec.Period)
	require.Equal(t, GranularityDaily, spec.Granularity)
}

func TestBucketIndexSharedBoundaries(t *testing.T) {
	spec := resolveWindow(testNow, PeriodWeek, GranularityDaily)

	require.Equal(t, 6, spec.bucketIndex(testNow))
	require.Equal(t, 0, spec.bucketIndex(time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)))

	// The partial day between the window start and the first full bucket is
	// outside the schema.
	require.Equal(t, -1, spec.bucketIndex(spec.Start.Add(time.Hour)))
	require.Equal(t, -1, spec.bucketIndex(testNow.AddDate(0, 0, 1)))
}

func TestBucketIndexAdmitsWindowEnd(t *testing.T) {
	spec := resolveWindow(testNow, PeriodMonth, GranularityWeekly)

	require.Equal(t, 3, spec.bucketIndex(testNow))
	require.Equal(t, 0, spec.bucketIndex(testNow.AddDate(0, 0, -27)))
	require.Equal(t, -1, spec.bucketIndex(testNow.AddDate(0, 0, -29)))
}
