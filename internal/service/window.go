package service

import (
	"strconv"
	"strings"
	"time"
)

// Reporting periods accepted by the analytics endpoint.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Bucket granularities. Granularity is independent of period; each period only
// supplies a default.
const (
	GranularityDaily   = "daily"
	GranularityWeekly  = "weekly"
	GranularityMonthly = "monthly"
)

// windowSpec describes the resolved reporting window: its bounds and the
// ordered bucket schema events are counted into. Bucket i covers
// [starts[i], ends[i]); the final bucket additionally admits the window end.
type windowSpec struct {
	Period      string
	Granularity string
	Start       time.Time
	End         time.Time
	Labels      []string
	starts      []time.Time
	ends        []time.Time
}

// bucketIndex assigns a timestamp to its bucket, or -1 when it falls outside
// the schema. The same function builds and consumes the schema so boundary
// rounding cannot diverge between the two.
func (w windowSpec) bucketIndex(t time.Time) int {
	for i := range w.starts {
		if !t.Before(w.starts[i]) && t.Before(w.ends[i]) {
			return i
		}
	}
	if len(w.ends) > 0 && t.Equal(w.End) {
		return len(w.ends) - 1
	}
	return -1
}

// resolveWindow converts a period keyword and granularity hint into a concrete
// window. Unrecognized keywords fall back to defaults and never fail the
// request. All boundaries come from calendar arithmetic so variable month
// lengths are respected.
func resolveWindow(now time.Time, period, granularity string) windowSpec {
	period = strings.ToLower(strings.TrimSpace(period))
	switch period {
	case PeriodWeek, PeriodMonth, PeriodYear:
	default:
		period = PeriodMonth
	}

	var start time.Time
	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}

	granularity = strings.ToLower(strings.TrimSpace(granularity))
	switch granularity {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
	default:
		if period == PeriodYear {
			granularity = GranularityMonthly
		} else {
			granularity = GranularityDaily
		}
	}

	spec := windowSpec{
		Period:      period,
		Granularity: granularity,
		Start:       start,
		End:         now,
	}

	switch granularity {
	case GranularityWeekly:
		buildWeeklyBuckets(&spec)
	case GranularityMonthly:
		buildMonthlyBuckets(&spec)
	default:
		buildDailyBuckets(&spec)
	}

	return spec
}

// buildDailyBuckets emits one bucket per calendar day, newest day last. The
// first full day after the window start opens the schema, so the count matches
// the calendar length of the window (7 for a week, 28-31 for a month).
func buildDailyBuckets(spec *windowSpec) {
	first := startOfDay(spec.Start.AddDate(0, 0, 1))
	last := startOfDay(spec.End)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		spec.Labels = append(spec.Labels, day.Format("2006-01-02"))
		spec.starts = append(spec.starts, day)
		spec.ends = append(spec.ends, day.AddDate(0, 0, 1))
	}
}

// buildWeeklyBuckets emits 7-day blocks counting back from the window end;
// "Week 1" is the oldest block, the last block ends at now.
func buildWeeklyBuckets(spec *windowSpec) {
	days := int(spec.End.Sub(spec.Start).Hours() / 24)
	blocks := days / 7
	if blocks < 1 {
		blocks = 1
	}

	for i := 0; i < blocks; i++ {
		blockStart := spec.End.AddDate(0, 0, -7*(blocks-i))
		spec.Labels = append(spec.Labels, "Week "+strconv.Itoa(i+1))
		spec.starts = append(spec.starts, blockStart)
		spec.ends = append(spec.ends, blockStart.AddDate(0, 0, 7))
	}
}

// buildMonthlyBuckets emits one bucket per calendar month the window touches,
// labeled by the three-letter month abbreviation, oldest first. The first
// bucket is clamped to the window start. Month labels repeat after a year, so
// the schema is capped at the 12 most recent months to keep labels unique.
func buildMonthlyBuckets(spec *windowSpec) {
	first := startOfMonth(spec.Start)
	last := startOfMonth(spec.End)
	if earliest := last.AddDate(0, -11, 0); first.Before(earliest) {
		first = earliest
	}

	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		bucketStart := month
		if bucketStart.Before(spec.Start) {
			bucketStart = spec.Start
		}
		spec.Labels = append(spec.Labels, month.Format("Jan"))
		spec.starts = append(spec.starts, bucketStart)
		spec.ends = append(spec.ends, month.AddDate(0, 1, 0))
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
