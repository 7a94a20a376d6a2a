package service

import (
	"sort"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
)

// MainSeriesLookup resolves, per program session, the main-series
// index of each prescribed exercise. A performance entry is a "main"
// set iff its series number equals that index for the exercise of the
// same name in its owning session.
type MainSeriesLookup map[string]map[string]int

func BuildMainSeriesLookup(sessions []model.ProgramSession) MainSeriesLookup {
	lookup := make(MainSeriesLookup, len(sessions))
	for _, session := range sessions {
		byExercise := make(map[string]int)
		for _, entry := range session.Exercises {
			if entry.MainSeries != nil {
				byExercise[entry.Name] = *entry.MainSeries
			}
		}
		lookup[session.ID.String()] = byExercise
	}
	return lookup
}

func (l MainSeriesLookup) isMain(entry model.PerformanceEntry) bool {
	if entry.ProgramSessionID == nil || entry.SeriesNumber == nil {
		return false
	}
	byExercise, ok := l[entry.ProgramSessionID.String()]
	if !ok {
		return false
	}
	main, ok := byExercise[entry.Exercise]
	return ok && main == *entry.SeriesNumber
}

// SummarizeSessionDay aggregates one day's work on one session. Sets
// are counted from entries carrying a series number; missing reps or
// load contribute 0 to the sums, they never drop the entry.
func SummarizeSessionDay(date string, entries []model.PerformanceEntry) dto.SessionDaySummary {
	summary := dto.SessionDaySummary{Date: date}

	for _, e := range entries {
		if e.SeriesNumber != nil {
			summary.TotalSets++
		}
		summary.TotalReps += floatOrZero(e.Reps)
		summary.TotalVolume += floatOrZero(e.Reps) * floatOrZero(e.Load)
	}

	return summary
}

// BuildExerciseSeries groups the athlete's log by exercise and date,
// splitting main sets from accessory work. The main bucket emits the
// first entry logged per date (duplicates are ignored, not averaged);
// the other bucket emits per-date means. Entries must arrive in
// ascending (entry_date, created_at) order.
func BuildExerciseSeries(entries []model.PerformanceEntry, lookup MainSeriesLookup) map[string]dto.ExerciseSeries {
	type dayBuckets struct {
		main  []model.PerformanceEntry
		other []model.PerformanceEntry
	}

	byExercise := make(map[string]map[string]*dayBuckets)
	for _, e := range entries {
		date := dateOnly(e.EntryDate).Format(dateLayout)

		byDate, ok := byExercise[e.Exercise]
		if !ok {
			byDate = make(map[string]*dayBuckets)
			byExercise[e.Exercise] = byDate
		}
		buckets, ok := byDate[date]
		if !ok {
			buckets = &dayBuckets{}
			byDate[date] = buckets
		}

		if lookup.isMain(e) {
			buckets.main = append(buckets.main, e)
		} else {
			buckets.other = append(buckets.other, e)
		}
	}

	out := make(map[string]dto.ExerciseSeries, len(byExercise))
	for exercise, byDate := range byExercise {
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		series := dto.ExerciseSeries{Main: []dto.MainPoint{}, Other: []dto.OtherPoint{}}
		for _, date := range dates {
			buckets := byDate[date]

			if len(buckets.main) > 0 {
				first := buckets.main[0]
				series.Main = append(series.Main, dto.MainPoint{
					Date: date,
					Reps: first.Reps,
					Load: first.Load,
				})
			}

			if n := len(buckets.other); n > 0 {
				var sumLoad, sumReps float64
				for _, e := range buckets.other {
					sumLoad += floatOrZero(e.Load)
					sumReps += floatOrZero(e.Reps)
				}
				series.Other = append(series.Other, dto.OtherPoint{
					Date:    date,
					AvgLoad: sumLoad / float64(n),
					AvgReps: sumReps / float64(n),
					Count:   n,
				})
			}
		}

		out[exercise] = series
	}

	return out
}

// TonnageByMuscle accumulates reps×load per muscle group per date.
// Only entries with both reps and load count; exercises absent from
// the bank are excluded entirely, not zero-filled.
func TonnageByMuscle(entries []model.PerformanceEntry, muscles map[string]model.MuscleGroup) map[string][]dto.TonnagePoint {
	totals := make(map[string]map[string]float64)

	for _, e := range entries {
		if e.Reps == nil || e.Load == nil {
			continue
		}
		group, ok := muscles[e.Exercise]
		if !ok {
			continue
		}

		date := dateOnly(e.EntryDate).Format(dateLayout)
		byDate, ok := totals[string(group)]
		if !ok {
			byDate = make(map[string]float64)
			totals[string(group)] = byDate
		}
		byDate[date] += *e.Reps * *e.Load
	}

	out := make(map[string][]dto.TonnagePoint, len(totals))
	for group, byDate := range totals {
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		points := make([]dto.TonnagePoint, 0, len(dates))
		for _, date := range dates {
			points = append(points, dto.TonnagePoint{Date: date, Tonnage: byDate[date]})
		}
		out[group] = points
	}

	return out
}

// BuildWeekOverWeek compares the current Monday-anchored week with the
// previous one. Journal metric means exclude null values from both
// numerator and denominator, and a diff stays null when either week
// has no usable values. Tonnage diffs instead default both operands
// to 0 so a muscle trained in only one week still yields a number.
func BuildWeekOverWeek(
	weekStart string,
	prevWeekStart string,
	journalCur, journalPrev []model.JournalEntry,
	perfCur, perfPrev []model.PerformanceEntry,
	muscles map[string]model.MuscleGroup,
) dto.WeekOverWeekSummary {
	summary := dto.WeekOverWeekSummary{
		WeekStart:     weekStart,
		PrevWeekStart: prevWeekStart,
		Weight:        metricDiff(journalCur, journalPrev, func(j model.JournalEntry) *float64 { return j.Weight }),
		Kcals:         metricDiff(journalCur, journalPrev, func(j model.JournalEntry) *float64 { return intAsFloat(j.Kcals) }),
		WaterML:       metricDiff(journalCur, journalPrev, func(j model.JournalEntry) *float64 { return j.WaterML }),
		SleepHours:    metricDiff(journalCur, journalPrev, func(j model.JournalEntry) *float64 { return j.SleepHours }),
		Tonnage:       map[string]dto.TonnageDiff{},
	}

	cur := weeklyTonnage(perfCur, muscles)
	prev := weeklyTonnage(perfPrev, muscles)
	for group := range cur {
		summary.Tonnage[group] = dto.TonnageDiff{
			Current:  cur[group],
			Previous: prev[group],
			Diff:     cur[group] - prev[group],
		}
	}
	for group := range prev {
		if _, ok := summary.Tonnage[group]; !ok {
			summary.Tonnage[group] = dto.TonnageDiff{
				Current:  0,
				Previous: prev[group],
				Diff:     -prev[group],
			}
		}
	}

	return summary
}

func metricDiff(cur, prev []model.JournalEntry, value func(model.JournalEntry) *float64) dto.MetricDiff {
	diff := dto.MetricDiff{
		Current:  meanOf(cur, value),
		Previous: meanOf(prev, value),
	}
	if diff.Current != nil && diff.Previous != nil {
		d := *diff.Current - *diff.Previous
		diff.Diff = &d
	}
	return diff
}

// meanOf averages the non-null values; it returns nil, not 0, when no
// entry carries the metric.
func meanOf(entries []model.JournalEntry, value func(model.JournalEntry) *float64) *float64 {
	var sum float64
	var count int
	for _, e := range entries {
		if v := value(e); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float64(count)
	return &mean
}

func weeklyTonnage(entries []model.PerformanceEntry, muscles map[string]model.MuscleGroup) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		if e.Reps == nil || e.Load == nil {
			continue
		}
		group, ok := muscles[e.Exercise]
		if !ok {
			continue
		}
		totals[string(group)] += *e.Reps * *e.Load
	}
	return totals
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intAsFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
