package dto

import (
	"github.com/google/uuid"
)

type PerformanceEntryInput struct {
	EntryDate        string     `json:"entry_date"`
	ProgramSessionID *uuid.UUID `json:"program_session_id"`
	Exercise         string     `json:"exercise" binding:"required"`
	SeriesNumber     *int       `json:"series_number"`
	Reps             *float64   `json:"reps"`
	Load             *float64   `json:"load"`
	Notes            *string    `json:"notes"`
}

// SessionDaySummary aggregates one day of logged work for a session.
type SessionDaySummary struct {
	Date        string  `json:"date"`
	TotalSets   int     `json:"total_sets"`
	TotalReps   float64 `json:"total_reps"`
	TotalVolume float64 `json:"total_volume"`
}

// MainPoint is one date of the "main series" progression of an
// exercise: the reference set logged that day.
type MainPoint struct {
	Date string   `json:"date"`
	Reps *float64 `json:"reps"`
	Load *float64 `json:"load"`
}

// OtherPoint averages the accessory (non-main) sets of one date.
type OtherPoint struct {
	Date    string  `json:"date"`
	AvgLoad float64 `json:"avg_load"`
	AvgReps float64 `json:"avg_reps"`
	Count   int     `json:"count"`
}

type ExerciseSeries struct {
	Main  []MainPoint  `json:"main"`
	Other []OtherPoint `json:"other"`
}

type TonnagePoint struct {
	Date    string  `json:"date"`
	Tonnage float64 `json:"tonnage"`
}

// MetricDiff compares one journal metric across two weeks. Diff is
// null whenever either week has no usable values, never coerced to 0.
type MetricDiff struct {
	Current  *float64 `json:"current"`
	Previous *float64 `json:"previous"`
	Diff     *float64 `json:"diff"`
}

// TonnageDiff compares weekly tonnage for one muscle group. Unlike
// journal metrics, a week with no entries counts as 0 so the diff is
// always defined.
type TonnageDiff struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
	Diff     float64 `json:"diff"`
}

type WeekOverWeekSummary struct {
	WeekStart     string                 `json:"week_start"`
	PrevWeekStart string                 `json:"prev_week_start"`
	Weight        MetricDiff             `json:"weight"`
	Kcals         MetricDiff             `json:"kcals"`
	WaterML       MetricDiff             `json:"water_ml"`
	SleepHours    MetricDiff             `json:"sleep_hours"`
	Tonnage       map[string]TonnageDiff `json:"tonnage"`
}
