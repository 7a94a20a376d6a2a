package service

import (
	"strconv"
	"strings"

	"coachlab.fr/suivicoach/internal/dto"
	"coachlab.fr/suivicoach/internal/model"
)

// BuildWeek normalizes the flat per-day form rows into sessions with
// ordered exercise entries. A day is dropped when its session name is
// blank and every exercise name is blank. Positions run 0..k-1 over
// the kept rows only, in submission order. Muscle comes from the bank
// by exact name match; a miss leaves it null, it is not an error.
func BuildWeek(days []dto.DayProgramInput, muscles map[string]model.MuscleGroup) []model.ProgramSession {
	var sessions []model.ProgramSession

	for _, day := range days {
		name := strings.TrimSpace(day.SessionName)
		if name == "" && !hasNamedExercise(day.Exercises) {
			continue
		}

		session := model.ProgramSession{
			DayOfWeek:   day.DayOfWeek,
			SessionName: optionalString(name),
		}

		position := 0
		for _, row := range day.Exercises {
			exName := strings.TrimSpace(row.Name)
			if exName == "" {
				continue
			}

			entry := model.ExerciseEntry{
				Position:          position,
				Name:              exName,
				Remark:            optionalString(strings.TrimSpace(row.Remark)),
				SeriesDescription: optionalString(row.SeriesDescription),
				MainSeries:        parseMainSeries(row.MainSeries),
			}
			if group, ok := muscles[exName]; ok {
				muscle := string(group)
				entry.Muscle = &muscle
			}

			session.Exercises = append(session.Exercises, entry)
			position++
		}

		sessions = append(sessions, session)
	}

	return sessions
}

func hasNamedExercise(rows []dto.ExerciseRowInput) bool {
	for _, row := range rows {
		if strings.TrimSpace(row.Name) != "" {
			return true
		}
	}
	return false
}

// parseMainSeries reads the submitted main-series index. Blank or
// non-numeric input yields null rather than an error.
func parseMainSeries(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ParseSeriesDescription splits the free-text series description into
// numbered sets, one non-blank line per set, numbered from 1. The set
// whose number equals mainSeries is flagged as the reference set.
func ParseSeriesDescription(text string, mainSeries *int) []dto.ParsedSet {
	var sets []dto.ParsedSet

	number := 1
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		sets = append(sets, dto.ParsedSet{
			Number: number,
			Text:   line,
			IsMain: mainSeries != nil && *mainSeries == number,
		})
		number++
	}

	return sets
}
