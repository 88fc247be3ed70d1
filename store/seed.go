package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
)

// seedHabit describes one demo fixture habit.
type seedHabit struct {
	name        string
	periodicity Periodicity
}

var seedHabits = []seedHabit{
	{"Drink Water", PeriodicityDaily},
	{"Workout", PeriodicityWeekly},
	{"Weekly Report", PeriodicityWeekly},
	{"House Cleaning", PeriodicityWeekly},
	{"Budget Review", PeriodicityMonthly},
}

// SeedIfNeeded populates an empty database with the demo fixtures: five
// habits and roughly two months of completion history. Habits that already
// exist are left alone.
//
// The generated history is deterministic relative to now:
//   - Drink Water: ~70% daily coverage plus a guaranteed 10-day streak ending today.
//   - Workout: 6 consecutive weeks (Fridays 08:00), active streak.
//   - Weekly Report: 5 consecutive weeks (Wednesdays 14:20), active streak.
//   - House Cleaning: sporadic Sundays (7, 5 and 3 weeks ago), streak broken.
//   - Budget Review: the two previous firsts of month only, streak broken.
func (s *Store) SeedIfNeeded(ctx context.Context, now time.Time) error {
	count, err := s.CountHabits(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check for existing habits")
	}
	if count > 0 {
		return nil
	}

	now = now.UTC()
	createdTs := now.AddDate(0, 0, -70).Unix()

	ids := make(map[string]int32, len(seedHabits))
	for _, sh := range seedHabits {
		habit, err := s.CreateHabit(ctx, &Habit{
			Name:        sh.name,
			Periodicity: sh.periodicity,
			CreatedTs:   createdTs,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to seed habit %q", sh.name)
		}
		ids[sh.name] = habit.ID
	}

	var timestamps []time.Time

	// Daily habit: fill the last ~62 days skipping every 3rd day, then
	// overwrite the tail with 10 consecutive days ending today.
	windowStart := now.AddDate(0, 0, -62)
	tailStart := startOfDay(now).AddDate(0, 0, -9)
	for d, k := windowStart, 0; !startOfDay(d).After(startOfDay(now)); d, k = d.AddDate(0, 0, 1), k+1 {
		if k%3 == 0 {
			continue
		}
		ts := at(d, 14, 20)
		if !ts.Before(tailStart) {
			continue
		}
		timestamps = append(timestamps, ts)
	}
	for i := 9; i >= 0; i-- {
		timestamps = append(timestamps, at(now.AddDate(0, 0, -i), 14, 20))
	}
	if err := s.seedCompletions(ctx, ids["Drink Water"], timestamps); err != nil {
		return err
	}

	// Active weekly streaks anchored to a fixed weekday.
	if err := s.seedCompletions(ctx, ids["Workout"],
		weeklyAnchors(now, windowStart, time.Friday, 8, 0, []int{5, 4, 3, 2, 1, 0})); err != nil {
		return err
	}
	if err := s.seedCompletions(ctx, ids["Weekly Report"],
		weeklyAnchors(now, windowStart, time.Wednesday, 14, 20, []int{4, 3, 2, 1, 0})); err != nil {
		return err
	}

	// Sporadic weeks with a gap near the present: no current streak.
	if err := s.seedCompletions(ctx, ids["House Cleaning"],
		weeklyAnchors(now, windowStart, time.Sunday, 9, 0, []int{7, 5, 3})); err != nil {
		return err
	}

	// Monthly habit: previous two firsts of month, skipping the current one.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthly := []time.Time{}
	for _, day := range []time.Time{firstOfMonth.AddDate(0, -2, 0), firstOfMonth.AddDate(0, -1, 0)} {
		if !day.Before(windowStart) {
			monthly = append(monthly, day)
		}
	}
	if err := s.seedCompletions(ctx, ids["Budget Review"], monthly); err != nil {
		return err
	}

	slog.Info("seeded demo habits", slog.Int("habits", len(seedHabits)))
	return nil
}

func (s *Store) seedCompletions(ctx context.Context, habitID int32, timestamps []time.Time) error {
	for _, ts := range timestamps {
		if _, err := s.CreateCompletion(ctx, &Completion{HabitID: habitID, CompletedTs: ts.Unix()}); err != nil {
			return errors.Wrapf(err, "failed to seed completion for habit %d", habitID)
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// weeklyAnchors returns timestamps on the most recent occurrence of weekday
// (relative to now) shifted back by the given week offsets, oldest first.
// Anchors before windowStart are dropped.
func weeklyAnchors(now, windowStart time.Time, weekday time.Weekday, hour, minute int, weeksAgo []int) []time.Time {
	offset := (int(now.Weekday()) - int(weekday) + 7) % 7
	anchor := at(now.AddDate(0, 0, -offset), hour, minute)

	timestamps := make([]time.Time, 0, len(weeksAgo))
	for _, w := range weeksAgo {
		day := anchor.AddDate(0, 0, -7*w)
		if day.Before(windowStart) {
			continue
		}
		timestamps = append(timestamps, day)
	}
	return timestamps
}
