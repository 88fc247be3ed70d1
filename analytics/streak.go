// Package analytics implements the streak engine: pure functions over a
// habit's completion timestamps. All functions take the reference time as an
// argument so results are deterministic under test.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/habitkeeper/store"
)

// ErrInvalidPeriodicity is returned for a periodicity outside daily/weekly/monthly.
var ErrInvalidPeriodicity = errors.New("invalid periodicity")

// GraceWindow is the fixed tolerance added to the nominal period when judging
// whether a completion arrived on time.
const GraceWindow = 12 * time.Hour

// PeriodLength returns the nominal duration of one period. A month counts as
// 30 days.
func PeriodLength(p store.Periodicity) (time.Duration, error) {
	switch p {
	case store.PeriodicityDaily:
		return 24 * time.Hour, nil
	case store.PeriodicityWeekly:
		return 7 * 24 * time.Hour, nil
	case store.PeriodicityMonthly:
		return 30 * 24 * time.Hour, nil
	default:
		return 0, errors.Wrapf(ErrInvalidPeriodicity, "%q", p)
	}
}

// CurrentStreak returns the current active streak: the count of consecutive
// completions, walking backward from the most recent, each spaced no more
// than one period plus the grace window apart. The streak is 0 when the most
// recent completion is itself older than that window relative to now.
//
// Completions may arrive in any order and may contain duplicates.
func CurrentStreak(completions []time.Time, p store.Periodicity, now time.Time) (int, error) {
	period, err := PeriodLength(p)
	if err != nil {
		return 0, err
	}
	if len(completions) == 0 {
		return 0, nil
	}

	sorted := make([]time.Time, len(completions))
	copy(sorted, completions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	window := period + GraceWindow
	if now.Sub(sorted[len(sorted)-1]) > window {
		return 0, nil
	}

	streak := 1
	for i := len(sorted) - 2; i >= 0; i-- {
		if sorted[i+1].Sub(sorted[i]) > window {
			break
		}
		streak++
	}
	return streak, nil
}

// HabitStreak pairs a habit name with its current streak.
type HabitStreak struct {
	Name   string
	Streak int
}

// LongestOverall returns the habit with the longest current streak. The first
// habit encountered with the maximum streak wins. ok is false for empty input.
func LongestOverall(habits []*store.Habit, now time.Time) (HabitStreak, bool, error) {
	if len(habits) == 0 {
		return HabitStreak{}, false, nil
	}

	best := HabitStreak{}
	for i, habit := range habits {
		streak, err := CurrentStreak(habit.Completions, habit.Periodicity, now)
		if err != nil {
			return HabitStreak{}, false, err
		}
		if i == 0 || streak > best.Streak {
			best = HabitStreak{Name: habit.Name, Streak: streak}
		}
	}
	return best, true, nil
}

// ByPeriodicity filters habits matching the given periodicity, preserving
// input order.
func ByPeriodicity(habits []*store.Habit, p store.Periodicity) []*store.Habit {
	filtered := []*store.Habit{}
	for _, habit := range habits {
		if habit.Periodicity == p {
			filtered = append(filtered, habit)
		}
	}
	return filtered
}

// StreakByName returns the current streak for the habit with the given name.
// Matching is case-insensitive and exact; the first match wins. ok is false
// when no habit matches.
func StreakByName(habits []*store.Habit, name string, now time.Time) (int, bool, error) {
	for _, habit := range habits {
		if strings.EqualFold(habit.Name, name) {
			streak, err := CurrentStreak(habit.Completions, habit.Periodicity, now)
			if err != nil {
				return 0, false, err
			}
			return streak, true, nil
		}
	}
	return 0, false, nil
}
