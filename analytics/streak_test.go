package analytics

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/habitkeeper/store"
)

var now = time.Date(2025, time.October, 18, 18, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestPeriodLength(t *testing.T) {
	tests := []struct {
		periodicity store.Periodicity
		expected    time.Duration
		wantErr     bool
	}{
		{store.PeriodicityDaily, 24 * time.Hour, false},
		{store.PeriodicityWeekly, 7 * 24 * time.Hour, false},
		{store.PeriodicityMonthly, 30 * 24 * time.Hour, false},
		{store.Periodicity("yearly"), 0, true},
		{store.Periodicity(""), 0, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.periodicity), func(t *testing.T) {
			period, err := PeriodLength(tt.periodicity)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPeriodicity))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, period)
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		periodicity store.Periodicity
		expected    int
	}{
		{"empty completions", nil, store.PeriodicityDaily, 0},
		{"single completion within window", []time.Time{now}, store.PeriodicityDaily, 1},
		{"single completion outside window", []time.Time{daysAgo(2)}, store.PeriodicityDaily, 0},
		{"three consecutive days", []time.Time{now, daysAgo(1), daysAgo(2)}, store.PeriodicityDaily, 3},
		{"last completion three days ago", []time.Time{daysAgo(5), daysAgo(4), daysAgo(3)}, store.PeriodicityDaily, 0},
		{"weekly chain breaks at long gap", []time.Time{now, daysAgo(6), daysAgo(20)}, store.PeriodicityWeekly, 2},
		{"gap exactly at period plus grace", []time.Time{now, now.Add(-36 * time.Hour)}, store.PeriodicityDaily, 2},
		{"gap just over period plus grace", []time.Time{now, now.Add(-36*time.Hour - time.Second)}, store.PeriodicityDaily, 1},
		{"unsorted input", []time.Time{daysAgo(2), now, daysAgo(1)}, store.PeriodicityDaily, 3},
		{"duplicates tolerated", []time.Time{now, now, daysAgo(1)}, store.PeriodicityDaily, 3},
		{"chain break in the middle", []time.Time{daysAgo(10), daysAgo(9), daysAgo(1), now}, store.PeriodicityDaily, 2},
		{"monthly within thirty days", []time.Time{daysAgo(29), now}, store.PeriodicityMonthly, 2},
		{"monthly gap too large", []time.Time{daysAgo(65), daysAgo(30), now}, store.PeriodicityMonthly, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streak, err := CurrentStreak(tt.completions, tt.periodicity, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, streak)
			assert.LessOrEqual(t, streak, len(tt.completions))
		})
	}
}

func TestCurrentStreakInvalidPeriodicity(t *testing.T) {
	_, err := CurrentStreak([]time.Time{now}, "hourly", now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPeriodicity))
}

func TestCurrentStreakDoesNotMutateInput(t *testing.T) {
	completions := []time.Time{now, daysAgo(2), daysAgo(1)}
	_, err := CurrentStreak(completions, store.PeriodicityDaily, now)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{now, daysAgo(2), daysAgo(1)}, completions)
}

func habitWithStreak(name string, days int) *store.Habit {
	completions := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		completions = append(completions, daysAgo(i))
	}
	return &store.Habit{
		Name:        name,
		Periodicity: store.PeriodicityDaily,
		Completions: completions,
	}
}

func TestLongestOverall(t *testing.T) {
	t.Run("empty input has no result", func(t *testing.T) {
		_, ok, err := LongestOverall(nil, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returns habit with maximum streak", func(t *testing.T) {
		habits := []*store.Habit{
			habitWithStreak("Reading", 3),
			habitWithStreak("Running", 5),
		}
		best, ok, err := LongestOverall(habits, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Running", best.Name)
		assert.Equal(t, 5, best.Streak)
	})

	t.Run("first encountered maximum wins on tie", func(t *testing.T) {
		habits := []*store.Habit{
			habitWithStreak("First", 4),
			habitWithStreak("Second", 4),
		}
		best, ok, err := LongestOverall(habits, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "First", best.Name)
	})

	t.Run("all streaks zero still yields a result", func(t *testing.T) {
		habits := []*store.Habit{
			{Name: "Stale", Periodicity: store.PeriodicityDaily},
		}
		best, ok, err := LongestOverall(habits, now)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Stale", best.Name)
		assert.Equal(t, 0, best.Streak)
	})
}

func TestByPeriodicity(t *testing.T) {
	daily1 := habitWithStreak("Daily One", 1)
	weekly := &store.Habit{Name: "Weekly", Periodicity: store.PeriodicityWeekly}
	daily2 := habitWithStreak("Daily Two", 2)
	habits := []*store.Habit{daily1, weekly, daily2}

	filtered := ByPeriodicity(habits, store.PeriodicityDaily)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Daily One", filtered[0].Name)
	assert.Equal(t, "Daily Two", filtered[1].Name)

	assert.Empty(t, ByPeriodicity(habits, store.PeriodicityMonthly))
}

func TestStreakByName(t *testing.T) {
	habits := []*store.Habit{
		habitWithStreak("Drink Water", 3),
		habitWithStreak("drink water", 7),
	}

	t.Run("case-insensitive match", func(t *testing.T) {
		streak, ok, err := StreakByName(habits, "DRINK WATER", now)
		require.NoError(t, err)
		require.True(t, ok)
		// First match wins even when a later habit has the same name.
		assert.Equal(t, 3, streak)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok, err := StreakByName(habits, "Meditation", now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
