package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/habitkeeper/analytics"
	"github.com/hrygo/habitkeeper/store"
)

// seedNow is a Saturday evening; fixture expectations below depend on it.
var seedNow = time.Date(2025, time.October, 18, 18, 0, 0, 0, time.UTC)

func TestSeedIfNeeded(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SeedIfNeeded(ctx, seedNow))

	habits, err := s.ListHabits(ctx, &store.FindHabit{})
	require.NoError(t, err)
	require.Len(t, habits, 5)

	streaks := map[string]int{}
	for _, habit := range habits {
		streak, err := analytics.CurrentStreak(habit.Completions, habit.Periodicity, seedNow)
		require.NoError(t, err)
		streaks[habit.Name] = streak
	}

	// The 10-day tail connects to one adjacent fill day, giving 11.
	assert.Equal(t, 11, streaks["Drink Water"])
	assert.Equal(t, 6, streaks["Workout"])
	assert.Equal(t, 5, streaks["Weekly Report"])
	assert.Zero(t, streaks["House Cleaning"])
	assert.Zero(t, streaks["Budget Review"])

	t.Run("longest overall is the daily habit", func(t *testing.T) {
		best, ok, err := analytics.LongestOverall(habits, seedNow)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Drink Water", best.Name)
	})

	t.Run("seeding twice is a no-op", func(t *testing.T) {
		require.NoError(t, s.SeedIfNeeded(ctx, seedNow))
		count, err := s.CountHabits(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("periodicity grouping matches fixtures", func(t *testing.T) {
		assert.Len(t, analytics.ByPeriodicity(habits, store.PeriodicityDaily), 1)
		assert.Len(t, analytics.ByPeriodicity(habits, store.PeriodicityWeekly), 3)
		assert.Len(t, analytics.ByPeriodicity(habits, store.PeriodicityMonthly), 1)
	})
}
