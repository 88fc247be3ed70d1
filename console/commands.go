package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hrygo/habitkeeper/analytics"
	"github.com/hrygo/habitkeeper/store"
)

func (c *Console) cmdList(ctx context.Context) {
	habits, err := c.store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		c.println(colorRed, "Error listing habits: "+err.Error())
		return
	}
	c.printHabitsTable(habits)
}

func (c *Console) cmdCreate(ctx context.Context) {
	name, ok := c.readLine(colorYellow + "Enter habit name: " + colorReset)
	if !ok || name == "" {
		c.println(colorRed, "Aborted: name cannot be empty.")
		return
	}

	raw, ok := c.readLine(colorYellow + "Enter periodicity (daily/weekly/monthly): " + colorReset)
	if !ok {
		return
	}
	periodicity := store.Periodicity(raw)
	if !periodicity.IsValid() {
		c.println(colorRed, fmt.Sprintf("Invalid periodicity '%s'. Must be one of: daily, weekly, monthly.", raw))
		return
	}

	habit, err := c.store.CreateHabit(ctx, &store.Habit{
		Name:        name,
		Periodicity: periodicity,
		CreatedTs:   c.now().Unix(),
	})
	if err != nil {
		c.println(colorRed, "Error saving habit: "+err.Error())
		return
	}
	c.println(colorGreen, fmt.Sprintf("\nHabit '%s' (%s) saved successfully!\n", habit.Name, habit.Periodicity))
}

// promptHabitID shows the table and asks for an id. ok is false when the user
// cancels or the input is not a number.
func (c *Console) promptHabitID(ctx context.Context, verb string) (int32, bool) {
	c.cmdList(ctx)
	raw, ok := c.readLine(colorYellow + "Enter the ID of the habit you want to " + verb + ": " + colorReset)
	if !ok || raw == "" {
		c.println(colorRed, capitalize(verb)+" cancelled.")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		c.println(colorRed, "Invalid ID.")
		return 0, false
	}
	return int32(id), true
}

func (c *Console) cmdEdit(ctx context.Context) {
	id, ok := c.promptHabitID(ctx, "edit")
	if !ok {
		return
	}

	habit, err := c.store.GetHabit(ctx, &store.FindHabit{ID: &id})
	if err != nil {
		c.println(colorRed, "Error loading habit: "+err.Error())
		return
	}
	if habit == nil {
		c.println(colorRed, fmt.Sprintf("No habit with ID %d.", id))
		return
	}

	newName, ok := c.readLine(colorYellow + fmt.Sprintf("Enter new habit name [%s]: ", habit.Name) + colorReset)
	if !ok {
		return
	}
	if newName == "" {
		newName = habit.Name
	}

	raw, ok := c.readLine(colorYellow + fmt.Sprintf("Enter new periodicity (daily/weekly/monthly) [%s]: ", habit.Periodicity) + colorReset)
	if !ok {
		return
	}
	newPeriodicity := habit.Periodicity
	if raw != "" {
		newPeriodicity = store.Periodicity(raw)
		if !newPeriodicity.IsValid() {
			c.println(colorRed, fmt.Sprintf("Invalid periodicity '%s'. Update aborted.", raw))
			return
		}
	}

	if _, err := c.store.UpdateHabit(ctx, &store.UpdateHabit{
		ID:          id,
		Name:        &newName,
		Periodicity: &newPeriodicity,
	}); err != nil {
		c.println(colorRed, "Error updating habit: "+err.Error())
		return
	}
	c.println(colorGreen, fmt.Sprintf("\nHabit with ID %d updated successfully!\n", id))
}

func (c *Console) cmdDelete(ctx context.Context) {
	id, ok := c.promptHabitID(ctx, "delete")
	if !ok {
		return
	}

	confirm, ok := c.readLine(colorYellow + fmt.Sprintf("Are you sure you want to delete habit ID %d? [y/N]: ", id) + colorReset)
	if !ok {
		return
	}
	if confirm != "y" && confirm != "yes" && confirm != "Y" {
		c.println(colorCyan, "Delete cancelled.")
		return
	}

	if err := c.store.DeleteHabit(ctx, &store.DeleteHabit{ID: id}); err != nil {
		c.println(colorRed, fmt.Sprintf("No habit with ID %d found.", id))
		return
	}
	c.println(colorGreen, fmt.Sprintf("\nHabit with ID %d deleted successfully.\n", id))
}

func (c *Console) cmdComplete(ctx context.Context) {
	id, ok := c.promptHabitID(ctx, "mark completed")
	if !ok {
		return
	}

	habit, err := c.store.GetHabit(ctx, &store.FindHabit{ID: &id})
	if err != nil {
		c.println(colorRed, "Error loading habit: "+err.Error())
		return
	}
	if habit == nil {
		c.println(colorRed, fmt.Sprintf("Habit with id %d not found.", id))
		return
	}

	if _, err := c.store.CreateCompletion(ctx, &store.Completion{
		HabitID:     id,
		CompletedTs: c.now().Unix(),
	}); err != nil {
		c.println(colorRed, "Error recording completion: "+err.Error())
		return
	}
	c.println(colorGreen, fmt.Sprintf("\nRecorded completion for habit #%d.\n", id))
}

func (c *Console) cmdAnalyze(ctx context.Context) {
	c.println(colorCyan, "\n=== Habit Analytics ===\n")

	habits, err := c.store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		c.println(colorRed, "Error listing habits: "+err.Error())
		return
	}
	if len(habits) == 0 {
		c.println(colorRed, "No habits found for analysis.")
		return
	}

	now := c.now()
	longest, ok, err := analytics.LongestOverall(habits, now)
	if err != nil {
		c.println(colorRed, "Error computing streaks: "+err.Error())
		return
	}
	if ok {
		c.println(colorGreen, fmt.Sprintf("Longest streak overall: %s - %d completions", longest.Name, longest.Streak))
	}

	groups := []struct {
		color       string
		label       string
		periodicity store.Periodicity
	}{
		{colorYellow, "Daily Habits:", store.PeriodicityDaily},
		{colorBlue, "Weekly Habits:", store.PeriodicityWeekly},
		{colorMagenta, "Monthly Habits:", store.PeriodicityMonthly},
	}
	for _, group := range groups {
		c.println(group.color, "\n"+group.label)
		matched := analytics.ByPeriodicity(habits, group.periodicity)
		if len(matched) == 0 {
			c.println(colorRed, "  None")
			continue
		}
		for _, habit := range matched {
			c.printf("  %s%s%s\n", colorWhite, habit.Name, colorReset)
		}
	}

	c.println(colorCyan, "\nIndividual Streaks:")
	for _, habit := range habits {
		streak, err := analytics.CurrentStreak(habit.Completions, habit.Periodicity, now)
		if err != nil {
			c.println(colorRed, "Error computing streak for "+habit.Name+": "+err.Error())
			continue
		}
		c.printf("  %-15s - %s%d%s\n", habit.Name, streakColor(streak), streak, colorReset)
	}
}

func (c *Console) cmdStreak(ctx context.Context, name string) {
	if name == "" {
		c.println(colorRed, "Usage: streak <habit name>")
		return
	}

	habits, err := c.store.ListHabits(ctx, &store.FindHabit{})
	if err != nil {
		c.println(colorRed, "Error listing habits: "+err.Error())
		return
	}

	streak, found, err := analytics.StreakByName(habits, name, c.now())
	if err != nil {
		c.println(colorRed, "Error computing streak: "+err.Error())
		return
	}
	if !found {
		c.println(colorRed, fmt.Sprintf("Habit '%s' not found.", name))
		return
	}
	c.println(colorGreen, fmt.Sprintf("Streak for '%s': %d", name, streak))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
