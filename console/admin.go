package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hrygo/habitkeeper/analytics"
	"github.com/hrygo/habitkeeper/store"
)

const adminPrompt = colorYellow + "Admin > " + colorReset

func (c *Console) printAdminHelp() {
	c.println(colorCyan, "\nAdmin Commands:\n")
	c.printf("  show <habit_id>     - show detailed info for a specific habit\n")
	c.printf("  completions         - list all recorded completions\n")
	c.printf("  back, exit, q       - return to main menu\n\n")
}

// runAdmin runs the admin sub-console until the user returns to the main menu.
func (c *Console) runAdmin(ctx context.Context) {
	c.println(colorCyan, "\n=== HabitKeeper Admin Console ===")
	c.printf("Type 'help' to see available options, or 'back' to return to main menu.\n\n")
	c.printAdminHelp()

	for {
		choice, ok := c.readLine(adminPrompt)
		if !ok {
			return
		}
		choice = strings.ToLower(choice)

		switch {
		case choice == "back" || choice == "exit" || choice == "b" || choice == "q" || choice == "quit":
			c.println(colorCyan, "Returning to main menu...")
			return
		case choice == "help" || choice == "h":
			c.printAdminHelp()
		case strings.HasPrefix(choice, "show "):
			raw := strings.TrimSpace(strings.TrimPrefix(choice, "show "))
			id, err := strconv.ParseInt(raw, 10, 32)
			if err != nil {
				c.println(colorRed, "Usage: show <habit_id>")
				continue
			}
			c.showHabitDetails(ctx, int32(id))
		case choice == "completions" || choice == "list completions":
			c.showAllCompletions(ctx)
		case choice == "":
			continue
		default:
			c.println(colorRed, fmt.Sprintf("Unknown command: '%s'. Type 'help' for options.", choice))
		}
	}
}

// showHabitDetails displays detailed information for a single habit,
// including its current streak and the last five completions.
func (c *Console) showHabitDetails(ctx context.Context, id int32) {
	habit, err := c.store.GetHabit(ctx, &store.FindHabit{ID: &id})
	if err != nil {
		c.println(colorRed, "Error loading habit: "+err.Error())
		return
	}
	if habit == nil {
		c.println(colorRed, fmt.Sprintf("No habit found with ID %d.", id))
		return
	}

	streak, err := analytics.CurrentStreak(habit.Completions, habit.Periodicity, c.now())
	if err != nil {
		c.println(colorRed, "Error computing streak: "+err.Error())
		return
	}

	c.println(colorCyan, fmt.Sprintf("\nHabit Details (ID: %d)", habit.ID))
	c.printf("Name: %s\n", habit.Name)
	c.printf("Periodicity: %s\n", habit.Periodicity)
	c.printf("Created At: %s\n", formatTime(habit.CreatedAt()))
	c.printf("Total Completions: %d\n", len(habit.Completions))
	c.printf("Current Streak: %d\n", streak)

	if len(habit.Completions) == 0 {
		c.println(colorRed, "\nNo completions recorded yet.\n")
		return
	}

	c.println(colorCyan, "\nRecent Completions:")
	start := len(habit.Completions) - 5
	if start < 0 {
		start = 0
	}
	for i := len(habit.Completions) - 1; i >= start; i-- {
		c.printf("  * %s\n", formatTime(habit.Completions[i]))
	}
	c.printf("\n")
}

// showAllCompletions displays every recorded completion with its habit name.
func (c *Console) showAllCompletions(ctx context.Context) {
	records, err := c.store.ListCompletionRecords(ctx)
	if err != nil {
		c.println(colorRed, "Error listing completions: "+err.Error())
		return
	}
	if len(records) == 0 {
		c.println(colorRed, "No completions found.")
		return
	}

	c.println(colorCyan, "\nAll Recorded Completions:")
	c.println(colorBlue, "Habit ID    Habit Name           Timestamp")
	c.println(colorBlue, "---------------------------------------------")
	for _, record := range records {
		c.printf("%-11d %-20s %s\n", record.HabitID, record.HabitName, formatTime(record.CompletedAt))
	}
	c.printf("\n")
}
