package console

import (
	"fmt"
	"time"

	"github.com/hrygo/habitkeeper/store"
)

// ANSI color codes, matching the original colorama palette.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	colorWhite   = "\033[37m"
)

const banner = `
----------------------------------------------------------
 _   _       _     _ _ _____              _
| | | |     | |   (_) |_   _|            | |
| |_| | __ _| |__  _| |_| |_ __ __ _  ___| | _____ _ __
|  _  |/ _` + "`" + ` | '_ \| | __| | '__/ _` + "`" + ` |/ __| |/ / _ \ '__|
| | | | (_| | |_) | | |_| | | | (_| | (__|   <  __/ |
\_| |_/\__,_|_.__/|_|\__\_/_|  \__,_|\___|_|\_\___|_|

----------------------------------------------------------

Welcome to HabitKeeper!

Here's what you can do:
    - Create a new habit
    - Modify or delete an existing habit
    - Mark a habit as completed
    - Analyze your progress and streaks

You can see all available commands with the 'help' command.


What would you like to do? (type 'help' for options)
`

const usageHelp = `
Here are all available commands you can run:

General navigation:
    q, quit, exit           -   exit the application
    l, list                 -   list defined habits
    c, create               -   create a new habit
    b, banner               -   show the banner of the application
    d, delete               -   delete a habit by id
    e, edit                 -   edit the values of a habit
    m, mark, complete       -   mark a habit as completed now
    h, help                 -   show this help
    a, analyze, analytics   -   analyze your habit performance
    streak <habit name>     -   show the streak for a specific habit

    admin                   -   open admin console (inspect habits and completions)

`

// timeLayout renders timestamps like "Oct 18, 2025 - 23:56".
const timeLayout = "Jan 02, 2006 - 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(color, text string) {
	fmt.Fprintf(c.out, "%s%s%s\n", color, text, colorReset)
}

func (c *Console) printBanner() {
	c.println(colorCyan, banner)
}

func (c *Console) printHelp() {
	c.println(colorCyan, usageHelp)
}

// printHabitsTable renders the habit list, newest first.
func (c *Console) printHabitsTable(habits []*store.Habit) {
	if len(habits) == 0 {
		c.println(colorRed, "\nNo habits found.\n")
		return
	}

	c.printf("%s\nID    Name                 Periodicity     Created At               Last Completion\n", colorCyan)
	c.printf("---------------------------------------------------------------------------------------------\n")
	for i := len(habits) - 1; i >= 0; i-- {
		h := habits[i]
		c.printf("%-5d %-20s %-15s %-24s %s\n",
			h.ID, h.Name, h.Periodicity, formatTime(h.CreatedAt()), formatTime(h.LastCompletion()))
	}
	c.printf("%s\n", colorReset)
}

// streakColor picks the color for a streak value: green for 10 and above,
// yellow for 5 and above, red otherwise.
func streakColor(streak int) string {
	switch {
	case streak >= 10:
		return colorGreen
	case streak >= 5:
		return colorYellow
	default:
		return colorRed
	}
}
