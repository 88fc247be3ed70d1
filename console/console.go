// Package console implements the interactive shell: command dispatch, habit
// tables and the admin sub-console. It holds no domain logic; streak math
// lives in the analytics package.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/hrygo/habitkeeper/store"
)

const prompt = colorYellow + "HabitKeeper > : " + colorReset

// Console runs the interactive command loop against a store.
type Console struct {
	store   *store.Store
	in      *bufio.Scanner
	out     io.Writer
	nowFunc func() time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithClock overrides the clock, for deterministic tests.
func WithClock(nowFunc func() time.Time) Option {
	return func(c *Console) {
		c.nowFunc = nowFunc
	}
}

// New creates a console reading commands from in and writing to out.
func New(s *store.Store, in io.Reader, out io.Writer, options ...Option) *Console {
	c := &Console{
		store:   s,
		in:      bufio.NewScanner(in),
		out:     out,
		nowFunc: func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Console) now() time.Time {
	return c.nowFunc().UTC()
}

// readLine prints the given prompt and returns the next trimmed input line.
// ok is false when input is exhausted.
func (c *Console) readLine(p string) (string, bool) {
	c.printf("%s", p)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// Run executes the command loop until quit, EOF or context cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.printBanner()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw, ok := c.readLine(prompt)
		if !ok {
			c.println(colorCyan, "\nExiting HabitKeeper. Stay consistent and keep growing!")
			return nil
		}
		if raw == "" {
			continue
		}
		low := strings.ToLower(raw)

		switch {
		case low == "q" || low == "quit" || low == "exit":
			c.println(colorCyan, "Exiting HabitKeeper. Stay consistent and keep growing!")
			return nil
		case low == "h" || low == "help" || low == "?":
			c.printHelp()
		case low == "b" || low == "banner":
			c.printBanner()
		case low == "l" || low == "list":
			c.cmdList(ctx)
		case low == "c" || low == "create":
			c.cmdCreate(ctx)
		case low == "e" || low == "edit":
			c.cmdEdit(ctx)
		case low == "d" || low == "delete":
			c.cmdDelete(ctx)
		case low == "m" || low == "mark" || low == "complete":
			c.cmdComplete(ctx)
		case low == "a" || low == "analyze" || low == "analytics":
			c.cmdAnalyze(ctx)
		case low == "admin":
			c.runAdmin(ctx)
		case strings.HasPrefix(low, "streak "):
			c.cmdStreak(ctx, strings.TrimSpace(strings.TrimPrefix(low, "streak ")))
		case low == "streak":
			c.println(colorRed, "Usage: streak <habit name>")
		default:
			c.println(colorRed, "Unknown command: '"+raw+"'. Type 'help' to see available commands.")
		}
	}
}
