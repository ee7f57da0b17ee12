package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"NotesDB/internal/store/sqlite"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// ErrQuit is returned by a command to end the interactive loop.
var ErrQuit = errors.New("quit")

// Command represents a shell command.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "tables".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "describe <table>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(st *sqlite.Store, args []string) error
}

// registry holds available commands by name (including aliases).
var registry = map[string]Command{}

// Out — общий writer для вывода shell. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command, aliases ...string) {
	registry[cmd.Name()] = cmd
	for _, a := range aliases {
		registry[a] = cmd
	}
}

// Get returns a command by name or alias.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name, without alias duplicates.
func List() []Command {
	seen := map[string]bool{}
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"NotesDB inspection shell",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-20s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}
