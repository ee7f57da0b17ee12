package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"NotesDB/internal/store/sqlite"
)

const prompt = "notesdb> "

// Dispatch executes a single shell command line split into fields.
// Malformed input is reported to the user and never ends the loop.
func Dispatch(st *sqlite.Store, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	if name == "help" {
		if len(fields) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return nil
		}
		if c, ok := Get(fields[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return nil
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", fields[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return nil
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return nil
	}

	err := c.Run(st, fields[1:])
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQuit):
		return ErrQuit
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return nil
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return nil
	}
}

// RunLoop reads commands from in until EOF or quit and returns a process exit code.
func RunLoop(st *sqlite.Store, in io.Reader) int {
	fmt.Fprintf(Out, "Connected to %s\nType 'help' for commands, 'quit' to exit.\n", st.Path())
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(Out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(Out)
			break
		}
		if err := Dispatch(st, strings.Fields(sc.Text())); errors.Is(err, ErrQuit) {
			break
		}
	}
	return 0
}
