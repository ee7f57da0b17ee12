package commands

import (
	"fmt"

	"NotesDB/internal/store/sqlite"
)

type countCmd struct{}

func (countCmd) Name() string { return "count" }
func (countCmd) Description() string {
	return "Показать число строк таблицы"
}
func (countCmd) Usage() string { return "count <table>" }

func (countCmd) Run(st *sqlite.Store, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	n, err := st.CountRows(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%d\n", n)
	return nil
}

func init() { RegisterCmd(countCmd{}) }
