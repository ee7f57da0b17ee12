package commands

import (
	"fmt"

	"NotesDB/internal/store/sqlite"
)

type tablesCmd struct{}

func (tablesCmd) Name() string { return "tables" }
func (tablesCmd) Description() string {
	return "Показать все таблицы"
}
func (tablesCmd) Usage() string { return "tables" }

func (tablesCmd) Run(st *sqlite.Store, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	names, err := st.TableNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(Out, "Нет таблиц")
		return nil
	}
	for _, n := range names {
		fmt.Fprintf(Out, "- %s\n", n)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(names))
	return nil
}

func init() { RegisterCmd(tablesCmd{}) }
