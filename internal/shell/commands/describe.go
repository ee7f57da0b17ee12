package commands

import (
	"fmt"

	"NotesDB/internal/store/sqlite"
)

type describeCmd struct{}

func (describeCmd) Name() string { return "describe" }
func (describeCmd) Description() string {
	return "Показать столбцы таблицы"
}
func (describeCmd) Usage() string { return "describe <table>" }

func (describeCmd) Run(st *sqlite.Store, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	table := args[0]
	cols, err := st.Columns(table)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Table %s:\n", table)
	for _, c := range cols {
		null := "NULL"
		if c.NotNull {
			null = "NOT NULL"
		}
		def := ""
		if c.Default.Valid {
			def = " DEFAULT " + c.Default.String
		}
		pk := ""
		if c.PK {
			pk = " PRIMARY KEY"
		}
		fmt.Fprintf(Out, "  %-12s %-10s %s%s%s\n", c.Name, c.Type, null, def, pk)
	}

	trs, err := st.TriggerNames(table)
	if err != nil {
		return err
	}
	for _, tr := range trs {
		fmt.Fprintf(Out, "  trigger: %s\n", tr)
	}
	return nil
}

func init() { RegisterCmd(describeCmd{}, "desc") }
