package commands

import (
	"NotesDB/internal/store/sqlite"
)

type quitCmd struct{}

func (quitCmd) Name() string { return "quit" }
func (quitCmd) Description() string {
	return "Выйти из shell"
}
func (quitCmd) Usage() string { return "quit" }

func (quitCmd) Run(st *sqlite.Store, args []string) error {
	return ErrQuit
}

func init() { RegisterCmd(quitCmd{}, "exit") }
