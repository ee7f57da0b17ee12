package main

import (
	"fmt"
	"os"

	"NotesDB/internal/config"
	"NotesDB/internal/shell/commands"
	"NotesDB/internal/store/sqlite"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("NotesDB shell\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	dbPath := sqlite.ResolveDBPath(cfg.ConnInfoFile, cfg.DBPath)
	st, err := sqlite.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	exitCode := commands.RunLoop(st, os.Stdin)
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
