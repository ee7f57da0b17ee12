package main

import (
	"fmt"
	"os"

	"NotesDB/internal/config"
	"NotesDB/internal/store/sqlite"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("NotesDB initdb\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() { _ = logger.Sync() }()

	sugar.Infow("Starting SQLite setup")

	// db_connection.txt авторитетен для расположения файла БД, если присутствует
	dbPath := sqlite.ResolveDBPath(cfg.ConnInfoFile, cfg.DBPath)
	if _, statErr := os.Stat(dbPath); statErr == nil {
		sugar.Infow("Database already exists", "path", dbPath)
	} else {
		sugar.Infow("Creating new database", "path", dbPath)
	}

	st, err := sqlite.Open(dbPath)
	if err != nil {
		sugar.Fatalw("failed to open database", "error", err)
	}
	defer st.Close()

	if err := st.EnsureSchema(); err != nil {
		sugar.Fatalw("failed to ensure schema", "error", err)
	}
	if err := st.SeedAppInfo(); err != nil {
		sugar.Fatalw("failed to seed app_info", "error", err)
	}

	// Статистика после миграции
	tables, err := st.TableNames()
	if err != nil {
		sugar.Fatalw("failed to list tables", "error", err)
	}
	records, err := st.CountRows("app_info")
	if err != nil {
		sugar.Fatalw("failed to count app_info", "error", err)
	}

	// Файлы-подсказки для внешних инструментов; их ошибки не фатальны
	if err := sqlite.WriteConnInfo(cfg.ConnInfoFile, dbPath); err != nil {
		sugar.Warnw("could not save connection info", "error", err)
	} else {
		sugar.Infow("Connection info saved", "file", cfg.ConnInfoFile)
	}
	if err := sqlite.WriteEnvFile(cfg.EnvDir, dbPath); err != nil {
		sugar.Warnw("could not save env file", "error", err)
	} else {
		sugar.Infow("Env file saved", "dir", cfg.EnvDir)
	}

	sugar.Infow("SQLite setup complete",
		"database", dbPath,
		"tables", len(tables),
		"app_info_records", records,
	)
}
