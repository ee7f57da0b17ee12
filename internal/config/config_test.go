package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	oldArgs := os.Args
	os.Args = append([]string{oldArgs[0]}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("NOTES_DB_PATH", "")
	t.Setenv("NOTES_CONN_INFO", "")
	t.Setenv("NOTES_ENV_DIR", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.DBPath != "myapp.db" {
		t.Fatalf("DBPath default expected 'myapp.db', got %q", cfg.DBPath)
	}
	if cfg.ConnInfoFile != "db_connection.txt" {
		t.Fatalf("ConnInfoFile default expected 'db_connection.txt', got %q", cfg.ConnInfoFile)
	}
	if cfg.EnvDir != "db_visualizer" {
		t.Fatalf("EnvDir default expected 'db_visualizer', got %q", cfg.EnvDir)
	}
	if cfg.Version {
		t.Fatalf("Version must default to false")
	}
}

func TestNewConfig_EnvWinsOverFlags(t *testing.T) {
	t.Setenv("NOTES_DB_PATH", "/env/path.db")

	// заданы и env, и флаг — побеждает env
	resetFlagSet(t, "-db", "/flag/path.db")
	cfg := NewConfig()

	if cfg.DBPath != "/env/path.db" {
		t.Fatalf("DBPath expected from env '/env/path.db', got %q", cfg.DBPath)
	}
}

func TestNewConfig_FlagWhenEnvUnset(t *testing.T) {
	t.Setenv("NOTES_DB_PATH", "")

	// пустая переменная окружения не затирает значение флага
	resetFlagSet(t, "-db", "/flag/path.db")
	cfg := NewConfig()

	if cfg.DBPath != "/flag/path.db" {
		t.Fatalf("DBPath expected from flag '/flag/path.db', got %q", cfg.DBPath)
	}
}

func TestNewConfig_Flags(t *testing.T) {
	t.Setenv("NOTES_DB_PATH", "")
	t.Setenv("NOTES_CONN_INFO", "")

	resetFlagSet(t, "-db", "flag.db", "-conn-info", "ci.txt")
	cfg := NewConfig()

	if cfg.DBPath != "flag.db" {
		t.Fatalf("DBPath expected 'flag.db', got %q", cfg.DBPath)
	}
	if cfg.ConnInfoFile != "ci.txt" {
		t.Fatalf("ConnInfoFile expected 'ci.txt', got %q", cfg.ConnInfoFile)
	}
}
