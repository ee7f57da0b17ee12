package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Файлы-подсказки для внешних инструментов (просмотрщик, sqlite3 CLI).
// Формат унаследован от прежнего инструментария и сохраняется как есть.

var (
	filePathRe   = regexp.MustCompile(`(?m)^#\s*File path:\s*(.+)$`)
	connStringRe = regexp.MustCompile(`(?m)^#\s*Connection string:\s*sqlite:////(.+)$`)
)

// ResolveDBPath определяет путь к файлу БД. Если existing db_connection.txt
// содержит путь, он считается авторитетным; иначе используется fallback.
// Возвращаемый путь всегда абсолютный.
func ResolveDBPath(connInfoFile, fallback string) string {
	if p := parseConnInfo(connInfoFile); p != "" {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
	}
	abs, err := filepath.Abs(fallback)
	if err != nil {
		return fallback
	}
	return abs
}

// parseConnInfo извлекает путь к БД из db_connection.txt, если файл есть.
func parseConnInfo(file string) string {
	if file == "" {
		return ""
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	content := string(b)

	// Предпочитаем строку "# File path: /abs/path"
	if m := filePathRe.FindStringSubmatch(content); m != nil {
		if p := strings.TrimSpace(m[1]); p != "" {
			return p
		}
	}
	// Запасной вариант: "# Connection string: sqlite:////abs/path"
	if m := connStringRe.FindStringSubmatch(content); m != nil {
		if p := strings.TrimSpace(m[1]); p != "" {
			return "/" + p
		}
	}
	return ""
}

// WriteConnInfo записывает db_connection.txt для внешних инструментов.
func WriteConnInfo(file, dbPath string) error {
	var b strings.Builder
	b.WriteString("# SQLite connection methods:\n")
	fmt.Fprintf(&b, "# CLI: sqlite3 %s\n", filepath.Base(dbPath))
	fmt.Fprintf(&b, "# Connection string: sqlite:///%s\n", dbPath)
	fmt.Fprintf(&b, "# File path: %s\n", dbPath)
	return os.WriteFile(file, []byte(b.String()), 0o644)
}

// WriteEnvFile записывает sqlite.env в каталоге просмотрщика.
func WriteEnvFile(dir, dbPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	line := fmt.Sprintf("export SQLITE_DB=%q\n", dbPath)
	return os.WriteFile(filepath.Join(dir, "sqlite.env"), []byte(line), 0o644)
}
