package sqlite

import (
	"fmt"
)

// requiredColumn описывает столбец, который обязан присутствовать в таблице.
// Def — суффикс определения для ALTER TABLE ADD COLUMN; значения по умолчанию
// обязательны, иначе ALTER по заполненной таблице упадёт на NOT NULL.
type requiredColumn struct {
	Name string
	Def  string
}

// notesColumns — целевой набор столбцов таблицы notes (кроме id).
var notesColumns = []requiredColumn{
	{"title", "TEXT NOT NULL DEFAULT ''"},
	{"body", "TEXT NOT NULL DEFAULT ''"},
	{"created_at", "TEXT DEFAULT CURRENT_TIMESTAMP"},
	{"updated_at", "TEXT DEFAULT CURRENT_TIMESTAMP"},
}

// EnsureSchema приводит схему к целевому виду, ничего не разрушая:
//  1. создаёт отсутствующие таблицы (CREATE TABLE IF NOT EXISTS);
//  2. добавляет в notes недостающие обязательные столбцы;
//  3. пересоздаёт триггер notes_set_updated_at.
//
// Повторный запуск по корректной схеме не меняет её и не возвращает ошибку.
// Существующие столбцы и данные никогда не удаляются и не переименовываются.
func (s *Store) EnsureSchema() error {
	if _, err := s.db.Exec(initialDDL()); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	if err := s.ensureColumns("notes", notesColumns); err != nil {
		return err
	}
	return s.ensureUpdatedAtTrigger()
}

// ensureColumns добавляет в таблицу обязательные столбцы, которых ещё нет.
// Только добавление: ни DROP, ни RENAME, ни изменение типа.
func (s *Store) ensureColumns(table string, required []requiredColumn) error {
	cols, err := s.Columns(table)
	if err != nil {
		return err
	}
	existing := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		existing[c.Name] = struct{}{}
	}
	for _, rc := range required {
		if _, ok := existing[rc.Name]; ok {
			continue
		}
		q := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, rc.Name, rc.Def)
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("add column %s.%s: %w", table, rc.Name, err)
		}
	}
	return nil
}

// ensureUpdatedAtTrigger пересоздаёт триггер, поддерживающий notes.updated_at.
// У SQLite нет 'ON UPDATE CURRENT_TIMESTAMP', поэтому используется триггер.
// DROP+CREATE безопасен: триггер — чистые метаданные, данных не касается.
// Условие WHEN пропускает обновления, где updated_at выставлен вручную,
// и не даёт триггеру сработать на собственный UPDATE.
func (s *Store) ensureUpdatedAtTrigger() error {
	if _, err := s.db.Exec(`DROP TRIGGER IF EXISTS notes_set_updated_at`); err != nil {
		return fmt.Errorf("drop trigger: %w", err)
	}
	const ddl = `
CREATE TRIGGER notes_set_updated_at
AFTER UPDATE ON notes
FOR EACH ROW
WHEN NEW.updated_at = OLD.updated_at
BEGIN
    UPDATE notes
    SET updated_at = CURRENT_TIMESTAMP
    WHERE id = NEW.id;
END;`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create trigger: %w", err)
	}
	return nil
}

// appInfoSeed — служебные записи app_info, записываемые при каждом запуске.
var appInfoSeed = [][2]string{
	{"project_name", "notesdb"},
	{"version", "0.1.0"},
	{"author", "John Doe"},
	{"description", ""},
}

// SeedAppInfo записывает служебные записи app_info.
// INSERT OR REPLACE по UNIQUE-ключу делает операцию идемпотентной.
func (s *Store) SeedAppInfo() error {
	for _, kv := range appInfoSeed {
		if _, err := s.db.Exec(
			`INSERT OR REPLACE INTO app_info (key, value) VALUES (?, ?)`,
			kv[0], kv[1],
		); err != nil {
			return fmt.Errorf("seed app_info %q: %w", kv[0], err)
		}
	}
	return nil
}
