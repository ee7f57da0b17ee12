package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNoTable возвращается при запросе метаданных несуществующей таблицы.
var ErrNoTable = errors.New("no such table")

// ColumnInfo — метаданные столбца из PRAGMA table_info.
type ColumnInfo struct {
	Name    string
	Type    string
	NotNull bool
	Default sql.NullString
	PK      bool
}

// TableNames возвращает имена пользовательских таблиц, отсортированные по имени.
// Внутренние таблицы sqlite_* не включаются.
func (s *Store) TableNames() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM sqlite_master
         WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
         ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// quoteIdent экранирует имя для подстановки в SQL: внутренние кавычки
// удваиваются по правилам SQLite.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// tableExists проверяет наличие таблицы в sqlite_master.
func (s *Store) tableExists(table string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return true, nil
}

// Columns возвращает метаданные столбцов таблицы в порядке объявления.
// Для несуществующей таблицы возвращается ErrNoTable.
func (s *Store) Columns(table string) ([]ColumnInfo, error) {
	ok, err := s.tableExists(table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, table)
	}
	// Имя таблицы нельзя передать плейсхолдером в PRAGMA,
	// но оно уже проверено по sqlite_master.
	rows, err := s.db.Query("PRAGMA table_info(" + quoteIdent(table) + ")")
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var (
			cid     int
			c       ColumnInfo
			notnull int
			pk      int
		)
		// PRAGMA table_info: cid, name, type, notnull, dflt_value, pk
		if err := rows.Scan(&cid, &c.Name, &c.Type, &notnull, &c.Default, &pk); err != nil {
			return nil, err
		}
		c.NotNull = notnull != 0
		c.PK = pk != 0
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// TriggerNames возвращает имена триггеров, объявленных на таблице.
func (s *Store) TriggerNames(table string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT name FROM sqlite_master
         WHERE type = 'trigger' AND tbl_name = ?
         ORDER BY name`, table)
	if err != nil {
		return nil, fmt.Errorf("query triggers: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// CountRows возвращает число строк в таблице.
// Для несуществующей таблицы возвращается ErrNoTable.
func (s *Store) CountRows(table string) (int64, error) {
	ok, err := s.tableExists(table)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoTable, table)
	}
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + quoteIdent(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
