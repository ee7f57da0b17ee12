package sqlite

import (
	"errors"
	"strings"
	"testing"
)

func TestTableNames_Sorted(t *testing.T) {
	st := newTestStore(t)
	if err := st.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	names, err := st.TableNames()
	if err != nil {
		t.Fatalf("TableNames: %v", err)
	}
	want := "app_info,notes,users"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("tables: expected %s, got %s", want, got)
	}
}

func TestColumns_Notes(t *testing.T) {
	st := newTestStore(t)
	if err := st.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	cols, err := st.Columns("notes")
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}

	byName := map[string]ColumnInfo{}
	for _, c := range cols {
		byName[c.Name] = c
	}
	if c := byName["title"]; c.Type != "TEXT" || !c.NotNull {
		t.Fatalf("title: expected TEXT NOT NULL, got %+v", c)
	}
	if c := byName["updated_at"]; c.Type != "TEXT" || c.NotNull {
		t.Fatalf("updated_at: expected nullable TEXT, got %+v", c)
	}
	if c := byName["updated_at"]; !c.Default.Valid || c.Default.String != "CURRENT_TIMESTAMP" {
		t.Fatalf("updated_at: expected DEFAULT CURRENT_TIMESTAMP, got %+v", c.Default)
	}
}

func TestColumns_UnknownTable(t *testing.T) {
	st := newTestStore(t)
	if err := st.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	_, err := st.Columns("nope")
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
	if _, err := st.CountRows("nope"); !errors.Is(err, ErrNoTable) {
		t.Fatalf("expected ErrNoTable from CountRows, got %v", err)
	}
}

func TestColumns_QuotedTableName(t *testing.T) {
	st := newTestStore(t)
	// кавычка внутри имени таблицы должна корректно экранироваться
	if _, err := st.db.Exec(`CREATE TABLE "we""ird" (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatal(err)
	}
	cols, err := st.Columns(`we"ird`)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if len(cols) != 1 || cols[0].Name != "id" {
		t.Fatalf("expected single id column, got %+v", cols)
	}
	n, err := st.CountRows(`we"ird`)
	if err != nil {
		t.Fatalf("CountRows: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows, got %d", n)
	}
}

func TestCountRows(t *testing.T) {
	st := newTestStore(t)
	if err := st.EnsureSchema(); err != nil {
		t.Fatal(err)
	}
	// пустая таблица → 0
	n, err := st.CountRows("notes")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows, got %d", n)
	}
	if _, err := st.db.Exec(`INSERT INTO notes (title, body) VALUES ('a', ''), ('b', '')`); err != nil {
		t.Fatal(err)
	}
	n, err = st.CountRows("notes")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
}
