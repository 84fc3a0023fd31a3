package companylist

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/aleister1102/offerguard/internal/common/errorwrapper"
	"github.com/aleister1102/offerguard/internal/config"
	_ "modernc.org/sqlite"
)

var sqlIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads company names from one column of a SQLite table.
type SQLiteSource struct {
	path   string
	table  string
	column string
}

// NewSQLiteSource validates the identifiers, which are interpolated into the
// query.
func NewSQLiteSource(path, table, column string) (*SQLiteSource, error) {
	if table == "" {
		table = config.DefaultCompanyListSQLiteTable
	}
	if column == "" {
		column = config.DefaultCompanyListSQLiteColumn
	}
	if !sqlIdentifier.MatchString(table) {
		return nil, errorwrapper.NewValidationError("sqlite_table", table, "not a valid SQL identifier")
	}
	if !sqlIdentifier.MatchString(column) {
		return nil, errorwrapper.NewValidationError("sqlite_column", column, "not a valid SQL identifier")
	}
	return &SQLiteSource{path: path, table: table, column: column}, nil
}

func (s *SQLiteSource) Load(ctx context.Context) ([]string, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", s.path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", s.path, err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL", s.column, s.table, s.column)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query company list table %s: %w", s.table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan company name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read company list rows: %w", err)
	}
	return names, nil
}

func (s *SQLiteSource) Describe() string { return "sqlite:" + s.path + "#" + s.table }
