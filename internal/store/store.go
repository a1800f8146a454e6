// Package store persists the literature dataset in a relational table named
// degraders. The schema is derived from the dataset's field names on every
// rebuild, so new dataset revisions never require a migration.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/speNillusion/fungis-boosters/internal/dataset"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens the degradation database.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:degradation_data.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/degradation?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// DegraderStore reads and rebuilds the degraders table.
type DegraderStore struct {
	db     *sql.DB
	driver Driver
}

func NewDegraderStore(db *sql.DB, driver Driver) *DegraderStore {
	return &DegraderStore{db: db, driver: driver}
}

// ColumnInfo describes one column of the degraders table.
type ColumnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FieldCount is a value/frequency pair from a GROUP BY query.
type FieldCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Rebuild drops and recreates the degraders table from the dataset records,
// typing Year as INTEGER and everything else as TEXT. The whole run is one
// transaction.
func (s *DegraderStore) Rebuild(ctx context.Context, records []dataset.Record) error {
	cols := dataset.Columns(records)
	if len(cols) == 0 {
		return fmt.Errorf("dataset has no columns")
	}

	defs := make([]string, 0, len(cols))
	for _, c := range cols {
		typ := "TEXT"
		if c == "Year" {
			typ = "INTEGER"
		}
		defs = append(defs, c+" "+typ)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS degraders`); err != nil {
		return fmt.Errorf("drop degraders: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE TABLE degraders (`+strings.Join(defs, ", ")+`)`); err != nil {
		return fmt.Errorf("create degraders: %w", err)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insert := `INSERT INTO degraders (` + strings.Join(cols, ",") + `) VALUES (` + strings.Join(placeholders, ",") + `)`

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		args := make([]any, len(cols))
		for i, c := range cols {
			v := r.String(c)
			if c == "Year" {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					args[i] = n
				} else {
					args[i] = nil
				}
				continue
			}
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return tx.Commit()
}

func (s *DegraderStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM degraders`).Scan(&n)
	return n, err
}

func (s *DegraderStore) DistinctPlastics(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "Plastic")
}

func (s *DegraderStore) DistinctMicroorganisms(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "Microorganism")
}

func (s *DegraderStore) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT `+column+` FROM degraders WHERE `+column+` IS NOT NULL AND `+column+` != ''`)
	if err != nil {
		return nil, fmt.Errorf("query distinct %s: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

func (s *DegraderStore) PlasticCounts(ctx context.Context) ([]FieldCount, error) {
	return s.counts(ctx, "Plastic")
}

func (s *DegraderStore) MicroorganismCounts(ctx context.Context) ([]FieldCount, error) {
	return s.counts(ctx, "Microorganism")
}

func (s *DegraderStore) counts(ctx context.Context, column string) ([]FieldCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) FROM degraders WHERE `+column+` IS NOT NULL AND `+column+` != ''
		 GROUP BY `+column+` ORDER BY COUNT(*) DESC, `+column+` ASC`)
	if err != nil {
		return nil, fmt.Errorf("query counts %s: %w", column, err)
	}
	defer rows.Close()

	var out []FieldCount
	for rows.Next() {
		var fc FieldCount
		if err := rows.Scan(&fc.Value, &fc.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out = append(out, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

// RecordFilter narrows Records. Empty fields match everything.
type RecordFilter struct {
	Plastic       string
	Microorganism string
}

// Records returns rows as column→value maps, optionally filtered, capped at
// limit (0 means no cap).
func (s *DegraderStore) Records(ctx context.Context, f RecordFilter, limit int) ([]map[string]string, error) {
	query := `SELECT * FROM degraders`
	var conds []string
	var args []any
	if f.Plastic != "" {
		args = append(args, f.Plastic)
		conds = append(conds, fmt.Sprintf("Plastic = $%d", len(args)))
	}
	if f.Microorganism != "" {
		args = append(args, f.Microorganism)
		conds = append(conds, fmt.Sprintf("Microorganism = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec := make(map[string]string, len(cols))
		for i, c := range cols {
			rec[c] = raw[i].String
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}

// Schema lists the degraders columns with their declared types.
func (s *DegraderStore) Schema(ctx context.Context) ([]ColumnInfo, error) {
	var query string
	switch s.driver {
	case DriverPostgres:
		query = `SELECT column_name, data_type FROM information_schema.columns
		         WHERE table_name = 'degraders' ORDER BY ordinal_position`
	default:
		query = `SELECT name, type FROM pragma_table_info('degraders')`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query schema: %w", err)
	}
	defer rows.Close()

	var out []ColumnInfo
	for rows.Next() {
		var ci ColumnInfo
		if err := rows.Scan(&ci.Name, &ci.Type); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		out = append(out, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}
