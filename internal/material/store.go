// Package material provides the persisted thermal property table.
package material

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/heatrod/internal/thermal"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS thermal_prop (
    material      TEXT PRIMARY KEY,
    conductivity  REAL NOT NULL,  -- W/m·K
    diffusivity   REAL NOT NULL,  -- mm²/s
    specific_heat REAL NOT NULL,  -- J/kg·K
    effusivity    REAL NOT NULL,  -- W·s^0.5/m²·K
    density       REAL NOT NULL   -- kg/m³
);
`

// NotFoundError reports a material absent from the table, carrying the
// known material names so callers can surface them as remediation.
type NotFoundError struct {
	Material string
	Known    []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("material: %q not found (known: %s)", e.Material, strings.Join(e.Known, ", "))
}

// Store is a sqlite-backed property table. Open it once, inject it
// where lookups are needed, and Close it when the caller is done; no
// code path opens a connection per query.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the property database at path, initializes
// the schema and seeds the standard dataset when the table is empty.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("material: open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite works best with a single writer

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("material: initialize schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedIfEmpty(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM thermal_prop`).Scan(&count); err != nil {
		return fmt.Errorf("material: count rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("material: begin seed: %w", err)
	}
	for _, row := range seedData {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO thermal_prop VALUES (?, ?, ?, ?, ?, ?)`,
			row.name, row.conductivity, row.diffusivity,
			row.specificHeat, row.effusivity, row.density,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("material: seed %q: %w", row.name, err)
		}
	}
	return tx.Commit()
}

// Lookup resolves a material name case-insensitively and returns the
// stored property tuple. A miss returns *NotFoundError with the full
// list of valid names.
func (s *Store) Lookup(ctx context.Context, name string) (thermal.MaterialProperties, error) {
	var p thermal.MaterialProperties
	err := s.db.QueryRowContext(ctx,
		`SELECT conductivity, diffusivity, specific_heat, effusivity, density
		 FROM thermal_prop WHERE lower(material) = lower(?)`, name,
	).Scan(&p.Conductivity, &p.Diffusivity, &p.SpecificHeat, &p.Effusivity, &p.Density)
	if errors.Is(err, sql.ErrNoRows) {
		known, nerr := s.Names(ctx)
		if nerr != nil {
			return thermal.MaterialProperties{}, nerr
		}
		return thermal.MaterialProperties{}, &NotFoundError{Material: name, Known: known}
	}
	if err != nil {
		return thermal.MaterialProperties{}, fmt.Errorf("material: lookup %q: %w", name, err)
	}
	return p, nil
}

// Entry is one property table row.
type Entry struct {
	Name  string
	Props thermal.MaterialProperties
}

// All returns the full property table sorted by material name.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT material, conductivity, diffusivity, specific_heat, effusivity, density
		 FROM thermal_prop ORDER BY material`)
	if err != nil {
		return nil, fmt.Errorf("material: list table: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Props.Conductivity, &e.Props.Diffusivity,
			&e.Props.SpecificHeat, &e.Props.Effusivity, &e.Props.Density); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Names returns every material in the table, sorted.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT material FROM thermal_prop`)
	if err != nil {
		return nil, fmt.Errorf("material: list names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
