// Package telemetry persists and streams the dispatch core's observability
// surface: IC state transitions and per-dispatch hit/miss events. The
// interpreter itself stays ephemeral — this package only ever writes
// diagnostic exhaust about past runs, never anything the dispatch core
// reads back.
package telemetry

import (
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"rubycore/internal/ic"
)

// Store records IC transitions and dispatch hit/miss events to a SQLite
// database for post-run inspection (e.g. "which call site went
// Megamorphic, and when").
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open creates/attaches to a SQLite database at path ("" gets an
// in-process, file-backed scratch DB at the OS temp dir is the caller's
// choice — Store does not default the path) and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ic_transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			site_id TEXT NOT NULL,
			method TEXT NOT NULL,
			from_state TEXT NOT NULL,
			to_state TEXT NOT NULL,
			recorded_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS dispatch_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			site_id TEXT NOT NULL,
			method TEXT NOT NULL,
			class TEXT NOT NULL,
			hit INTEGER NOT NULL,
			recorded_at INTEGER NOT NULL
		);
	`)
	return err
}

// OnTransition implements dispatch.Observer.
func (s *Store) OnTransition(siteID, method string, from, to ic.StateType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.db.Exec(
		`INSERT INTO ic_transitions (site_id, method, from_state, to_state, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		siteID, method, from.String(), to.String(), time.Now().Unix(),
	)
}

// OnDispatch implements dispatch.Observer.
func (s *Store) OnDispatch(siteID, method, class string, hit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hitInt := 0
	if hit {
		hitInt = 1
	}
	_, _ = s.db.Exec(
		`INSERT INTO dispatch_events (site_id, method, class, hit, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		siteID, method, class, hitInt, time.Now().Unix(),
	)
}

// MegamorphicSites returns the distinct call sites that ever reached
// Megamorphic, most recent first — the query a developer runs after a slow
// test run to find dispatch hot spots worth a closer look.
func (s *Store) MegamorphicSites() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query(
		`SELECT DISTINCT site_id FROM ic_transitions WHERE to_state = 'Megamorphic' ORDER BY recorded_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, err
		}
		out = append(out, site)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
