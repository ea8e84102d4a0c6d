// Package storage provides SQLite-based persistence for play session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished-session counters are stored. Board arrangements are not.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session statistics.
type Store struct {
	db *sql.DB
}

// Session is one recorded play session.
type Session struct {
	ID             int64
	GameID         string
	Dimension      int
	Moves          int
	Clicks         int
	DragsCommitted int
	DragsCancelled int
	Solved         bool // Board was in order when the session ended
	Duration       int  // Duration in seconds
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			dimension INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			clicks INTEGER NOT NULL DEFAULT 0,
			drags_committed INTEGER NOT NULL DEFAULT 0,
			drags_cancelled INTEGER NOT NULL DEFAULT 0,
			solved INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.GameID == "" {
		return 0, errors.New("storage: session has no game id")
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (game_id, dimension, moves, clicks, drags_committed, drags_cancelled, solved, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.GameID,
		sess.Dimension,
		sess.Moves,
		sess.Clicks,
		sess.DragsCommitted,
		sess.DragsCancelled,
		sess.Solved,
		sess.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty gameID returns sessions of every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, dimension, moves, clicks, drags_committed, drags_cancelled,
		        solved, duration_secs, created_at
		 FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.GameID,
			&sess.Dimension,
			&sess.Moves,
			&sess.Clicks,
			&sess.DragsCommitted,
			&sess.DragsCancelled,
			&sess.Solved,
			&sess.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSessions deletes all sessions for the given game.
func (s *Store) ClearSessions(gameID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID        string
	Sessions      int
	SolvedCount   int     // Sessions that ended in order after at least one move
	BestMoves     int     // Fewest moves among those sessions, 0 if none
	TotalMoves    int64
	AvgMoves      float64
	TotalDuration int64 // Seconds
	LastPlayed    time.Time
}

const statsColumns = `game_id, COUNT(*),
	COALESCE(SUM(CASE WHEN solved = 1 AND moves > 0 THEN 1 ELSE 0 END), 0),
	COALESCE(MIN(CASE WHEN solved = 1 AND moves > 0 THEN moves END), 0),
	COALESCE(SUM(moves), 0), COALESCE(AVG(moves), 0),
	COALESCE(SUM(duration_secs), 0), MAX(created_at)`

// GameStats retrieves aggregated statistics for a specific game.
// A game with no sessions yields zero stats.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM sessions WHERE game_id = ? GROUP BY game_id`,
		gameID,
	)

	stats, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &GameStats{GameID: gameID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return stats, nil
}

// AllGamesStats retrieves statistics for all games that have been played.
func (s *Store) AllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM sessions GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all[stats.GameID] = stats
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*GameStats, error) {
	var st GameStats
	var lastPlayed any
	if err := row.Scan(
		&st.GameID,
		&st.Sessions,
		&st.SolvedCount,
		&st.BestMoves,
		&st.TotalMoves,
		&st.AvgMoves,
		&st.TotalDuration,
		&lastPlayed,
	); err != nil {
		return nil, err
	}
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
