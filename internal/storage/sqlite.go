// Package storage keeps the history of finished textagons games in SQLite,
// through the CGO-free modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath is where the scoreboard lives unless --db says otherwise.
const DefaultPath = "~/.textagons/scores.db"

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	score        INTEGER NOT NULL,
	words        INTEGER NOT NULL DEFAULT 0,
	longest_word TEXT    NOT NULL DEFAULT '',
	best_word    TEXT    NOT NULL DEFAULT '',
	best_score   INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
`

// Store is the scoreboard database.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	Score     int
	Words     int    // Accepted words
	Longest   string // Longest accepted word
	BestWord  string // Highest scoring word
	BestScore int
	CreatedAt time.Time
}

// resolvePath expands a leading ~ and makes sure the parent directory exists.
func resolvePath(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}
	return path, nil
}

// Open opens the scoreboard at path, creating the file and its schema on
// first use.
func Open(path string) (*Store, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. It is safe on a nil-backed store.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveGame records a finished game and returns its ID.
func (s *Store) SaveGame(g GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (score, words, longest_word, best_word, best_score)
		 VALUES (?, ?, ?, ?, ?)`,
		g.Score, g.Words, g.Longest, g.BestWord, g.BestScore,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games ordered by score descending.
// Ties go to the earlier game.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, words, longest_word, best_word, best_score, created_at
		 FROM games
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var createdAt any
		if err := rows.Scan(&g.ID, &g.Score, &g.Words, &g.Longest, &g.BestWord, &g.BestScore, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// HighScore returns the best score ever recorded, or 0.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// LongestWord returns the longest word ever played, or "" if none.
// Ties go to the earlier game.
func (s *Store) LongestWord() (string, error) {
	var word string
	err := s.db.QueryRow(
		`SELECT longest_word FROM games
		 WHERE longest_word != ''
		 ORDER BY LENGTH(longest_word) DESC, id ASC
		 LIMIT 1`,
	).Scan(&word)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query longest word: %w", err)
	}
	return word, nil
}

// ClearGames deletes every recorded game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all games.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalWords int64
	LastPlayed time.Time
}

// GetStats aggregates every recorded game.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(words), 0), MAX(created_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalWords, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
