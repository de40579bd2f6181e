package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/AryavP/AntBridge/internal/feed"
	"github.com/AryavP/AntBridge/internal/game"
)

// GameRow is one finished game in the archive.
type GameRow struct {
	GameID     string
	Winner     string
	WinnerName string
	Players    int
	FinishedAt time.Time
}

// ScoreRow is one player's final standing in a finished game.
type ScoreRow struct {
	GameID   string
	PlayerID string
	Name     string
	VP       int
}

// Store archives finished games in SQLite.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database and runs migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// WAL mode for better concurrent reads
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			game_id     TEXT PRIMARY KEY,
			winner      TEXT NOT NULL,
			winner_name TEXT NOT NULL,
			players     INTEGER NOT NULL,
			state_json  TEXT NOT NULL,
			feed_json   TEXT NOT NULL,
			finished_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS scores (
			game_id   TEXT NOT NULL REFERENCES games(game_id),
			player_id TEXT NOT NULL,
			name      TEXT NOT NULL,
			vp        INTEGER NOT NULL,
			PRIMARY KEY (game_id, player_id)
		);
	`)
	return err
}

// SaveGame records a finished game: the final snapshot, the activity feed
// and each player's final score.
func (s *Store) SaveGame(gs *game.GameState, events []feed.Event) error {
	if gs.Status != game.StatusFinished {
		return fmt.Errorf("game %s is not finished", gs.ID)
	}
	stateJSON, err := game.Encode(gs)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	feedJSON, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	winnerName := gs.Winner
	if p := gs.Player(gs.Winner); p != nil {
		winnerName = p.Name
	}
	if _, err := tx.Exec(
		"INSERT INTO games (game_id, winner, winner_name, players, state_json, feed_json) VALUES (?, ?, ?, ?, ?, ?)",
		gs.ID, gs.Winner, winnerName, len(gs.Seats), string(stateJSON), string(feedJSON),
	); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	for _, id := range gs.Seats {
		p := gs.Players[id]
		if _, err := tx.Exec(
			"INSERT INTO scores (game_id, player_id, name, vp) VALUES (?, ?, ?, ?)",
			gs.ID, id, p.Name, p.TotalVP(),
		); err != nil {
			return fmt.Errorf("insert score: %w", err)
		}
	}
	return tx.Commit()
}

// GetGame retrieves one archived game.
func (s *Store) GetGame(gameID string) (*GameRow, error) {
	row := s.db.QueryRow(
		"SELECT game_id, winner, winner_name, players, finished_at FROM games WHERE game_id = ?", gameID)
	var gr GameRow
	if err := row.Scan(&gr.GameID, &gr.Winner, &gr.WinnerName, &gr.Players, &gr.FinishedAt); err != nil {
		return nil, err
	}
	return &gr, nil
}

// GetState rebuilds the final game state of an archived game.
func (s *Store) GetState(gameID string) (*game.GameState, error) {
	var stateJSON string
	if err := s.db.QueryRow("SELECT state_json FROM games WHERE game_id = ?", gameID).Scan(&stateJSON); err != nil {
		return nil, err
	}
	return game.Decode([]byte(stateJSON))
}

// ListGames returns archived games, most recent first.
func (s *Store) ListGames(limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		"SELECT game_id, winner, winner_name, players, finished_at FROM games ORDER BY finished_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []GameRow
	for rows.Next() {
		var gr GameRow
		if err := rows.Scan(&gr.GameID, &gr.Winner, &gr.WinnerName, &gr.Players, &gr.FinishedAt); err != nil {
			return nil, err
		}
		result = append(result, gr)
	}
	return result, rows.Err()
}

// Scoreboard aggregates total VP per player across all archived games,
// highest first.
func (s *Store) Scoreboard() ([]ScoreRow, error) {
	rows, err := s.db.Query(`
		SELECT '' AS game_id, sc.player_id, sc.name, SUM(sc.vp) AS total_vp
		FROM scores sc
		GROUP BY sc.player_id, sc.name
		ORDER BY total_vp DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ScoreRow
	for rows.Next() {
		var sr ScoreRow
		if err := rows.Scan(&sr.GameID, &sr.PlayerID, &sr.Name, &sr.VP); err != nil {
			return nil, err
		}
		result = append(result, sr)
	}
	return result, rows.Err()
}

// GameScores returns the final standings of one archived game.
func (s *Store) GameScores(gameID string) ([]ScoreRow, error) {
	rows, err := s.db.Query(
		"SELECT game_id, player_id, name, vp FROM scores WHERE game_id = ? ORDER BY vp DESC", gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []ScoreRow
	for rows.Next() {
		var sr ScoreRow
		if err := rows.Scan(&sr.GameID, &sr.PlayerID, &sr.Name, &sr.VP); err != nil {
			return nil, err
		}
		result = append(result, sr)
	}
	return result, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
