package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord is the outcome of one finished run.
type RunRecord struct {
	ID           uuid.UUID
	GameID       string
	Score        int
	LevelReached int // dungeon level the run ended on
	PlayerLevel  int
	Won          bool
	Ticks        uint64
	CreatedAt    time.Time
}

// SaveRun stores a finished run. A zero ID or CreatedAt is filled in, and
// the stored record is returned.
func (s *Store) SaveRun(rec RunRecord) (RunRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.CreatedAt = rec.CreatedAt.UTC()

	won := 0
	if rec.Won {
		won = 1
	}
	_, err := s.db.Exec(
		s.rebind(`INSERT INTO runs (id, game_id, score, level_reached, player_level, won, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		rec.ID.String(), rec.GameID, rec.Score, rec.LevelReached, rec.PlayerLevel, won,
		int64(rec.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		rec.CreatedAt,
	)
	if err != nil {
		return rec, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return rec, nil
}

// RecentRuns returns the latest runs for a mode, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		s.rebind(`SELECT id, game_id, score, level_reached, player_level, won, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`),
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r         RunRecord
			id        string
			won       int
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&id, &r.GameID, &r.Score, &r.LevelReached, &r.PlayerLevel, &won, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.Won = won != 0
		r.Ticks = uint64(max(ticks, 0)) //#nosec G115 -- clamped non-negative
		r.CreatedAt = scanTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
