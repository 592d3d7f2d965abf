package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// LevelStats contains aggregated results for one level.
type LevelStats struct {
	LevelID    string
	Attempts   int
	Wins       int
	Losses     int
	BestTicks  int // Fewest ticks in a won attempt, 0 if never won
	Coins      int // Coins collected over all attempts
	LastPlayed time.Time
}

// SaveLevelResult records one finished attempt at a level.
// It implements platformer.ResultSink.
func (s *Store) SaveLevelResult(r platformer.LevelResult) error {
	_, err := s.db.Exec(
		`INSERT INTO level_results (level_id, outcome, ticks, coins)
		 VALUES (?, ?, ?, ?)`,
		r.LevelID, r.Outcome.String(), int64(r.Ticks), r.Coins, //#nosec G115 -- tick counts fit in int64
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level result: %w", err)
	}
	return nil
}

// Ensure Store implements ResultSink
var _ platformer.ResultSink = (*Store)(nil)

const levelStatsQuery = `
	SELECT level_id,
	       COUNT(*),
	       COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
	       COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
	       COALESCE(MIN(CASE WHEN outcome = 'won' THEN ticks END), 0),
	       COALESCE(SUM(coins), 0),
	       MAX(created_at)
	FROM level_results`

// LevelStats retrieves aggregated results for one level.
// A level that was never played has zero stats.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	row := s.db.QueryRow(levelStatsQuery+` WHERE level_id = ? GROUP BY level_id`, levelID)

	stats, err := scanLevelStats(row)
	if isNoRows(err) {
		return &LevelStats{LevelID: levelID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(levelStatsQuery + ` GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		st, err := scanLevelStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[st.LevelID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// BestClearTicks returns the fastest win for a level.
// ok is false if the level was never won.
func (s *Store) BestClearTicks(levelID string) (ticks int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(ticks) FROM level_results WHERE level_id = ? AND outcome = 'won'",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best clear: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLevelStats(r rowScanner) (*LevelStats, error) {
	var st LevelStats
	var lastPlayed any
	if err := r.Scan(&st.LevelID, &st.Attempts, &st.Wins, &st.Losses, &st.BestTicks, &st.Coins, &lastPlayed); err != nil {
		return nil, err
	}
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}
