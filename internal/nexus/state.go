package nexus

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SyncState persists which interviews have already been delivered, so
// restarts never re-send the same document.
type SyncState struct {
	db *sqlx.DB
}

const syncStateSchema = `
CREATE TABLE IF NOT EXISTS synced_interviews (
	interview_id TEXT PRIMARY KEY,
	session_id   TEXT NOT NULL DEFAULT '',
	synced_at    TEXT NOT NULL
);
`

func OpenSyncState(dbPath string) (*SyncState, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(syncStateSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SyncState{db: db}, nil
}

func (s *SyncState) Close() error {
	return s.db.Close()
}

// SyncedIDs returns the set of interview ids already delivered.
func (s *SyncState) SyncedIDs() (map[string]struct{}, error) {
	rows, err := s.db.Query("SELECT interview_id FROM synced_interviews")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := map[string]struct{}{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// MarkSynced records a successful delivery.
func (s *SyncState) MarkSynced(interviewID, sessionID string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO synced_interviews (interview_id, session_id, synced_at) VALUES (?, ?, ?)`,
		interviewID, sessionID, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}
