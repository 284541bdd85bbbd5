// filepath: internal/store/dbtx.go
package store

import (
	"database/sql"
	"fmt"
)

// Tx wraps sql.Tx with helpers for the derived counters. All counter
// maintenance goes through these so the floor-at-zero rule lives in one
// place.
type Tx struct {
	*sql.Tx
}

func (s *Store) BeginTx() (*Tx, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Tx{tx}, nil
}

// addSessionPhotoCountInTx adjusts a session's photo count by delta,
// never letting it drop below zero.
func (tx *Tx) addSessionPhotoCountInTx(sessionID string, delta int) error {
	query := `UPDATE sessions SET photo_count = MAX(photo_count + ?, 0) WHERE id = ?`
	if _, err := tx.Exec(query, delta, sessionID); err != nil {
		return fmt.Errorf("failed to update session photo count: %w", err)
	}
	return nil
}

// addAlbumCountInTx adjusts an album's photo count by delta, never
// letting it drop below zero.
func (tx *Tx) addAlbumCountInTx(albumID string, delta int) error {
	query := `UPDATE albums SET photo_count = MAX(photo_count + ?, 0) WHERE id = ?`
	if _, err := tx.Exec(query, delta, albumID); err != nil {
		return fmt.Errorf("failed to update album count: %w", err)
	}
	return nil
}
