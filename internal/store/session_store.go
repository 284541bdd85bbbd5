// filepath: internal/store/session_store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"lumina/internal/models"
)

// AddSession creates a session for an existing client. The photo count
// starts at zero and is maintained by the store from then on.
func (s *Store) AddSession(payload models.SessionCreatePayload) (*models.Session, error) {
	var exists int
	err := s.DB.QueryRow(`SELECT COUNT(1) FROM clients WHERE id = ?`, payload.ClientID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("client %s: %w", payload.ClientID, ErrInvalidReference)
	}

	status := payload.Status
	if status == "" {
		status = models.StatusScheduled
	}

	session := &models.Session{
		ID:         s.Gen.NextID(),
		ClientID:   payload.ClientID,
		Name:       payload.Name,
		Date:       payload.Date,
		Type:       payload.Type,
		Status:     status,
		PhotoCount: 0,
	}

	query := `INSERT INTO sessions (id, client_id, name, date, type, status, photo_count) VALUES (?, ?, ?, ?, ?, ?, 0)`
	if _, err := s.DB.Exec(query, session.ID, session.ClientID, session.Name, session.Date, session.Type, session.Status); err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}
	return session, nil
}

// GetSession fetches a single session by id.
func (s *Store) GetSession(id string) (*models.Session, error) {
	row := s.DB.QueryRow(`SELECT id, client_id, name, date, type, status, photo_count FROM sessions WHERE id = ?`, id)
	var sess models.Session
	err := row.Scan(&sess.ID, &sess.ClientID, &sess.Name, &sess.Date, &sess.Type, &sess.Status, &sess.PhotoCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return &sess, nil
}

// GetSessions lists all sessions in creation order.
func (s *Store) GetSessions() ([]models.Session, error) {
	return s.querySessions(squirrel.Eq{})
}

// GetSessionsForClient lists a client's sessions in creation order.
func (s *Store) GetSessionsForClient(clientID string) ([]models.Session, error) {
	return s.querySessions(squirrel.Eq{"client_id": clientID})
}

func (s *Store) querySessions(where squirrel.Eq) ([]models.Session, error) {
	builder := s.Builder.
		Select("id", "client_id", "name", "date", "type", "status", "photo_count").
		From("sessions").
		OrderBy("id")
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build session query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(&sess.ID, &sess.ClientID, &sess.Name, &sess.Date, &sess.Type, &sess.Status, &sess.PhotoCount); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// UpdateSession applies a partial update. The client reference and the
// derived photo count are not settable.
func (s *Store) UpdateSession(id string, payload models.SessionUpdatePayload) (*models.Session, error) {
	if _, err := s.GetSession(id); err != nil {
		return nil, err
	}

	update := s.Builder.Update("sessions").Where(squirrel.Eq{"id": id})
	changed := false
	if payload.Name != nil {
		update = update.Set("name", *payload.Name)
		changed = true
	}
	if payload.Date != nil {
		update = update.Set("date", *payload.Date)
		changed = true
	}
	if payload.Type != nil {
		update = update.Set("type", *payload.Type)
		changed = true
	}
	if payload.Status != nil {
		update = update.Set("status", *payload.Status)
		changed = true
	}
	if changed {
		query, args, err := update.ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build update query: %w", err)
		}
		if _, err := s.DB.Exec(query, args...); err != nil {
			return nil, fmt.Errorf("failed to update session: %w", err)
		}
	}
	return s.GetSession(id)
}

// DeleteSession removes a session and every photo belonging to it in one
// transaction.
func (s *Store) DeleteSession(id string) error {
	if _, err := s.GetSession(id); err != nil {
		return err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM photos WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session photos: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session delete: %w", err)
	}
	return nil
}

// SessionDeletionImpact reports how many photos deleting the session
// would remove.
func (s *Store) SessionDeletionImpact(id string) (*models.DeletionImpact, error) {
	if _, err := s.GetSession(id); err != nil {
		return nil, err
	}
	impact := &models.DeletionImpact{}
	err := s.DB.QueryRow(`SELECT COUNT(1) FROM photos WHERE session_id = ?`, id).Scan(&impact.Photos)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	return impact, nil
}
