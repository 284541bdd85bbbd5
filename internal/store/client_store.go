// filepath: internal/store/client_store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"lumina/internal/logging"
	"lumina/internal/models"
)

const (
	clientCodeCachePrefix = "client_by_code_"
	maxAccessCodeAttempts = 10
)

// AddClient creates a client. When the payload carries no access code a
// fresh unique one is generated; a supplied code (seeding path) is used
// verbatim and must not collide with an existing client.
func (s *Store) AddClient(payload models.ClientCreatePayload) (*models.Client, error) {
	code := payload.AccessCode
	if code == "" {
		var err error
		code, err = s.nextFreeAccessCode()
		if err != nil {
			return nil, err
		}
	}

	client := &models.Client{
		ID:         s.Gen.NextID(),
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		CreatedAt:  time.Now().UTC(),
		AccessCode: code,
	}

	query := `INSERT INTO clients (id, name, email, phone, created_at, access_code) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := s.DB.Exec(query, client.ID, client.Name, client.Email, client.Phone, client.CreatedAt, client.AccessCode); err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}
	return client, nil
}

func (s *Store) nextFreeAccessCode() (string, error) {
	for attempt := 0; attempt < maxAccessCodeAttempts; attempt++ {
		code := s.Gen.NextAccessCode()
		var taken int
		err := s.DB.QueryRow(`SELECT COUNT(1) FROM clients WHERE access_code = ?`, code).Scan(&taken)
		if err != nil {
			return "", fmt.Errorf("failed to check access code: %w", err)
		}
		if taken == 0 {
			return code, nil
		}
		logging.Log.Debugf("Access code collision on %q, retrying", code)
	}
	return "", fmt.Errorf("could not generate a unique access code in %d attempts", maxAccessCodeAttempts)
}

// GetClient fetches a single client by id.
func (s *Store) GetClient(id string) (*models.Client, error) {
	row := s.DB.QueryRow(`SELECT id, name, email, phone, created_at, access_code FROM clients WHERE id = ?`, id)
	client, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", id, ErrNotFound)
	}
	return client, err
}

// GetClients lists all clients in creation order.
func (s *Store) GetClients() ([]models.Client, error) {
	rows, err := s.DB.Query(`SELECT id, name, email, phone, created_at, access_code FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.AccessCode); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// GetClientByAccessCode resolves an access code to its client. This sits
// on the gallery unlock path, so hits are cached.
func (s *Store) GetClientByAccessCode(code string) (*models.Client, error) {
	cacheKey := clientCodeCachePrefix + code
	if cached, found := s.Cache.Get(cacheKey); found {
		client := cached.(models.Client)
		return &client, nil
	}

	row := s.DB.QueryRow(`SELECT id, name, email, phone, created_at, access_code FROM clients WHERE access_code = ?`, code)
	client, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("access code %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	s.Cache.SetDefault(cacheKey, *client)
	return client, nil
}

// UpdateClient applies a partial update. The access code and creation
// date never change.
func (s *Store) UpdateClient(id string, payload models.ClientUpdatePayload) (*models.Client, error) {
	client, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	update := s.Builder.Update("clients").Where(squirrel.Eq{"id": id})
	changed := false
	if payload.Name != nil {
		update = update.Set("name", *payload.Name)
		changed = true
	}
	if payload.Email != nil {
		update = update.Set("email", *payload.Email)
		changed = true
	}
	if payload.Phone != nil {
		update = update.Set("phone", *payload.Phone)
		changed = true
	}
	if !changed {
		return client, nil
	}

	query, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}
	if _, err := s.DB.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.Cache.Delete(clientCodeCachePrefix + client.AccessCode)
	return s.GetClient(id)
}

// DeleteClient removes a client together with every session belonging to
// it and every photo belonging to those sessions, in one transaction.
func (s *Store) DeleteClient(id string) error {
	client, err := s.GetClient(id)
	if err != nil {
		return err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	sessionIDs, err := sessionIDsForClient(tx, id)
	if err != nil {
		return err
	}

	if len(sessionIDs) > 0 {
		query, args, err := s.Builder.Delete("photos").Where(squirrel.Eq{"session_id": sessionIDs}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build photo delete query: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to delete client photos: %w", err)
		}

		query, args, err = s.Builder.Delete("sessions").Where(squirrel.Eq{"id": sessionIDs}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build session delete query: %w", err)
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to delete client sessions: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit client delete: %w", err)
	}

	s.Cache.Delete(clientCodeCachePrefix + client.AccessCode)
	return nil
}

// ClientDeletionImpact reports how many sessions and photos deleting the
// client would cascade to, computed live.
func (s *Store) ClientDeletionImpact(id string) (*models.DeletionImpact, error) {
	if _, err := s.GetClient(id); err != nil {
		return nil, err
	}

	impact := &models.DeletionImpact{}
	err := s.DB.QueryRow(`SELECT COUNT(1) FROM sessions WHERE client_id = ?`, id).Scan(&impact.Sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	err = s.DB.QueryRow(`SELECT COUNT(1) FROM photos WHERE session_id IN (SELECT id FROM sessions WHERE client_id = ?)`, id).Scan(&impact.Photos)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}
	return impact, nil
}

func sessionIDsForClient(tx *Tx, clientID string) ([]string, error) {
	rows, err := tx.Query(`SELECT id FROM sessions WHERE client_id = ?`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanClient(row *sql.Row) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.AccessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}
	return &c, nil
}
