// filepath: internal/store/photo_store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dustin/go-humanize"

	"lumina/internal/models"
)

const photoColumns = "id, session_id, filename, url, category, uploaded_at, size_bytes, size"

// UploadPhotos registers a batch of files against an existing session.
// The whole batch commits atomically together with the session's photo
// count; returned photos are in input order.
func (s *Store) UploadPhotos(sessionID string, files []models.UploadFile) ([]models.Photo, error) {
	if _, err := s.GetSession(sessionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrInvalidReference)
		}
		return nil, err
	}
	if len(files) == 0 {
		return []models.Photo{}, nil
	}

	tx, err := s.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	photos := make([]models.Photo, 0, len(files))
	for _, f := range files {
		size := f.ByteLength
		if size < 0 {
			size = 0
		}
		photo := models.Photo{
			ID:         s.Gen.NextID(),
			SessionID:  sessionID,
			Filename:   f.Filename,
			URL:        f.ContentRef,
			Category:   models.DefaultPhotoCategory,
			UploadedAt: now,
			SizeBytes:  size,
			Size:       humanize.Bytes(uint64(size)),
		}
		query := `INSERT INTO photos (` + photoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.Exec(query, photo.ID, photo.SessionID, photo.Filename, photo.URL, photo.Category, photo.UploadedAt, photo.SizeBytes, photo.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to insert photo: %w", err)
		}
		photos = append(photos, photo)
	}

	if err := tx.addSessionPhotoCountInTx(sessionID, len(files)); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit photo upload: %w", err)
	}
	return photos, nil
}

// GetPhoto fetches a single photo by id.
func (s *Store) GetPhoto(id string) (*models.Photo, error) {
	row := s.DB.QueryRow(`SELECT `+photoColumns+` FROM photos WHERE id = ?`, id)
	var p models.Photo
	err := row.Scan(&p.ID, &p.SessionID, &p.Filename, &p.URL, &p.Category, &p.UploadedAt, &p.SizeBytes, &p.Size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("photo %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan photo: %w", err)
	}
	return &p, nil
}

// GetPhotos lists every photo in upload order.
func (s *Store) GetPhotos() ([]models.Photo, error) {
	return s.queryPhotos(squirrel.Eq{})
}

// GetSessionPhotos lists a session's photos in upload order.
func (s *Store) GetSessionPhotos(sessionID string) ([]models.Photo, error) {
	return s.queryPhotos(squirrel.Eq{"session_id": sessionID})
}

// GetPhotosByID fetches the given photos in upload order. Ids that do
// not resolve are skipped.
func (s *Store) GetPhotosByID(ids []string) ([]models.Photo, error) {
	if len(ids) == 0 {
		return []models.Photo{}, nil
	}
	return s.queryPhotos(squirrel.Eq{"id": ids})
}

// GetClientPhotos lists every photo across a client's sessions in
// upload order. This is the set an access code unlocks.
func (s *Store) GetClientPhotos(clientID string) ([]models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE session_id IN (SELECT id FROM sessions WHERE client_id = ?) ORDER BY id`
	rows, err := s.DB.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query client photos: %w", err)
	}
	defer rows.Close()
	return scanPhotoRows(rows)
}

func (s *Store) queryPhotos(where squirrel.Eq) ([]models.Photo, error) {
	builder := s.Builder.
		Select("id", "session_id", "filename", "url", "category", "uploaded_at", "size_bytes", "size").
		From("photos").
		OrderBy("id")
	if len(where) > 0 {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build photo query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()
	return scanPhotoRows(rows)
}

func scanPhotoRows(rows *sql.Rows) ([]models.Photo, error) {
	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Filename, &p.URL, &p.Category, &p.UploadedAt, &p.SizeBytes, &p.Size); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// UpdatePhotoCategory reassigns a photo's category label.
func (s *Store) UpdatePhotoCategory(id, category string) (*models.Photo, error) {
	if _, err := s.GetPhoto(id); err != nil {
		return nil, err
	}
	if _, err := s.DB.Exec(`UPDATE photos SET category = ? WHERE id = ?`, category, id); err != nil {
		return nil, fmt.Errorf("failed to update photo category: %w", err)
	}
	return s.GetPhoto(id)
}

// DeletePhoto removes a photo and decrements its session's photo count
// in one transaction.
func (s *Store) DeletePhoto(id string) error {
	photo, err := s.GetPhoto(id)
	if err != nil {
		return err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM photos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if err := tx.addSessionPhotoCountInTx(photo.SessionID, -1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit photo delete: %w", err)
	}
	return nil
}
