// filepath: internal/store/album_store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lumina/internal/models"
)

// AddAlbum creates an empty portfolio album.
func (s *Store) AddAlbum(name string) (*models.Album, error) {
	album := &models.Album{
		ID:        s.Gen.NextID(),
		Name:      name,
		Count:     0,
		Photos:    []models.AlbumPhoto{},
		CreatedAt: time.Now().UTC(),
	}
	query := `INSERT INTO albums (id, name, photo_count, created_at) VALUES (?, ?, 0, ?)`
	if _, err := s.DB.Exec(query, album.ID, album.Name, album.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert album: %w", err)
	}
	return album, nil
}

// GetAlbum fetches an album with its photos. The virtual aggregate album
// is recomputed on each read; it is never stored.
func (s *Store) GetAlbum(id string) (*models.Album, error) {
	if id == models.AllAlbumID {
		return s.allAlbum()
	}

	row := s.DB.QueryRow(`SELECT id, name, photo_count, created_at FROM albums WHERE id = ?`, id)
	album, err := scanAlbum(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	photos, err := s.albumPhotos(id)
	if err != nil {
		return nil, err
	}
	album.Photos = photos
	return album, nil
}

// GetAlbums lists the stored albums in creation order; the virtual
// aggregate album is not included.
func (s *Store) GetAlbums() ([]models.Album, error) {
	rows, err := s.DB.Query(`SELECT id, name, photo_count, created_at FROM albums ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	albums := []models.Album{}
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Count, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		a.Photos = []models.AlbumPhoto{}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byAlbum, err := s.allAlbumPhotosGrouped()
	if err != nil {
		return nil, err
	}
	for i := range albums {
		if photos, ok := byAlbum[albums[i].ID]; ok {
			albums[i].Photos = photos
		}
	}
	return albums, nil
}

// allAlbum builds the virtual aggregate album: every stored album's
// photos concatenated in album creation order.
func (s *Store) allAlbum() (*models.Album, error) {
	albums, err := s.GetAlbums()
	if err != nil {
		return nil, err
	}

	all := &models.Album{
		ID:     models.AllAlbumID,
		Name:   models.AllAlbumName,
		Photos: []models.AlbumPhoto{},
	}
	for _, a := range albums {
		all.Photos = append(all.Photos, a.Photos...)
	}
	all.Count = len(all.Photos)
	return all, nil
}

// UpdateAlbum renames an album. The virtual aggregate album is derived
// and cannot be mutated.
func (s *Store) UpdateAlbum(id string, payload models.AlbumUpdatePayload) (*models.Album, error) {
	if id == models.AllAlbumID {
		return nil, fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	if _, err := s.GetAlbum(id); err != nil {
		return nil, err
	}
	if payload.Name != nil {
		if _, err := s.DB.Exec(`UPDATE albums SET name = ? WHERE id = ?`, *payload.Name, id); err != nil {
			return nil, fmt.Errorf("failed to update album: %w", err)
		}
	}
	return s.GetAlbum(id)
}

// DeleteAlbum removes an album and its photos in one transaction.
func (s *Store) DeleteAlbum(id string) error {
	if id == models.AllAlbumID {
		return fmt.Errorf("album %s: %w", id, ErrNotFound)
	}
	if _, err := s.GetAlbum(id); err != nil {
		return err
	}

	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM album_photos WHERE album_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete album photos: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM albums WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete album: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit album delete: %w", err)
	}
	return nil
}

// AddAlbumPhoto appends a photo to a stored album and bumps its count,
// atomically. The virtual aggregate album cannot be targeted.
func (s *Store) AddAlbumPhoto(albumID string, payload models.AlbumPhotoPayload) (*models.AlbumPhoto, error) {
	if albumID == models.AllAlbumID {
		return nil, fmt.Errorf("album %s: %w", albumID, ErrInvalidReference)
	}

	var exists int
	err := s.DB.QueryRow(`SELECT COUNT(1) FROM albums WHERE id = ?`, albumID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check album: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("album %s: %w", albumID, ErrInvalidReference)
	}

	tx, err := s.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	photo := &models.AlbumPhoto{
		ID:      s.Gen.NextID(),
		URL:     payload.URL,
		Title:   payload.Title,
		Session: payload.Session,
	}
	query := `INSERT INTO album_photos (id, album_id, url, title, session_label) VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.Exec(query, photo.ID, albumID, photo.URL, photo.Title, photo.Session); err != nil {
		return nil, fmt.Errorf("failed to insert album photo: %w", err)
	}
	if err := tx.addAlbumCountInTx(albumID, 1); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit album photo add: %w", err)
	}
	return photo, nil
}

// DeleteAlbumPhoto removes a photo from a stored album and decrements
// its count, atomically.
func (s *Store) DeleteAlbumPhoto(albumID, photoID string) error {
	if albumID == models.AllAlbumID {
		return fmt.Errorf("album %s: %w", albumID, ErrNotFound)
	}

	var exists int
	err := s.DB.QueryRow(`SELECT COUNT(1) FROM album_photos WHERE id = ? AND album_id = ?`, photoID, albumID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check album photo: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("album photo %s: %w", photoID, ErrNotFound)
	}

	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM album_photos WHERE id = ? AND album_id = ?`, photoID, albumID); err != nil {
		return fmt.Errorf("failed to delete album photo: %w", err)
	}
	if err := tx.addAlbumCountInTx(albumID, -1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit album photo delete: %w", err)
	}
	return nil
}

func (s *Store) albumPhotos(albumID string) ([]models.AlbumPhoto, error) {
	rows, err := s.DB.Query(`SELECT id, url, title, session_label FROM album_photos WHERE album_id = ? ORDER BY id`, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to query album photos: %w", err)
	}
	defer rows.Close()
	return scanAlbumPhotos(rows)
}

func (s *Store) allAlbumPhotosGrouped() (map[string][]models.AlbumPhoto, error) {
	rows, err := s.DB.Query(`SELECT id, album_id, url, title, session_label FROM album_photos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query album photos: %w", err)
	}
	defer rows.Close()

	byAlbum := map[string][]models.AlbumPhoto{}
	for rows.Next() {
		var p models.AlbumPhoto
		var albumID string
		if err := rows.Scan(&p.ID, &albumID, &p.URL, &p.Title, &p.Session); err != nil {
			return nil, fmt.Errorf("failed to scan album photo: %w", err)
		}
		byAlbum[albumID] = append(byAlbum[albumID], p)
	}
	return byAlbum, rows.Err()
}

func scanAlbumPhotos(rows *sql.Rows) ([]models.AlbumPhoto, error) {
	photos := []models.AlbumPhoto{}
	for rows.Next() {
		var p models.AlbumPhoto
		if err := rows.Scan(&p.ID, &p.URL, &p.Title, &p.Session); err != nil {
			return nil, fmt.Errorf("failed to scan album photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func scanAlbum(row *sql.Row) (*models.Album, error) {
	var a models.Album
	err := row.Scan(&a.ID, &a.Name, &a.Count, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan album: %w", err)
	}
	a.Photos = []models.AlbumPhoto{}
	return &a, nil
}
