// filepath: internal/services/album_service.go
package services

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/store"
)

var _ AlbumService = (*albumService)(nil)

// albumService handles business logic for the public portfolio albums.
type albumService struct {
	Store    *store.Store
	Notifier notify.Notifier
}

// NewAlbumService creates a new AlbumService.
func NewAlbumService(s *store.Store, n notify.Notifier) *albumService {
	return &albumService{Store: s, Notifier: n}
}

func (s *albumService) GetAlbum(id string) (*models.Album, error) {
	return s.Store.GetAlbum(id)
}

func (s *albumService) GetAlbums() ([]models.Album, error) {
	return s.Store.GetAlbums()
}

func (s *albumService) CreateAlbum(name string) (*models.Album, error) {
	if name == "" {
		s.Notifier.Notify(notify.Error("Album name is required"))
		return nil, fmt.Errorf("album name is required: %w", ErrValidation)
	}

	album, err := s.Store.AddAlbum(name)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to add album"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Album added successfully!"))
	return album, nil
}

func (s *albumService) UpdateAlbum(id string, payload models.AlbumUpdatePayload) (*models.Album, error) {
	if payload.Name != nil && *payload.Name == "" {
		s.Notifier.Notify(notify.Error("Album name is required"))
		return nil, fmt.Errorf("album name cannot be empty: %w", ErrValidation)
	}

	album, err := s.Store.UpdateAlbum(id, payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to update album"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Album updated successfully!"))
	return album, nil
}

func (s *albumService) DeleteAlbum(id string) error {
	if err := s.Store.DeleteAlbum(id); err != nil {
		s.Notifier.Notify(notify.Error("Failed to delete album"))
		return err
	}
	s.Notifier.Notify(notify.Success("Album deleted successfully!"))
	return nil
}

func (s *albumService) AddAlbumPhoto(albumID string, payload models.AlbumPhotoPayload) (*models.AlbumPhoto, error) {
	if payload.URL == "" {
		s.Notifier.Notify(notify.Error("Photo URL is required"))
		return nil, fmt.Errorf("photo URL is required: %w", ErrValidation)
	}

	photo, err := s.Store.AddAlbumPhoto(albumID, payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to add photo"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Photo added successfully!"))
	return photo, nil
}

func (s *albumService) DeleteAlbumPhoto(albumID, photoID string) error {
	if err := s.Store.DeleteAlbumPhoto(albumID, photoID); err != nil {
		s.Notifier.Notify(notify.Error("Failed to delete photo"))
		return err
	}
	s.Notifier.Notify(notify.Success("Photo deleted successfully!"))
	return nil
}
