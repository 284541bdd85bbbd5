// filepath: internal/services/photo_service.go
package services

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/store"
)

var _ PhotoService = (*photoService)(nil)

// photoService handles business logic for session photos.
type photoService struct {
	Store    *store.Store
	Notifier notify.Notifier
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(s *store.Store, n notify.Notifier) *photoService {
	return &photoService{Store: s, Notifier: n}
}

func (s *photoService) GetPhoto(id string) (*models.Photo, error) {
	return s.Store.GetPhoto(id)
}

func (s *photoService) GetPhotos() ([]models.Photo, error) {
	return s.Store.GetPhotos()
}

func (s *photoService) GetSessionPhotos(sessionID string) ([]models.Photo, error) {
	return s.Store.GetSessionPhotos(sessionID)
}

// UploadPhotos registers a batch of files against a session. The batch
// is all-or-nothing.
func (s *photoService) UploadPhotos(sessionID string, files []models.UploadFile) ([]models.Photo, error) {
	if sessionID == "" || len(files) == 0 {
		s.Notifier.Notify(notify.Error("Select a session and at least one photo"))
		return nil, fmt.Errorf("session and files are required: %w", ErrValidation)
	}

	photos, err := s.Store.UploadPhotos(sessionID, files)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to upload photos"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success(fmt.Sprintf("%d photo(s) uploaded successfully!", len(photos))))
	return photos, nil
}

func (s *photoService) UpdatePhotoCategory(id, category string) (*models.Photo, error) {
	if category == "" {
		category = models.DefaultPhotoCategory
	}

	photo, err := s.Store.UpdatePhotoCategory(id, category)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to update photo category"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Photo category updated!"))
	return photo, nil
}

func (s *photoService) DeletePhoto(id string) error {
	if err := s.Store.DeletePhoto(id); err != nil {
		s.Notifier.Notify(notify.Error("Failed to delete photo"))
		return err
	}
	s.Notifier.Notify(notify.Success("Photo deleted successfully!"))
	return nil
}
