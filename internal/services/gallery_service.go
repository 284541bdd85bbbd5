// filepath: internal/services/gallery_service.go
package services

import (
	"fmt"
	"io"
	"sync"

	"lumina/internal/gallery"
	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/store"
)

var _ GalleryService = (*galleryService)(nil)
var _ gallery.CodeResolver = (*galleryService)(nil)

// galleryService drives the client gallery: it resolves access codes
// against the store, holds the gate, and relays view-state changes to
// the active viewer. The mutex makes the gate safe for concurrent
// handlers.
type galleryService struct {
	mu       sync.Mutex
	Store    *store.Store
	Gate     *gallery.Gate
	Tokens   ViewerTokenIssuer
	Notifier notify.Notifier
}

// NewGalleryService creates a new GalleryService. The service is its
// own code resolver; codeHint is the code the rejection message
// advertises, normally the configured gallery access code.
func NewGalleryService(s *store.Store, tokens ViewerTokenIssuer, n notify.Notifier, codeHint string) *galleryService {
	svc := &galleryService{Store: s, Tokens: tokens, Notifier: n}
	svc.Gate = gallery.NewGate(svc, codeHint)
	return svc
}

// PhotosForAccessCode resolves an access code to the full photo set of
// the client it belongs to.
func (s *galleryService) PhotosForAccessCode(code string) ([]models.Photo, error) {
	client, err := s.Store.GetClientByAccessCode(code)
	if err != nil {
		return nil, err
	}
	return s.Store.GetClientPhotos(client.ID)
}

// Unlock checks the access code and, on success, opens the gallery and
// mints a viewer token.
func (s *galleryService) Unlock(email, code string) (*gallery.Viewer, string, error) {
	if email == "" {
		s.Notifier.Notify(notify.Error("Email is required"))
		return nil, "", fmt.Errorf("email is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	viewer, err := s.Gate.SubmitAccess(email, code)
	if err != nil {
		s.Notifier.Notify(notify.Error(s.Gate.RejectionMessage()))
		return nil, "", err
	}

	token, err := s.Tokens.IssueViewerToken(email)
	if err != nil {
		s.Gate.Lock()
		s.Notifier.Notify(notify.Error("Failed to unlock gallery"))
		return nil, "", err
	}

	s.Notifier.Notify(notify.Success("Gallery unlocked successfully!"))
	return viewer, token, nil
}

// Lock closes the gallery and discards the viewer's state.
func (s *galleryService) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gate.Lock()
}

// Viewer returns the active viewer, or an access error when the gallery
// is locked.
func (s *galleryService) Viewer() (*gallery.Viewer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewerLocked()
}

func (s *galleryService) viewerLocked() (*gallery.Viewer, error) {
	viewer := s.Gate.Viewer()
	if viewer == nil {
		return nil, fmt.Errorf("gallery is locked: %w", ErrAccessDenied)
	}
	return viewer, nil
}

func (s *galleryService) SetFilter(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewer, err := s.viewerLocked()
	if err != nil {
		return err
	}
	viewer.SetFilter(category)
	return nil
}

func (s *galleryService) SetViewMode(mode gallery.ViewMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewer, err := s.viewerLocked()
	if err != nil {
		return err
	}
	if err := viewer.SetViewMode(mode); err != nil {
		return fmt.Errorf("%s: %w", err, ErrValidation)
	}
	return nil
}

func (s *galleryService) ToggleSelect(photoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewer, err := s.viewerLocked()
	if err != nil {
		return err
	}
	viewer.ToggleSelect(photoID)
	return nil
}

func (s *galleryService) SelectAllToggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewer, err := s.viewerLocked()
	if err != nil {
		return err
	}
	viewer.SelectAllToggle()
	return nil
}

func (s *galleryService) ClearSelection() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	viewer, err := s.viewerLocked()
	if err != nil {
		return err
	}
	viewer.ClearSelection()
	return nil
}

// ExportSelected writes the viewer's picked photos as a ZIP archive and
// returns how many it contained.
func (s *galleryService) ExportSelected(w io.Writer) (int, error) {
	s.mu.Lock()
	viewer, err := s.viewerLocked()
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	ids := viewer.SelectedIDs()
	s.mu.Unlock()

	if len(ids) == 0 {
		s.Notifier.Notify(notify.Error("Please select at least one photo to download"))
		return 0, fmt.Errorf("no photos selected: %w", ErrValidation)
	}

	// Re-read the picks so the archive carries current records. Photos
	// deleted since the gallery was unlocked drop out here.
	photos, err := s.Store.GetPhotosByID(ids)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to build archive"))
		return 0, err
	}
	if len(photos) == 0 {
		s.Notifier.Notify(notify.Error("Please select at least one photo to download"))
		return 0, fmt.Errorf("no photos selected: %w", ErrValidation)
	}

	if err := writeArchive(w, photos); err != nil {
		s.Notifier.Notify(notify.Error("Failed to build archive"))
		return 0, err
	}
	s.Notifier.Notify(notify.Success(fmt.Sprintf("Downloading %d photo(s) as archive...", len(photos))))
	return len(photos), nil
}

// ExportFiltered writes every photo visible under the active filter as
// a ZIP archive.
func (s *galleryService) ExportFiltered(w io.Writer) (int, error) {
	s.mu.Lock()
	viewer, err := s.viewerLocked()
	if err != nil {
		s.mu.Unlock()
		return 0, err
	}
	photos := viewer.FilteredPhotos()
	s.mu.Unlock()

	if err := writeArchive(w, photos); err != nil {
		s.Notifier.Notify(notify.Error("Failed to build archive"))
		return 0, err
	}
	s.Notifier.Notify(notify.Success(fmt.Sprintf("Downloading all %d photos as archive...", len(photos))))
	return len(photos), nil
}
