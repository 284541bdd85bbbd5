// filepath: internal/services/session_service.go
package services

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/store"
)

var _ SessionService = (*sessionService)(nil)

// sessionService handles business logic for shoot session management.
type sessionService struct {
	Store    *store.Store
	Notifier notify.Notifier
}

// NewSessionService creates a new SessionService.
func NewSessionService(s *store.Store, n notify.Notifier) *sessionService {
	return &sessionService{Store: s, Notifier: n}
}

func (s *sessionService) GetSession(id string) (*models.Session, error) {
	return s.Store.GetSession(id)
}

func (s *sessionService) GetSessions() ([]models.Session, error) {
	return s.Store.GetSessions()
}

func (s *sessionService) GetSessionsForClient(clientID string) ([]models.Session, error) {
	return s.Store.GetSessionsForClient(clientID)
}

func (s *sessionService) CreateSession(payload models.SessionCreatePayload) (*models.Session, error) {
	if payload.ClientID == "" || payload.Name == "" {
		s.Notifier.Notify(notify.Error("Client and session name are required"))
		return nil, fmt.Errorf("client and session name are required: %w", ErrValidation)
	}
	if payload.Status != "" && !payload.Status.Valid() {
		s.Notifier.Notify(notify.Error("Unknown session status"))
		return nil, fmt.Errorf("unknown session status %q: %w", payload.Status, ErrValidation)
	}

	session, err := s.Store.AddSession(payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to create session"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Session created successfully!"))
	return session, nil
}

func (s *sessionService) UpdateSession(id string, payload models.SessionUpdatePayload) (*models.Session, error) {
	if payload.Status != nil && !payload.Status.Valid() {
		s.Notifier.Notify(notify.Error("Unknown session status"))
		return nil, fmt.Errorf("unknown session status %q: %w", *payload.Status, ErrValidation)
	}

	session, err := s.Store.UpdateSession(id, payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to update session"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Session updated successfully!"))
	return session, nil
}

// DeleteSession removes the session and its photos atomically.
func (s *sessionService) DeleteSession(id string) error {
	if err := s.Store.DeleteSession(id); err != nil {
		s.Notifier.Notify(notify.Error("Failed to delete session"))
		return err
	}
	s.Notifier.Notify(notify.Success("Session deleted successfully!"))
	return nil
}

func (s *sessionService) DeletionImpact(id string) (*models.DeletionImpact, error) {
	return s.Store.SessionDeletionImpact(id)
}
