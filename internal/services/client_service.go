// filepath: internal/services/client_service.go
package services

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/store"
)

var _ ClientService = (*clientService)(nil)

// clientService handles business logic for client management. Every
// mutation emits exactly one notification: success after the store
// commits, error when the operation is refused.
type clientService struct {
	Store    *store.Store
	Notifier notify.Notifier
}

// NewClientService creates a new ClientService.
func NewClientService(s *store.Store, n notify.Notifier) *clientService {
	return &clientService{Store: s, Notifier: n}
}

func (s *clientService) GetClient(id string) (*models.Client, error) {
	return s.Store.GetClient(id)
}

func (s *clientService) GetClients() ([]models.Client, error) {
	return s.Store.GetClients()
}

// CreateClient validates and stores a new client. The store issues the
// access code.
func (s *clientService) CreateClient(payload models.ClientCreatePayload) (*models.Client, error) {
	if payload.Name == "" || payload.Email == "" {
		s.Notifier.Notify(notify.Error("Name and email are required"))
		return nil, fmt.Errorf("name and email are required: %w", ErrValidation)
	}

	client, err := s.Store.AddClient(payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to add client"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Client added successfully!"))
	return client, nil
}

func (s *clientService) UpdateClient(id string, payload models.ClientUpdatePayload) (*models.Client, error) {
	if payload.Name != nil && *payload.Name == "" {
		s.Notifier.Notify(notify.Error("Name and email are required"))
		return nil, fmt.Errorf("name cannot be empty: %w", ErrValidation)
	}
	if payload.Email != nil && *payload.Email == "" {
		s.Notifier.Notify(notify.Error("Name and email are required"))
		return nil, fmt.Errorf("email cannot be empty: %w", ErrValidation)
	}

	client, err := s.Store.UpdateClient(id, payload)
	if err != nil {
		s.Notifier.Notify(notify.Error("Failed to update client"))
		return nil, err
	}
	s.Notifier.Notify(notify.Success("Client updated successfully!"))
	return client, nil
}

// DeleteClient removes the client and everything hanging off it: its
// sessions and their photos, atomically.
func (s *clientService) DeleteClient(id string) error {
	if err := s.Store.DeleteClient(id); err != nil {
		s.Notifier.Notify(notify.Error("Failed to delete client"))
		return err
	}
	s.Notifier.Notify(notify.Success("Client deleted successfully!"))
	return nil
}

// DeletionImpact is a read used by confirmation dialogs; it emits no
// notification.
func (s *clientService) DeletionImpact(id string) (*models.DeletionImpact, error) {
	return s.Store.ClientDeletionImpact(id)
}
