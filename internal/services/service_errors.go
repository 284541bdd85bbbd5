// filepath: internal/services/service_errors.go
package services

import (
	"errors"

	"lumina/internal/gallery"
	"lumina/internal/store"
)

// Standard errors returned by the service layer. NotFound and
// InvalidReference surface straight from the store; AccessDenied comes
// from the gallery gate.
var (
	ErrNotFound         = store.ErrNotFound
	ErrInvalidReference = store.ErrInvalidReference
	ErrValidation       = errors.New("validation failed")
	ErrAccessDenied     = gallery.ErrAccessDenied
)
