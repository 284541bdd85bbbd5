// filepath: internal/services/interfaces.go
package services

import (
	"io"

	"lumina/internal/gallery"
	"lumina/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// ClientService defines the interface for client management.
type ClientService interface {
	GetClient(id string) (*models.Client, error)
	GetClients() ([]models.Client, error)
	CreateClient(payload models.ClientCreatePayload) (*models.Client, error)
	UpdateClient(id string, payload models.ClientUpdatePayload) (*models.Client, error)
	DeleteClient(id string) error
	DeletionImpact(id string) (*models.DeletionImpact, error)
}

// SessionService defines the interface for shoot session management.
type SessionService interface {
	GetSession(id string) (*models.Session, error)
	GetSessions() ([]models.Session, error)
	GetSessionsForClient(clientID string) ([]models.Session, error)
	CreateSession(payload models.SessionCreatePayload) (*models.Session, error)
	UpdateSession(id string, payload models.SessionUpdatePayload) (*models.Session, error)
	DeleteSession(id string) error
	DeletionImpact(id string) (*models.DeletionImpact, error)
}

// PhotoService defines the interface for session photo management.
type PhotoService interface {
	GetPhoto(id string) (*models.Photo, error)
	GetPhotos() ([]models.Photo, error)
	GetSessionPhotos(sessionID string) ([]models.Photo, error)
	UploadPhotos(sessionID string, files []models.UploadFile) ([]models.Photo, error)
	UpdatePhotoCategory(id, category string) (*models.Photo, error)
	DeletePhoto(id string) error
}

// AlbumService defines the interface for portfolio album management.
type AlbumService interface {
	GetAlbum(id string) (*models.Album, error)
	GetAlbums() ([]models.Album, error)
	CreateAlbum(name string) (*models.Album, error)
	UpdateAlbum(id string, payload models.AlbumUpdatePayload) (*models.Album, error)
	DeleteAlbum(id string) error
	AddAlbumPhoto(albumID string, payload models.AlbumPhotoPayload) (*models.AlbumPhoto, error)
	DeleteAlbumPhoto(albumID, photoID string) error
}

// GalleryService defines the interface for the client gallery: the
// access gate plus the view state of the active viewer.
type GalleryService interface {
	Unlock(email, code string) (*gallery.Viewer, string, error)
	Lock()
	Viewer() (*gallery.Viewer, error)
	SetFilter(category string) error
	SetViewMode(mode gallery.ViewMode) error
	ToggleSelect(photoID string) error
	SelectAllToggle() error
	ClearSelection() error
	ExportSelected(w io.Writer) (int, error)
	ExportFiltered(w io.Writer) (int, error)
}

// ViewerTokenIssuer mints the short-lived token handed out when the
// gallery unlocks.
type ViewerTokenIssuer interface {
	IssueViewerToken(email string) (string, error)
}
