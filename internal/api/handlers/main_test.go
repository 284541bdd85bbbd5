// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"io"

	"github.com/stretchr/testify/mock"

	"lumina/internal/gallery"
	"lumina/internal/models"
	"lumina/internal/services"
	"lumina/internal/services/auth"
)

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK CLIENT SERVICE ---
type MockClientService struct {
	mock.Mock
}

var _ services.ClientService = (*MockClientService)(nil)

func (m *MockClientService) GetClient(id string) (*models.Client, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientService) GetClients() ([]models.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(payload models.ClientCreatePayload) (*models.Client, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(id string, payload models.ClientUpdatePayload) (*models.Client, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockClientService) DeletionImpact(id string) (*models.DeletionImpact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeletionImpact), args.Error(1)
}

// --- MOCK SESSION SERVICE ---
type MockSessionService struct {
	mock.Mock
}

var _ services.SessionService = (*MockSessionService)(nil)

func (m *MockSessionService) GetSession(id string) (*models.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
func (m *MockSessionService) GetSessions() ([]models.Session, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}
func (m *MockSessionService) GetSessionsForClient(clientID string) ([]models.Session, error) {
	args := m.Called(clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}
func (m *MockSessionService) CreateSession(payload models.SessionCreatePayload) (*models.Session, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
func (m *MockSessionService) UpdateSession(id string, payload models.SessionUpdatePayload) (*models.Session, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
func (m *MockSessionService) DeleteSession(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockSessionService) DeletionImpact(id string) (*models.DeletionImpact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeletionImpact), args.Error(1)
}

// --- MOCK PHOTO SERVICE ---
type MockPhotoService struct {
	mock.Mock
}

var _ services.PhotoService = (*MockPhotoService)(nil)

func (m *MockPhotoService) GetPhoto(id string) (*models.Photo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}
func (m *MockPhotoService) GetPhotos() ([]models.Photo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}
func (m *MockPhotoService) GetSessionPhotos(sessionID string) ([]models.Photo, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}
func (m *MockPhotoService) UploadPhotos(sessionID string, files []models.UploadFile) ([]models.Photo, error) {
	args := m.Called(sessionID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}
func (m *MockPhotoService) UpdatePhotoCategory(id, category string) (*models.Photo, error) {
	args := m.Called(id, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}
func (m *MockPhotoService) DeletePhoto(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// --- MOCK ALBUM SERVICE ---
type MockAlbumService struct {
	mock.Mock
}

var _ services.AlbumService = (*MockAlbumService)(nil)

func (m *MockAlbumService) GetAlbum(id string) (*models.Album, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}
func (m *MockAlbumService) GetAlbums() ([]models.Album, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Album), args.Error(1)
}
func (m *MockAlbumService) CreateAlbum(name string) (*models.Album, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}
func (m *MockAlbumService) UpdateAlbum(id string, payload models.AlbumUpdatePayload) (*models.Album, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}
func (m *MockAlbumService) DeleteAlbum(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockAlbumService) AddAlbumPhoto(albumID string, payload models.AlbumPhotoPayload) (*models.AlbumPhoto, error) {
	args := m.Called(albumID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AlbumPhoto), args.Error(1)
}
func (m *MockAlbumService) DeleteAlbumPhoto(albumID, photoID string) error {
	args := m.Called(albumID, photoID)
	return args.Error(0)
}

// --- MOCK GALLERY SERVICE ---
type MockGalleryService struct {
	mock.Mock
}

var _ services.GalleryService = (*MockGalleryService)(nil)

func (m *MockGalleryService) Unlock(email, code string) (*gallery.Viewer, string, error) {
	args := m.Called(email, code)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*gallery.Viewer), args.String(1), args.Error(2)
}
func (m *MockGalleryService) Lock() {
	m.Called()
}
func (m *MockGalleryService) Viewer() (*gallery.Viewer, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gallery.Viewer), args.Error(1)
}
func (m *MockGalleryService) SetFilter(category string) error {
	args := m.Called(category)
	return args.Error(0)
}
func (m *MockGalleryService) SetViewMode(mode gallery.ViewMode) error {
	args := m.Called(mode)
	return args.Error(0)
}
func (m *MockGalleryService) ToggleSelect(photoID string) error {
	args := m.Called(photoID)
	return args.Error(0)
}
func (m *MockGalleryService) SelectAllToggle() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockGalleryService) ClearSelection() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockGalleryService) ExportSelected(w io.Writer) (int, error) {
	args := m.Called(w)
	return args.Int(0), args.Error(1)
}
func (m *MockGalleryService) ExportFiltered(w io.Writer) (int, error) {
	args := m.Called(w)
	return args.Int(0), args.Error(1)
}

// --- MOCK TOKEN SERVICE ---
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) AuthenticateAdmin(username, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}
func (m *MockTokenService) GenerateTokens(username string) (string, string, error) {
	args := m.Called(username)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockTokenService) ValidateAccessToken(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
func (m *MockTokenService) IssueViewerToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) Logout(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}
func (m *MockTokenService) LogoutAll(subject string) error {
	args := m.Called(subject)
	return args.Error(0)
}
