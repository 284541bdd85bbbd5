// filepath: internal/initconfig/init_test.go
package initconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/internal/models"
	"lumina/internal/notify"
	"lumina/internal/services"
	"lumina/internal/store"
)

type seedServices struct {
	clients  services.ClientService
	sessions services.SessionService
	photos   services.PhotoService
	albums   services.AlbumService
}

func setupSeedServices(t *testing.T) (seedServices, func()) {
	t.Helper()
	s, err := store.Open(":memory:", &store.SequenceGenerator{})
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("Failed to migrate store: %v", err)
	}
	svcs := seedServices{
		clients:  services.NewClientService(s, notify.Discard{}),
		sessions: services.NewSessionService(s, notify.Discard{}),
		photos:   services.NewPhotoService(s, notify.Discard{}),
		albums:   services.NewAlbumService(s, notify.Discard{}),
	}
	return svcs, func() { s.Close() }
}

func TestApplyDemoSeedsEverything(t *testing.T) {
	svcs, cleanup := setupSeedServices(t)
	defer cleanup()

	Apply(svcs.clients, svcs.sessions, svcs.photos, svcs.albums, Demo())

	clients, err := svcs.clients.GetClients()
	assert.NoError(t, err)
	if assert.Len(t, clients, 1) {
		assert.Equal(t, "Sarah Johnson", clients[0].Name)
		assert.Equal(t, "DEMO2024", clients[0].AccessCode)
	}

	sessions, err := svcs.sessions.GetSessionsForClient(clients[0].ID)
	assert.NoError(t, err)
	if assert.Len(t, sessions, 1) {
		assert.Equal(t, "Wedding Photography", sessions[0].Name)
		assert.Equal(t, models.StatusCompleted, sessions[0].Status)
		assert.Equal(t, 12, sessions[0].PhotoCount)
	}

	photos, err := svcs.photos.GetSessionPhotos(sessions[0].ID)
	assert.NoError(t, err)
	if assert.Len(t, photos, 12) {
		// Categories were applied after upload, in upload order.
		assert.Equal(t, "ceremony_001.jpg", photos[0].Filename)
		assert.Equal(t, "Ceremony", photos[0].Category)
		assert.Equal(t, "portraits_052.jpg", photos[11].Filename)
		assert.Equal(t, "Portraits", photos[11].Category)
		assert.Equal(t, "4.2 MB", photos[0].Size)
	}

	albums, err := svcs.albums.GetAlbums()
	assert.NoError(t, err)
	// The four stored albums plus the virtual aggregate.
	assert.Len(t, albums, 5)

	all, err := svcs.albums.GetAlbum(models.AllAlbumID)
	assert.NoError(t, err)
	assert.Equal(t, 26, all.Count)
}

func TestApplyIsIdempotent(t *testing.T) {
	svcs, cleanup := setupSeedServices(t)
	defer cleanup()

	Apply(svcs.clients, svcs.sessions, svcs.photos, svcs.albums, Demo())
	Apply(svcs.clients, svcs.sessions, svcs.photos, svcs.albums, Demo())

	clients, err := svcs.clients.GetClients()
	assert.NoError(t, err)
	assert.Len(t, clients, 1)

	albums, err := svcs.albums.GetAlbums()
	assert.NoError(t, err)
	assert.Len(t, albums, 5)

	all, err := svcs.albums.GetAlbum(models.AllAlbumID)
	assert.NoError(t, err)
	assert.Equal(t, 26, all.Count)
}

func TestRunParsesTOMLFile(t *testing.T) {
	svcs, cleanup := setupSeedServices(t)
	defer cleanup()

	content := []byte(`
[[client]]
name = "Emma Davis"
email = "emma@example.com"
access_code = "EMMA2025"

  [[client.session]]
  name = "Portrait Session"
  date = "2025-03-01"
  type = "Portrait"
  status = "scheduled"

    [[client.session.photo]]
    filename = "portrait_001.jpg"
    category = "Portraits"
    byte_length = 2500000
    content_ref = "https://example.com/portrait_001.jpg"

[[album]]
name = "Minis"

  [[album.photo]]
  url = "https://example.com/mini.jpg"
  title = "Mini Session"
  session = "Spring Minis"
`)
	path := filepath.Join(t.TempDir(), "init.toml")
	assert.NoError(t, os.WriteFile(path, content, 0644))

	Run(svcs.clients, svcs.sessions, svcs.photos, svcs.albums, path)

	clients, err := svcs.clients.GetClients()
	assert.NoError(t, err)
	if assert.Len(t, clients, 1) {
		assert.Equal(t, "EMMA2025", clients[0].AccessCode)
	}

	sessions, err := svcs.sessions.GetSessionsForClient(clients[0].ID)
	assert.NoError(t, err)
	if assert.Len(t, sessions, 1) {
		assert.Equal(t, 1, sessions[0].PhotoCount)
	}

	albums, err := svcs.albums.GetAlbums()
	assert.NoError(t, err)
	assert.Len(t, albums, 2)
}

func TestRunMissingFileLeavesStoreEmpty(t *testing.T) {
	svcs, cleanup := setupSeedServices(t)
	defer cleanup()

	Run(svcs.clients, svcs.sessions, svcs.photos, svcs.albums, "does-not-exist.toml")

	clients, err := svcs.clients.GetClients()
	assert.NoError(t, err)
	assert.Empty(t, clients)
}
