// filepath: internal/store/album_store_test.go
package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/internal/models"
)

func TestAlbumCRUD(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	created, err := s.AddAlbum("Weddings")
	assert.NoError(t, err)
	assert.Equal(t, 0, created.Count)
	assert.Empty(t, created.Photos)

	renamed, err := s.UpdateAlbum(created.ID, models.AlbumUpdatePayload{Name: strPtr("Ceremonies")})
	assert.NoError(t, err)
	assert.Equal(t, "Ceremonies", renamed.Name)

	assert.NoError(t, s.DeleteAlbum(created.ID))
	_, err = s.GetAlbum(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlbumPhotoLifecycle(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	album, err := s.AddAlbum("Portraits")
	assert.NoError(t, err)

	first, err := s.AddAlbumPhoto(album.ID, models.AlbumPhotoPayload{
		URL: "/img/1.jpg", Title: "Golden hour", Session: "Autumn shoot",
	})
	assert.NoError(t, err)
	second, err := s.AddAlbumPhoto(album.ID, models.AlbumPhotoPayload{
		URL: "/img/2.jpg", Title: "Studio", Session: "Winter shoot",
	})
	assert.NoError(t, err)

	fetched, err := s.GetAlbum(album.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, fetched.Count)
	assert.Len(t, fetched.Photos, 2)
	assert.Equal(t, first.ID, fetched.Photos[0].ID)
	assert.Equal(t, second.ID, fetched.Photos[1].ID)

	assert.NoError(t, s.DeleteAlbumPhoto(album.ID, first.ID))
	fetched, err = s.GetAlbum(album.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, fetched.Count)
	assert.Len(t, fetched.Photos, 1)
	assert.Equal(t, second.ID, fetched.Photos[0].ID)

	// Removing the same photo again fails and leaves the count alone.
	assert.ErrorIs(t, s.DeleteAlbumPhoto(album.ID, first.ID), ErrNotFound)
	fetched, err = s.GetAlbum(album.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, fetched.Count)
}

func TestAlbumPhotoInvalidAlbum(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.AddAlbumPhoto("missing", models.AlbumPhotoPayload{URL: "/img/x.jpg"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestVirtualAllAlbum(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	weddings, err := s.AddAlbum("Weddings")
	assert.NoError(t, err)
	portraits, err := s.AddAlbum("Portraits")
	assert.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = s.AddAlbumPhoto(weddings.ID, models.AlbumPhotoPayload{URL: fmt.Sprintf("/w/%d.jpg", i)})
		assert.NoError(t, err)
	}
	_, err = s.AddAlbumPhoto(portraits.ID, models.AlbumPhotoPayload{URL: "/p/0.jpg"})
	assert.NoError(t, err)

	all, err := s.GetAlbum(models.AllAlbumID)
	assert.NoError(t, err)
	assert.Equal(t, models.AllAlbumName, all.Name)
	assert.Equal(t, 3, all.Count)
	assert.Len(t, all.Photos, 3)
	// Album creation order: weddings photos first, then portraits.
	assert.Equal(t, "/w/0.jpg", all.Photos[0].URL)
	assert.Equal(t, "/w/1.jpg", all.Photos[1].URL)
	assert.Equal(t, "/p/0.jpg", all.Photos[2].URL)

	// The aggregate tracks deletions from stored albums.
	assert.NoError(t, s.DeleteAlbum(weddings.ID))
	all, err = s.GetAlbum(models.AllAlbumID)
	assert.NoError(t, err)
	assert.Equal(t, 1, all.Count)
	assert.Equal(t, "/p/0.jpg", all.Photos[0].URL)
}

func TestVirtualAlbumIsReadOnly(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := s.UpdateAlbum(models.AllAlbumID, models.AlbumUpdatePayload{Name: strPtr("Renamed")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteAlbum(models.AllAlbumID), ErrNotFound)
	_, err = s.AddAlbumPhoto(models.AllAlbumID, models.AlbumPhotoPayload{URL: "/x.jpg"})
	assert.ErrorIs(t, err, ErrInvalidReference)

	// The aggregate is never in the stored album listing.
	albums, err := s.GetAlbums()
	assert.NoError(t, err)
	for _, a := range albums {
		assert.NotEqual(t, models.AllAlbumID, a.ID)
	}
}
