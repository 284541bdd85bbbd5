// filepath: internal/api/handlers/album_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lumina/internal/models"
)

// albumCreatePayload is the JSON body for album creation.
type albumCreatePayload struct {
	Name string `json:"name"`
}

// @Summary List portfolio albums
// @Description Retrieves the stored albums in creation order. Public endpoint; the virtual "all" album is available under /portfolio/album/all.
// @Tags Portfolio
// @Produce  json
// @Success 200 {array} models.Album
// @Router /portfolio/albums [get]
func (h *Handlers) GetAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.Album.GetAlbums()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, albums)
}

// @Summary Get a portfolio album
// @Description Retrieves an album with its photos. The id "all" returns the virtual aggregate album.
// @Tags Portfolio
// @Produce  json
// @Param id path string true "Album ID"
// @Success 200 {object} models.Album
// @Failure 404 {object} ErrorResponse
// @Router /portfolio/album/{id} [get]
func (h *Handlers) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.Album.GetAlbum(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, album)
}

// @Summary Create an album
// @Tags Portfolio
// @Accept   json
// @Produce  json
// @Param album body albumCreatePayload true "Album"
// @Success 201 {object} models.Album
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /album [post]
func (h *Handlers) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var payload albumCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	album, err := h.Album.CreateAlbum(payload.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, album)
}

// @Summary Rename an album
// @Tags Portfolio
// @Accept   json
// @Produce  json
// @Param id path string true "Album ID"
// @Param album body models.AlbumUpdatePayload true "Fields to update"
// @Success 200 {object} models.Album
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /album/{id} [patch]
func (h *Handlers) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var payload models.AlbumUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	album, err := h.Album.UpdateAlbum(mux.Vars(r)["id"], payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, album)
}

// @Summary Delete an album
// @Description Deletes the album and its photos. The virtual "all" album cannot be deleted.
// @Tags Portfolio
// @Produce  json
// @Param id path string true "Album ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /album/{id} [delete]
func (h *Handlers) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	if err := h.Album.DeleteAlbum(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Album deleted successfully!"})
}

// @Summary Add a photo to an album
// @Tags Portfolio
// @Accept   json
// @Produce  json
// @Param id path string true "Album ID"
// @Param photo body models.AlbumPhotoPayload true "Photo"
// @Success 201 {object} models.AlbumPhoto
// @Failure 422 {object} ErrorResponse "Album does not exist"
// @Security BearerAuth
// @Router /album/{id}/photo [post]
func (h *Handlers) AddAlbumPhoto(w http.ResponseWriter, r *http.Request) {
	var payload models.AlbumPhotoPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photo, err := h.Album.AddAlbumPhoto(mux.Vars(r)["id"], payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, photo)
}

// @Summary Remove a photo from an album
// @Tags Portfolio
// @Produce  json
// @Param id path string true "Album ID"
// @Param photoId path string true "Album photo ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /album/{id}/photo/{photoId} [delete]
func (h *Handlers) DeleteAlbumPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Album.DeleteAlbumPhoto(vars["id"], vars["photoId"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Photo deleted successfully!"})
}
