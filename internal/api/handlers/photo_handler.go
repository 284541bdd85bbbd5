// filepath: internal/api/handlers/photo_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lumina/internal/models"
)

// categoryPayload is the JSON body for category reassignment.
type categoryPayload struct {
	Category string `json:"category"`
}

// @Summary List photos
// @Description Retrieves all photos across sessions in upload order.
// @Tags Photos
// @Produce  json
// @Success 200 {array} models.Photo
// @Security BearerAuth
// @Router /photos [get]
func (h *Handlers) GetPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Photo.GetPhotos()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, photos)
}

// @Summary List a session's photos
// @Tags Photos
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {array} models.Photo
// @Security BearerAuth
// @Router /session/{id}/photos [get]
func (h *Handlers) GetSessionPhotos(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Session.GetSession(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	photos, err := h.Photo.GetSessionPhotos(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, photos)
}

// @Summary Upload photos to a session
// @Description Registers a batch of uploaded files against a session. The whole batch is atomic; file bytes live behind the external storage boundary.
// @Tags Photos
// @Accept   json
// @Produce  json
// @Param id path string true "Session ID"
// @Param files body []models.UploadFile true "Uploaded files"
// @Success 201 {array} models.Photo
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Session does not exist"
// @Security BearerAuth
// @Router /session/{id}/photos [post]
func (h *Handlers) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	var files []models.UploadFile
	if err := json.NewDecoder(r.Body).Decode(&files); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photos, err := h.Photo.UploadPhotos(mux.Vars(r)["id"], files)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, photos)
}

// @Summary Update a photo's category
// @Tags Photos
// @Accept   json
// @Produce  json
// @Param id path string true "Photo ID"
// @Param category body categoryPayload true "New category"
// @Success 200 {object} models.Photo
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /photo/{id}/category [patch]
func (h *Handlers) UpdatePhotoCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photo, err := h.Photo.UpdatePhotoCategory(mux.Vars(r)["id"], payload.Category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, photo)
}

// @Summary Delete a photo
// @Description Deletes the photo and decrements its session's photo count.
// @Tags Photos
// @Produce  json
// @Param id path string true "Photo ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /photo/{id} [delete]
func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.Photo.DeletePhoto(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Photo deleted successfully!"})
}
