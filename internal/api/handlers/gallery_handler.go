// filepath: internal/api/handlers/gallery_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"lumina/internal/gallery"
	"lumina/internal/models"
)

// accessRequest is the access form: both fields are required.
type accessRequest struct {
	Email      string `json:"email"`
	AccessCode string `json:"access_code"`
}

// galleryState is the full view state of the unlocked gallery.
type galleryState struct {
	Email      string           `json:"email"`
	Filter     string           `json:"filter"`
	ViewMode   gallery.ViewMode `json:"view_mode"`
	Categories []string         `json:"categories"`
	Photos     []models.Photo   `json:"photos"`
	Selected   []string         `json:"selected"`
	ExpiresOn  string           `json:"expires_on"`
}

// unlockResponse carries the viewer token next to the initial state.
type unlockResponse struct {
	Token string `json:"token"`
	galleryState
}

type filterRequest struct {
	Category string `json:"category"`
}

type viewModeRequest struct {
	ViewMode gallery.ViewMode `json:"view_mode"`
}

func (h *Handlers) galleryStateOf(viewer *gallery.Viewer) galleryState {
	return galleryState{
		Email:      viewer.Email,
		Filter:     viewer.Filter(),
		ViewMode:   viewer.ViewMode(),
		Categories: viewer.Categories(),
		Photos:     viewer.FilteredPhotos(),
		Selected:   viewer.SelectedIDs(),
		ExpiresOn:  h.Cfg.Gallery.ExpiresOn,
	}
}

// @Summary Unlock the client gallery
// @Description Exchanges an email and access code for a viewer token and the unlocked photo set.
// @Tags Gallery
// @Accept   json
// @Produce  json
// @Param access body accessRequest true "Access form"
// @Success 200 {object} unlockResponse
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Invalid access code"
// @Router /gallery/access [post]
func (h *Handlers) GalleryAccess(w http.ResponseWriter, r *http.Request) {
	var req accessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	viewer, token, err := h.Gallery.Unlock(req.Email, req.AccessCode)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, unlockResponse{
		Token:        token,
		galleryState: h.galleryStateOf(viewer),
	})
}

// @Summary Lock the gallery
// @Description Closes the gallery and discards the viewer's state, selection included.
// @Tags Gallery
// @Produce  json
// @Success 200 {object} MessageResponse
// @Security BearerAuth
// @Router /gallery/lock [post]
func (h *Handlers) GalleryLock(w http.ResponseWriter, r *http.Request) {
	h.Gallery.Lock()
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Gallery locked"})
}

// @Summary Get gallery state
// @Description Retrieves the current view state: filter, view mode, categories, visible photos and selection.
// @Tags Gallery
// @Produce  json
// @Success 200 {object} galleryState
// @Failure 401 {object} ErrorResponse "Gallery is locked"
// @Security BearerAuth
// @Router /gallery [get]
func (h *Handlers) GetGallery(w http.ResponseWriter, r *http.Request) {
	viewer, err := h.Gallery.Viewer()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.galleryStateOf(viewer))
}

// @Summary Set the category filter
// @Description Switches the category filter. The selection survives the switch.
// @Tags Gallery
// @Accept   json
// @Produce  json
// @Param filter body filterRequest true "Filter"
// @Success 200 {object} galleryState
// @Failure 401 {object} ErrorResponse "Gallery is locked"
// @Security BearerAuth
// @Router /gallery/filter [put]
func (h *Handlers) SetGalleryFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Gallery.SetFilter(req.Category); err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondWithGalleryState(w)
}

// @Summary Set the view mode
// @Tags Gallery
// @Accept   json
// @Produce  json
// @Param mode body viewModeRequest true "View mode (grid, list or masonry)"
// @Success 200 {object} galleryState
// @Failure 400 {object} ErrorResponse "Unknown view mode"
// @Security BearerAuth
// @Router /gallery/view-mode [put]
func (h *Handlers) SetGalleryViewMode(w http.ResponseWriter, r *http.Request) {
	var req viewModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Gallery.SetViewMode(req.ViewMode); err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondWithGalleryState(w)
}

// @Summary Toggle a photo's selection
// @Tags Gallery
// @Produce  json
// @Param id path string true "Photo ID"
// @Success 200 {object} galleryState
// @Failure 401 {object} ErrorResponse "Gallery is locked"
// @Security BearerAuth
// @Router /gallery/photo/{id}/select [post]
func (h *Handlers) ToggleGallerySelect(w http.ResponseWriter, r *http.Request) {
	if err := h.Gallery.ToggleSelect(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondWithGalleryState(w)
}

// @Summary Select or deselect all visible photos
// @Description Replaces the selection with everything under the active filter, or clears it when the sizes already match.
// @Tags Gallery
// @Produce  json
// @Success 200 {object} galleryState
// @Security BearerAuth
// @Router /gallery/select-all [post]
func (h *Handlers) GallerySelectAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Gallery.SelectAllToggle(); err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondWithGalleryState(w)
}

// @Summary Clear the selection
// @Tags Gallery
// @Produce  json
// @Success 200 {object} galleryState
// @Security BearerAuth
// @Router /gallery/selection [delete]
func (h *Handlers) ClearGallerySelection(w http.ResponseWriter, r *http.Request) {
	if err := h.Gallery.ClearSelection(); err != nil {
		respondWithServiceError(w, err)
		return
	}
	h.respondWithGalleryState(w)
}

// @Summary Download selected photos
// @Description Streams the picked photos as a ZIP archive with a CSV index.
// @Tags Gallery
// @Produce  application/zip
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Nothing selected"
// @Security BearerAuth
// @Router /gallery/export [get]
func (h *Handlers) ExportGallerySelection(w http.ResponseWriter, r *http.Request) {
	h.exportGallery(w, h.Gallery.ExportSelected, "selection")
}

// @Summary Download all visible photos
// @Description Streams every photo under the active filter as a ZIP archive.
// @Tags Gallery
// @Produce  application/zip
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /gallery/export/all [get]
func (h *Handlers) ExportGalleryFiltered(w http.ResponseWriter, r *http.Request) {
	h.exportGallery(w, h.Gallery.ExportFiltered, "gallery")
}

// @Summary Download a single photo
// @Description Redirects to the photo's storage URL. The photo must be part of the unlocked gallery.
// @Tags Gallery
// @Param id path string true "Photo ID"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /gallery/photo/{id}/download [get]
func (h *Handlers) DownloadGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	viewer, err := h.Gallery.Viewer()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	for _, p := range viewer.Photos() {
		if p.ID == id {
			http.Redirect(w, r, p.URL, http.StatusFound)
			return
		}
	}
	respondWithError(w, http.StatusNotFound, "Photo not found")
}

func (h *Handlers) exportGallery(w http.ResponseWriter, export func(io.Writer) (int, error), stem string) {
	// Headers must go out before the first archive byte, so errors after
	// that point can only be logged.
	name := fmt.Sprintf("%s-%s.zip", stem, time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if _, err := export(w); err != nil {
		w.Header().Del("Content-Type")
		w.Header().Del("Content-Disposition")
		respondWithServiceError(w, err)
	}
}

func (h *Handlers) respondWithGalleryState(w http.ResponseWriter) {
	viewer, err := h.Gallery.Viewer()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.galleryStateOf(viewer))
}
