// filepath: internal/api/handlers/session_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lumina/internal/models"
)

// @Summary List sessions
// @Tags Sessions
// @Produce  json
// @Success 200 {array} models.Session
// @Security BearerAuth
// @Router /sessions [get]
func (h *Handlers) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Session.GetSessions()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}

// @Summary Get a session
// @Tags Sessions
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} models.Session
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/{id} [get]
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.Session.GetSession(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// @Summary Create a session
// @Description Creates a shoot session for an existing client.
// @Tags Sessions
// @Accept   json
// @Produce  json
// @Param session body models.SessionCreatePayload true "Session"
// @Success 201 {object} models.Session
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Client does not exist"
// @Security BearerAuth
// @Router /session [post]
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var payload models.SessionCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.Session.CreateSession(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// @Summary Update a session
// @Description Applies a partial update. The client reference and photo count are immutable.
// @Tags Sessions
// @Accept   json
// @Produce  json
// @Param id path string true "Session ID"
// @Param session body models.SessionUpdatePayload true "Fields to update"
// @Success 200 {object} models.Session
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/{id} [patch]
func (h *Handlers) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var payload models.SessionUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.Session.UpdateSession(mux.Vars(r)["id"], payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// @Summary Delete a session
// @Description Deletes the session together with all its photos.
// @Tags Sessions
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/{id} [delete]
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.DeleteSession(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Session deleted successfully!"})
}

// @Summary Preview session deletion impact
// @Tags Sessions
// @Produce  json
// @Param id path string true "Session ID"
// @Success 200 {object} models.DeletionImpact
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /session/{id}/impact [get]
func (h *Handlers) GetSessionDeletionImpact(w http.ResponseWriter, r *http.Request) {
	impact, err := h.Session.DeletionImpact(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, impact)
}
