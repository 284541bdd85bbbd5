// filepath: internal/api/handlers/client_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lumina/internal/models"
)

// @Summary List clients
// @Description Retrieves all clients in creation order.
// @Tags Clients
// @Produce  json
// @Success 200 {array} models.Client
// @Security BearerAuth
// @Router /clients [get]
func (h *Handlers) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Client.GetClients()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, clients)
}

// @Summary Get a client
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client/{id} [get]
func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.Client.GetClient(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

// @Summary Create a client
// @Description Creates a client; the store generates its unique gallery access code.
// @Tags Clients
// @Accept   json
// @Produce  json
// @Param client body models.ClientCreatePayload true "Client"
// @Success 201 {object} models.Client
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /client [post]
func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var payload models.ClientCreatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Client.CreateClient(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, client)
}

// @Summary Update a client
// @Description Applies a partial update. The access code and creation date are immutable.
// @Tags Clients
// @Accept   json
// @Produce  json
// @Param id path string true "Client ID"
// @Param client body models.ClientUpdatePayload true "Fields to update"
// @Success 200 {object} models.Client
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client/{id} [patch]
func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var payload models.ClientUpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	client, err := h.Client.UpdateClient(mux.Vars(r)["id"], payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, client)
}

// @Summary Delete a client
// @Description Deletes the client together with all its sessions and their photos.
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client/{id} [delete]
func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.Client.DeleteClient(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Client deleted successfully!"})
}

// @Summary Preview client deletion impact
// @Description Reports how many sessions and photos deleting the client would cascade to.
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {object} models.DeletionImpact
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /client/{id}/impact [get]
func (h *Handlers) GetClientDeletionImpact(w http.ResponseWriter, r *http.Request) {
	impact, err := h.Client.DeletionImpact(mux.Vars(r)["id"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, impact)
}

// @Summary List a client's sessions
// @Tags Clients
// @Produce  json
// @Param id path string true "Client ID"
// @Success 200 {array} models.Session
// @Security BearerAuth
// @Router /client/{id}/sessions [get]
func (h *Handlers) GetClientSessions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Client.GetClient(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	sessions, err := h.Session.GetSessionsForClient(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sessions)
}
