// filepath: internal/api/handlers/client_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"lumina/internal/models"
	"lumina/internal/services"
)

// setupClientHandlerTestAPI creates a test server with the client and
// session routes mounted. Auth middleware is not mounted; these tests
// cover handler logic and error mapping, not route protection.
func setupClientHandlerTestAPI(t *testing.T) (*httptest.Server, *MockClientService, *MockSessionService, func()) {
	t.Helper()

	mockClient := new(MockClientService)
	mockSession := new(MockSessionService)

	h := NewHandlers(nil, mockClient, mockSession, nil, nil, nil, nil, nil)

	r := mux.NewRouter()
	r.HandleFunc("/api/clients", h.GetClients).Methods("GET")
	r.HandleFunc("/api/client", h.CreateClient).Methods("POST")
	r.HandleFunc("/api/client/{id}", h.GetClient).Methods("GET")
	r.HandleFunc("/api/client/{id}", h.UpdateClient).Methods("PATCH")
	r.HandleFunc("/api/client/{id}", h.DeleteClient).Methods("DELETE")
	r.HandleFunc("/api/client/{id}/impact", h.GetClientDeletionImpact).Methods("GET")

	server := httptest.NewServer(r)
	return server, mockClient, mockSession, func() { server.Close() }
}

func TestCreateClientAPI(t *testing.T) {
	server, mockClient, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	payload := models.ClientCreatePayload{Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "555-0123"}
	returned := models.Client{ID: "c1", Name: "Sarah Johnson", Email: "sarah@example.com", AccessCode: "QX7DK2LM"}
	mockClient.On("CreateClient", payload).Return(&returned, nil).Once()

	body, _ := json.Marshal(payload)
	resp, err := http.Post(server.URL+"/api/client", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.Client
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "QX7DK2LM", got.AccessCode)
	mockClient.AssertExpectations(t)
}

func TestCreateClientAPIValidationError(t *testing.T) {
	server, mockClient, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	payload := models.ClientCreatePayload{Name: "No Email"}
	mockClient.On("CreateClient", payload).Return(nil, services.ErrValidation).Once()

	body, _ := json.Marshal(payload)
	resp, err := http.Post(server.URL+"/api/client", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetClientAPINotFound(t *testing.T) {
	server, mockClient, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	mockClient.On("GetClient", "missing").Return(nil, services.ErrNotFound).Once()

	resp, err := http.Get(server.URL + "/api/client/missing")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestDeleteClientAPI(t *testing.T) {
	server, mockClient, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	mockClient.On("DeleteClient", "c1").Return(nil).Once()

	req, _ := http.NewRequest("DELETE", server.URL+"/api/client/c1", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestClientDeletionImpactAPI(t *testing.T) {
	server, mockClient, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	mockClient.On("DeletionImpact", "c1").Return(&models.DeletionImpact{Sessions: 2, Photos: 5}, nil).Once()

	resp, err := http.Get(server.URL + "/api/client/c1/impact")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var impact models.DeletionImpact
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&impact))
	assert.Equal(t, 2, impact.Sessions)
	assert.Equal(t, 5, impact.Photos)
}

func TestUpdateClientAPIInvalidBody(t *testing.T) {
	server, _, _, cleanup := setupClientHandlerTestAPI(t)
	defer cleanup()

	req, _ := http.NewRequest("PATCH", server.URL+"/api/client/c1", bytes.NewReader([]byte("{not json")))
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
