// filepath: internal/api/router.go
// Package api wires the HTTP surface: public portfolio and gallery
// access, viewer routes behind the viewer role, and the admin console
// behind the admin role.
package api

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"lumina/internal/api/handlers"
	"lumina/internal/services/auth"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public token endpoints
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")

	// Public portfolio: the marketing site reads albums without auth.
	r.HandleFunc("/api/portfolio/albums", h.GetAlbums).Methods("GET")
	r.HandleFunc("/api/portfolio/album/{id}", h.GetAlbum).Methods("GET")

	// Public gallery access gate: this is where viewer tokens come from.
	r.HandleFunc("/api/gallery/access", h.GalleryAccess).Methods("POST")

	// Authenticated API routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.Authenticate)
	apiRouter.HandleFunc("/logout", h.Logout).Methods("POST")
	apiRouter.HandleFunc("/logout/all", h.LogoutAll).Methods("POST")

	addGalleryRoutes(apiRouter, h, am)
	addClientRoutes(apiRouter, h, am)
	addSessionRoutes(apiRouter, h, am)
	addPhotoRoutes(apiRouter, h, am)
	addAlbumRoutes(apiRouter, h, am)

	return r
}

// addGalleryRoutes configures the unlocked gallery. Viewer tokens are
// enough; admin tokens pass too.
func addGalleryRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	viewerRouter := r.PathPrefix("/gallery").Subrouter()
	viewerRouter.Use(am.RequireRole(auth.RoleViewer))
	viewerRouter.HandleFunc("", h.GetGallery).Methods("GET")
	viewerRouter.HandleFunc("/lock", h.GalleryLock).Methods("POST")
	viewerRouter.HandleFunc("/filter", h.SetGalleryFilter).Methods("PUT")
	viewerRouter.HandleFunc("/view-mode", h.SetGalleryViewMode).Methods("PUT")
	viewerRouter.HandleFunc("/photo/{id}/select", h.ToggleGallerySelect).Methods("POST")
	viewerRouter.HandleFunc("/photo/{id}/download", h.DownloadGalleryPhoto).Methods("GET")
	viewerRouter.HandleFunc("/select-all", h.GallerySelectAll).Methods("POST")
	viewerRouter.HandleFunc("/selection", h.ClearGallerySelection).Methods("DELETE")
	viewerRouter.HandleFunc("/export", h.ExportGallerySelection).Methods("GET")
	viewerRouter.HandleFunc("/export/all", h.ExportGalleryFiltered).Methods("GET")
}

// addClientRoutes configures client management (admin console only).
func addClientRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("").Subrouter()
	adminRouter.Use(am.RequireRole(auth.RoleAdmin))
	adminRouter.HandleFunc("/clients", h.GetClients).Methods("GET")
	adminRouter.HandleFunc("/client", h.CreateClient).Methods("POST")
	adminRouter.HandleFunc("/client/{id}", h.GetClient).Methods("GET")
	adminRouter.HandleFunc("/client/{id}", h.UpdateClient).Methods("PATCH")
	adminRouter.HandleFunc("/client/{id}", h.DeleteClient).Methods("DELETE")
	adminRouter.HandleFunc("/client/{id}/impact", h.GetClientDeletionImpact).Methods("GET")
	adminRouter.HandleFunc("/client/{id}/sessions", h.GetClientSessions).Methods("GET")
}

// addSessionRoutes configures session management (admin console only).
func addSessionRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("").Subrouter()
	adminRouter.Use(am.RequireRole(auth.RoleAdmin))
	adminRouter.HandleFunc("/sessions", h.GetSessions).Methods("GET")
	adminRouter.HandleFunc("/session", h.CreateSession).Methods("POST")
	adminRouter.HandleFunc("/session/{id}", h.GetSession).Methods("GET")
	adminRouter.HandleFunc("/session/{id}", h.UpdateSession).Methods("PATCH")
	adminRouter.HandleFunc("/session/{id}", h.DeleteSession).Methods("DELETE")
	adminRouter.HandleFunc("/session/{id}/impact", h.GetSessionDeletionImpact).Methods("GET")
}

// addPhotoRoutes configures photo management (admin console only).
func addPhotoRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("").Subrouter()
	adminRouter.Use(am.RequireRole(auth.RoleAdmin))
	adminRouter.HandleFunc("/photos", h.GetPhotos).Methods("GET")
	adminRouter.HandleFunc("/session/{id}/photos", h.GetSessionPhotos).Methods("GET")
	adminRouter.HandleFunc("/session/{id}/photos", h.UploadPhotos).Methods("POST")
	adminRouter.HandleFunc("/photo/{id}/category", h.UpdatePhotoCategory).Methods("PATCH")
	adminRouter.HandleFunc("/photo/{id}", h.DeletePhoto).Methods("DELETE")
}

// addAlbumRoutes configures portfolio album management (admin console
// only); public reads live outside the authenticated subrouter.
func addAlbumRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	adminRouter := r.PathPrefix("").Subrouter()
	adminRouter.Use(am.RequireRole(auth.RoleAdmin))
	adminRouter.HandleFunc("/album", h.CreateAlbum).Methods("POST")
	adminRouter.HandleFunc("/album/{id}", h.UpdateAlbum).Methods("PATCH")
	adminRouter.HandleFunc("/album/{id}", h.DeleteAlbum).Methods("DELETE")
	adminRouter.HandleFunc("/album/{id}/photo", h.AddAlbumPhoto).Methods("POST")
	adminRouter.HandleFunc("/album/{id}/photo/{photoId}", h.DeleteAlbumPhoto).Methods("DELETE")
}
