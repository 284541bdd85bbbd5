// filepath: internal/api/handlers/main.go
package handlers

import (
	"lumina/internal/config"
	"lumina/internal/services"
	"lumina/internal/services/auth"
)

// Handlers provides a struct to hold shared dependencies for API
// handlers. Handlers depend on the service interfaces, not the concrete
// structs.
type Handlers struct {
	Info    services.InfoService
	Client  services.ClientService
	Session services.SessionService
	Photo   services.PhotoService
	Album   services.AlbumService
	Gallery services.GalleryService
	Token   auth.TokenService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	client services.ClientService,
	session services.SessionService,
	photo services.PhotoService,
	album services.AlbumService,
	gallery services.GalleryService,
	token auth.TokenService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:    info,
		Client:  client,
		Session: session,
		Photo:   photo,
		Album:   album,
		Gallery: gallery,
		Token:   token,
		Cfg:     cfg,
	}
}
