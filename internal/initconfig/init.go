// filepath: internal/initconfig/init.go
package initconfig

import (
	"os"

	"github.com/BurntSushi/toml"

	"lumina/internal/logging"
	"lumina/internal/models"
	"lumina/internal/services"
)

// Run executes a one-time initialization from the config file. Errors
// are logged, not returned; a half-seeded store is still a usable store.
func Run(
	clientSvc services.ClientService,
	sessionSvc services.SessionService,
	photoSvc services.PhotoService,
	albumSvc services.AlbumService,
	configPath string,
) {
	logging.Log.Infof("Initialization config file found at: %s. Processing...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		logging.Log.Errorf("Failed to read init config file '%s': %v", configPath, err)
		return
	}

	var config InitConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		logging.Log.Errorf("Failed to parse TOML init config file '%s': %v", configPath, err)
		return
	}

	logging.Log.Infof("Found %d client(s) and %d album(s) in init config.", len(config.Clients), len(config.Albums))

	Apply(clientSvc, sessionSvc, photoSvc, albumSvc, config)
}

// Apply seeds the store with the given entities. Clients are matched by
// email and albums by name, and existing ones are skipped, so applying
// the same document twice does not duplicate anything.
func Apply(
	clientSvc services.ClientService,
	sessionSvc services.SessionService,
	photoSvc services.PhotoService,
	albumSvc services.AlbumService,
	config InitConfig,
) {
	processClients(clientSvc, sessionSvc, photoSvc, config.Clients)
	processAlbums(albumSvc, config.Albums)
}

// processClients creates each client that does not exist yet, together
// with its nested sessions and photos.
func processClients(
	clientSvc services.ClientService,
	sessionSvc services.SessionService,
	photoSvc services.PhotoService,
	clients []InitClient,
) {
	existing, err := clientSvc.GetClients()
	if err != nil {
		logging.Log.Errorf("Failed to list existing clients: %v", err)
		return
	}
	byEmail := make(map[string]bool, len(existing))
	for _, c := range existing {
		byEmail[c.Email] = true
	}

	for _, c := range clients {
		if c.Name == "" || c.Email == "" {
			logging.Log.Warn("Skipping client with empty name or email.")
			continue
		}
		if byEmail[c.Email] {
			logging.Log.Infof("Skipping client: '%s' already exists.", c.Email)
			continue
		}

		logging.Log.Infof("Creating client: '%s'...", c.Name)
		created, err := clientSvc.CreateClient(models.ClientCreatePayload{
			Name:       c.Name,
			Email:      c.Email,
			Phone:      c.Phone,
			AccessCode: c.AccessCode,
		})
		if err != nil {
			logging.Log.Errorf("Failed to create client '%s': %v", c.Name, err)
			continue
		}

		for _, s := range c.Sessions {
			processSession(sessionSvc, photoSvc, created.ID, s)
		}
	}
}

func processSession(
	sessionSvc services.SessionService,
	photoSvc services.PhotoService,
	clientID string,
	s InitSession,
) {
	logging.Log.Infof("Creating session: '%s'...", s.Name)
	created, err := sessionSvc.CreateSession(models.SessionCreatePayload{
		ClientID: clientID,
		Name:     s.Name,
		Date:     s.Date,
		Type:     s.Type,
		Status:   models.SessionStatus(s.Status),
	})
	if err != nil {
		logging.Log.Errorf("Failed to create session '%s': %v", s.Name, err)
		return
	}

	if len(s.Photos) == 0 {
		return
	}

	files := make([]models.UploadFile, 0, len(s.Photos))
	for _, p := range s.Photos {
		files = append(files, models.UploadFile{
			Filename:   p.Filename,
			ByteLength: p.ByteLength,
			ContentRef: p.ContentRef,
		})
	}
	uploaded, err := photoSvc.UploadPhotos(created.ID, files)
	if err != nil {
		logging.Log.Errorf("Failed to upload photos for session '%s': %v", s.Name, err)
		return
	}

	// Uploads come back in input order, so the category of photo i in
	// the config belongs to uploaded[i].
	for i, photo := range uploaded {
		category := s.Photos[i].Category
		if category == "" || category == photo.Category {
			continue
		}
		if _, err := photoSvc.UpdatePhotoCategory(photo.ID, category); err != nil {
			logging.Log.Errorf("Failed to categorize photo '%s': %v", photo.Filename, err)
		}
	}
}

// processAlbums creates each portfolio album that does not exist yet,
// together with its photos.
func processAlbums(albumSvc services.AlbumService, albums []InitAlbum) {
	existing, err := albumSvc.GetAlbums()
	if err != nil {
		logging.Log.Errorf("Failed to list existing albums: %v", err)
		return
	}
	byName := make(map[string]bool, len(existing))
	for _, a := range existing {
		byName[a.Name] = true
	}

	for _, a := range albums {
		if a.Name == "" {
			logging.Log.Warn("Skipping album with empty name.")
			continue
		}
		if byName[a.Name] {
			logging.Log.Infof("Skipping album: '%s' already exists.", a.Name)
			continue
		}

		logging.Log.Infof("Creating album: '%s'...", a.Name)
		created, err := albumSvc.CreateAlbum(a.Name)
		if err != nil {
			logging.Log.Errorf("Failed to create album '%s': %v", a.Name, err)
			continue
		}

		for _, p := range a.Photos {
			payload := models.AlbumPhotoPayload{URL: p.URL, Title: p.Title, Session: p.Session}
			if _, err := albumSvc.AddAlbumPhoto(created.ID, payload); err != nil {
				logging.Log.Errorf("Failed to add photo '%s' to album '%s': %v", p.Title, a.Name, err)
			}
		}
	}
}
