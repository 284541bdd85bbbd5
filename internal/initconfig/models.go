// filepath: internal/initconfig/models.go
package initconfig

// InitConfig is the root struct for parsing the TOML initialization file.
// Clients nest their sessions, sessions nest their photos, so a whole
// studio can be described in one document.
type InitConfig struct {
	Clients []InitClient `toml:"client"`
	Albums  []InitAlbum  `toml:"album"`
}

// InitClient represents a client entry in the TOML config file. An
// explicit AccessCode pins the code instead of generating one; the demo
// deployment uses this to guarantee a known gallery code.
type InitClient struct {
	Name       string        `toml:"name"`
	Email      string        `toml:"email"`
	Phone      string        `toml:"phone"`
	AccessCode string        `toml:"access_code"`
	Sessions   []InitSession `toml:"session"`
}

// InitSession represents a shoot session entry nested under a client.
type InitSession struct {
	Name   string      `toml:"name"`
	Date   string      `toml:"date"`
	Type   string      `toml:"type"`
	Status string      `toml:"status"`
	Photos []InitPhoto `toml:"photo"`
}

// InitPhoto represents one photo to register under a session.
type InitPhoto struct {
	Filename   string `toml:"filename"`
	Category   string `toml:"category"`
	ByteLength int64  `toml:"byte_length"`
	ContentRef string `toml:"content_ref"`
}

// InitAlbum represents a portfolio album entry in the TOML config file.
type InitAlbum struct {
	Name   string           `toml:"name"`
	Photos []InitAlbumPhoto `toml:"photo"`
}

// InitAlbumPhoto represents one portfolio photo. Session is the display
// label shown under the photo, not a reference to a shoot session.
type InitAlbumPhoto struct {
	URL     string `toml:"url"`
	Title   string `toml:"title"`
	Session string `toml:"session"`
}
