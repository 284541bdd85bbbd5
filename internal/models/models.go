// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// SessionStatus is the lifecycle state of a shoot session.
type SessionStatus string

const (
	StatusScheduled  SessionStatus = "scheduled"
	StatusProcessing SessionStatus = "processing"
	StatusCompleted  SessionStatus = "completed"
)

// Valid reports whether s is one of the known session statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// Client is a photography client. The access code is generated by the
// store on creation, is unique across clients, and is the credential the
// gallery access gate checks.
type Client struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	AccessCode string    `json:"access_code"`
}

// Session is a shoot session belonging to a client. PhotoCount is
// derived; the store keeps it equal to the number of photos referencing
// the session.
type Session struct {
	ID         string        `json:"id"`
	ClientID   string        `json:"client_id"`
	Name       string        `json:"name"`
	Date       string        `json:"date"`
	Type       string        `json:"type"`
	Status     SessionStatus `json:"status"`
	PhotoCount int           `json:"photo_count"`
}

// Photo is a single uploaded photo scoped to a session. Size is the
// human-formatted rendering of SizeBytes; actual bytes live behind the
// external storage boundary referenced by URL.
type Photo struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Category   string    `json:"category"`
	UploadedAt time.Time `json:"uploaded_at"`
	SizeBytes  int64     `json:"size_bytes"`
	Size       string    `json:"size"`
}

// DefaultPhotoCategory is assigned to freshly uploaded photos.
const DefaultPhotoCategory = "Uncategorized"

// Album is a public portfolio album. Count is derived from the photo
// sequence.
type Album struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Count     int          `json:"count"`
	Photos    []AlbumPhoto `json:"photos"`
	CreatedAt time.Time    `json:"created_at"`
}

// AllAlbumID identifies the virtual aggregate album. It is never stored;
// the store recomputes it from every non-virtual album on each read.
const AllAlbumID = "all"

// AllAlbumName is the display name of the virtual aggregate album.
const AllAlbumName = "All Sessions"

// AlbumPhoto is a portfolio photo scoped to exactly one album. Session
// is a free-text label, not a reference to a shoot session.
type AlbumPhoto struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Session string `json:"session"`
}

// UploadFile describes one file crossing the upload boundary. The core
// consumes only the name and byte length; ContentRef is an opaque
// pointer into external object storage.
type UploadFile struct {
	Filename   string `json:"filename"`
	ByteLength int64  `json:"byte_length"`
	ContentRef string `json:"content_ref"`
}

// DeletionImpact reports what a cascading delete would remove, computed
// from the live store so confirmation dialogs never show stale counts.
type DeletionImpact struct {
	Sessions int `json:"sessions"`
	Photos   int `json:"photos"`
}

// --- Mutation payloads ---

// ClientCreatePayload is used for client creation. AccessCode is only
// honored on the seeding/import path; the admin API always leaves it
// empty and lets the store generate one.
type ClientCreatePayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AccessCode string `json:"-"`
}

// ClientUpdatePayload carries a partial client update. Nil fields are
// left untouched; the access code and creation date are not settable.
type ClientUpdatePayload struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// SessionCreatePayload is used for session creation.
type SessionCreatePayload struct {
	ClientID string        `json:"client_id"`
	Name     string        `json:"name"`
	Date     string        `json:"date"`
	Type     string        `json:"type"`
	Status   SessionStatus `json:"status"`
}

// SessionUpdatePayload carries a partial session update. PhotoCount is
// derived and therefore not settable.
type SessionUpdatePayload struct {
	Name   *string        `json:"name,omitempty"`
	Date   *string        `json:"date,omitempty"`
	Type   *string        `json:"type,omitempty"`
	Status *SessionStatus `json:"status,omitempty"`
}

// AlbumUpdatePayload carries a partial album update (rename).
type AlbumUpdatePayload struct {
	Name *string `json:"name,omitempty"`
}

// AlbumPhotoPayload is used to add a photo to a portfolio album.
type AlbumPhotoPayload struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Session string `json:"session"`
}
