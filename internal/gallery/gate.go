// filepath: internal/gallery/gate.go
package gallery

import (
	"errors"
	"fmt"

	"lumina/internal/models"
)

// ErrAccessDenied is returned when an access code does not resolve to a
// client.
var ErrAccessDenied = errors.New("access denied")

// DefaultCodeHint is the access code advertised by rejection messages
// when the deployment does not configure its own.
const DefaultCodeHint = "DEMO2024"

// InvalidCodeMessage renders the user-facing rejection shown by the
// access form. The hint carries a known-good code so the showcase
// deployment stays explorable.
func InvalidCodeMessage(codeHint string) string {
	if codeHint == "" {
		codeHint = DefaultCodeHint
	}
	return fmt.Sprintf("Invalid access code. Try: %s", codeHint)
}

// CodeResolver exchanges an access code for the photo set it unlocks.
type CodeResolver interface {
	PhotosForAccessCode(code string) ([]models.Photo, error)
}

// Viewer is one unlocked gallery session: who unlocked it and the view
// state they are driving.
type Viewer struct {
	Email string
	*Controller
}

// Gate guards the gallery. It starts locked; a valid access code unlocks
// it with a fresh viewer, and locking it again discards all view state
// including the selection.
type Gate struct {
	resolver CodeResolver
	codeHint string
	viewer   *Viewer
}

// NewGate builds a locked gate. codeHint is the code advertised by
// rejection messages; empty falls back to DefaultCodeHint.
func NewGate(resolver CodeResolver, codeHint string) *Gate {
	return &Gate{resolver: resolver, codeHint: codeHint}
}

// RejectionMessage is the user-facing message for a failed unlock.
func (g *Gate) RejectionMessage() string {
	return InvalidCodeMessage(g.codeHint)
}

// Unlocked reports whether a viewer currently holds the gallery open.
func (g *Gate) Unlocked() bool {
	return g.viewer != nil
}

// Viewer returns the active viewer, or nil when the gate is locked.
func (g *Gate) Viewer() *Viewer {
	return g.viewer
}

// SubmitAccess checks an access code and, on success, unlocks the
// gallery over the photos it resolves to. A failed attempt leaves any
// existing viewer untouched.
func (g *Gate) SubmitAccess(email, code string) (*Viewer, error) {
	photos, err := g.resolver.PhotosForAccessCode(code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.RejectionMessage(), ErrAccessDenied)
	}

	g.viewer = &Viewer{
		Email:      email,
		Controller: NewController(photos),
	}
	return g.viewer, nil
}

// Lock closes the gallery and discards the viewer's state.
func (g *Gate) Lock() {
	g.viewer = nil
}
