// filepath: internal/gallery/gate_test.go
package gallery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/internal/models"
)

type stubResolver struct {
	photos map[string][]models.Photo
}

func (r *stubResolver) PhotosForAccessCode(code string) ([]models.Photo, error) {
	photos, ok := r.photos[code]
	if !ok {
		return nil, errors.New("unknown code")
	}
	return photos, nil
}

func TestGateUnlock(t *testing.T) {
	gate := NewGate(&stubResolver{photos: map[string][]models.Photo{
		"DEMO2024": {{ID: "p1"}, {ID: "p2"}},
	}}, "")

	assert.False(t, gate.Unlocked())
	assert.Nil(t, gate.Viewer())

	viewer, err := gate.SubmitAccess("sarah@example.com", "DEMO2024")
	assert.NoError(t, err)
	assert.True(t, gate.Unlocked())
	assert.Equal(t, "sarah@example.com", viewer.Email)
	assert.Len(t, viewer.Photos(), 2)
	assert.Equal(t, ViewGrid, viewer.ViewMode())
}

func TestGateRejectsUnknownCode(t *testing.T) {
	gate := NewGate(&stubResolver{photos: map[string][]models.Photo{}}, "")

	_, err := gate.SubmitAccess("x@example.com", "WRONG123")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), "Invalid access code. Try: DEMO2024")
	assert.False(t, gate.Unlocked())
}

func TestGateRejectionAdvertisesConfiguredCode(t *testing.T) {
	gate := NewGate(&stubResolver{photos: map[string][]models.Photo{}}, "SUMMER25")

	_, err := gate.SubmitAccess("x@example.com", "WRONG123")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Contains(t, err.Error(), "Invalid access code. Try: SUMMER25")
	assert.Equal(t, "Invalid access code. Try: SUMMER25", gate.RejectionMessage())
}

func TestGateFailedAttemptKeepsViewer(t *testing.T) {
	gate := NewGate(&stubResolver{photos: map[string][]models.Photo{
		"DEMO2024": {{ID: "p1"}},
	}}, "")

	viewer, err := gate.SubmitAccess("sarah@example.com", "DEMO2024")
	assert.NoError(t, err)
	viewer.ToggleSelect("p1")

	_, err = gate.SubmitAccess("intruder@example.com", "WRONG123")
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.True(t, gate.Unlocked())
	assert.Equal(t, "sarah@example.com", gate.Viewer().Email)
	assert.Equal(t, 1, gate.Viewer().SelectedCount())
}

func TestGateLockDiscardsState(t *testing.T) {
	gate := NewGate(&stubResolver{photos: map[string][]models.Photo{
		"DEMO2024": {{ID: "p1"}, {ID: "p2"}},
	}}, "")

	viewer, err := gate.SubmitAccess("sarah@example.com", "DEMO2024")
	assert.NoError(t, err)
	viewer.ToggleSelect("p1")
	viewer.SetFilter("Ceremony")

	gate.Lock()
	assert.False(t, gate.Unlocked())
	assert.Nil(t, gate.Viewer())

	// Unlocking again starts from a clean slate.
	viewer, err = gate.SubmitAccess("sarah@example.com", "DEMO2024")
	assert.NoError(t, err)
	assert.Equal(t, 0, viewer.SelectedCount())
	assert.Equal(t, FilterAll, viewer.Filter())
}
