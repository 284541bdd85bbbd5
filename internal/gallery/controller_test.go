// filepath: internal/gallery/controller_test.go
package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumina/internal/models"
)

func galleryPhotos() []models.Photo {
	return []models.Photo{
		{ID: "p1", Category: "Ceremony"},
		{ID: "p2", Category: "Reception"},
		{ID: "p3", Category: "Ceremony"},
		{ID: "p4", Category: "Portraits"},
		{ID: "p5", Category: "Reception"},
	}
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(galleryPhotos())

	assert.Equal(t, FilterAll, c.Filter())
	assert.Equal(t, ViewGrid, c.ViewMode())
	assert.Equal(t, 0, c.SelectedCount())
	assert.Len(t, c.FilteredPhotos(), 5)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	c := NewController(galleryPhotos())
	assert.Equal(t, []string{"all", "Ceremony", "Reception", "Portraits"}, c.Categories())

	empty := NewController(nil)
	assert.Equal(t, []string{"all"}, empty.Categories())
}

func TestSetFilter(t *testing.T) {
	c := NewController(galleryPhotos())

	c.SetFilter("Ceremony")
	filtered := c.FilteredPhotos()
	assert.Len(t, filtered, 2)
	assert.Equal(t, "p1", filtered[0].ID)
	assert.Equal(t, "p3", filtered[1].ID)

	// A filter matching nothing yields an empty view, not an error.
	c.SetFilter("Unknown")
	assert.Empty(t, c.FilteredPhotos())
}

func TestToggleSelect(t *testing.T) {
	c := NewController(galleryPhotos())

	assert.True(t, c.ToggleSelect("p2"))
	assert.Equal(t, 1, c.SelectedCount())
	assert.False(t, c.ToggleSelect("p2"))
	assert.Equal(t, 0, c.SelectedCount())

	// Ids outside the unlocked set are ignored.
	assert.False(t, c.ToggleSelect("ghost"))
	assert.Equal(t, 0, c.SelectedCount())
}

func TestSelectionSurvivesFilterChange(t *testing.T) {
	c := NewController(galleryPhotos())

	c.SetFilter("Ceremony")
	c.ToggleSelect("p1")
	c.SetFilter("Reception")
	c.ToggleSelect("p2")

	// Picks from the Ceremony view are still held while Reception is
	// showing.
	assert.Equal(t, 2, c.SelectedCount())
	selected := c.Selected()
	assert.Equal(t, "p1", selected[0].ID)
	assert.Equal(t, "p2", selected[1].ID)
}

func TestSelectAllToggle(t *testing.T) {
	c := NewController(galleryPhotos())

	c.SetFilter("Ceremony")
	c.SelectAllToggle()
	assert.ElementsMatch(t, []string{"p1", "p3"}, c.SelectedIDs())

	// Same size as the visible set, so the second toggle clears.
	c.SelectAllToggle()
	assert.Equal(t, 0, c.SelectedCount())
}

func TestSelectAllToggleReplacesCrossFilterPicks(t *testing.T) {
	c := NewController(galleryPhotos())

	c.SetFilter("Reception")
	c.ToggleSelect("p2")
	c.SetFilter("Ceremony")

	// One pick held, two photos visible: sizes differ, so the toggle
	// replaces the whole selection with the visible set.
	c.SelectAllToggle()
	assert.ElementsMatch(t, []string{"p1", "p3"}, c.SelectedIDs())
}

func TestClearSelection(t *testing.T) {
	c := NewController(galleryPhotos())
	c.ToggleSelect("p1")
	c.ToggleSelect("p4")

	c.ClearSelection()
	assert.Equal(t, 0, c.SelectedCount())
	assert.Empty(t, c.Selected())
}

func TestSelectedInUploadOrder(t *testing.T) {
	c := NewController(galleryPhotos())
	c.ToggleSelect("p5")
	c.ToggleSelect("p1")
	c.ToggleSelect("p3")

	assert.Equal(t, []string{"p1", "p3", "p5"}, c.SelectedIDs())
}

func TestSetViewMode(t *testing.T) {
	c := NewController(galleryPhotos())

	assert.NoError(t, c.SetViewMode(ViewMasonry))
	assert.Equal(t, ViewMasonry, c.ViewMode())

	assert.Error(t, c.SetViewMode(ViewMode("carousel")))
	assert.Equal(t, ViewMasonry, c.ViewMode())
}
