// filepath: internal/gallery/controller.go
// Package gallery implements the client-facing gallery: the access gate
// that exchanges an access code for a viewing session, and the view
// controller that tracks filtering, view mode and photo selection.
package gallery

import (
	"fmt"
	"sync"

	"lumina/internal/models"
)

// ViewMode is the gallery layout.
type ViewMode string

const (
	ViewGrid    ViewMode = "grid"
	ViewList    ViewMode = "list"
	ViewMasonry ViewMode = "masonry"
)

// Valid reports whether m is one of the known view modes.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewGrid, ViewList, ViewMasonry:
		return true
	}
	return false
}

// FilterAll is the category filter that shows every photo.
const FilterAll = "all"

// Controller holds the view state over one unlocked photo set. The photo
// set is fixed at unlock time; filter, view mode and selection mutate on
// top of it. Selection is keyed by photo id and deliberately survives
// filter changes, so a viewer can collect picks across categories.
type Controller struct {
	mu       sync.Mutex
	photos   []models.Photo
	filter   string
	mode     ViewMode
	selected map[string]bool
}

// NewController starts a controller over photos with the default state:
// "all" filter, grid view, nothing selected.
func NewController(photos []models.Photo) *Controller {
	return &Controller{
		photos:   photos,
		filter:   FilterAll,
		mode:     ViewGrid,
		selected: map[string]bool{},
	}
}

// Photos returns the full unlocked photo set.
func (c *Controller) Photos() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.photos
}

// ViewMode returns the active layout.
func (c *Controller) ViewMode() ViewMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetViewMode switches the layout. Unknown modes are rejected and leave
// the current mode in place.
func (c *Controller) SetViewMode(mode ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown view mode %q", mode)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
	return nil
}

// Filter returns the active category filter.
func (c *Controller) Filter() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetFilter switches the category filter. The selection is not touched:
// photos picked under another filter stay picked.
func (c *Controller) SetFilter(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = category
}

// Categories lists the selectable filters: "all" first, then each photo
// category in first-seen order over the photo set.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	categories := []string{FilterAll}
	seen := map[string]bool{FilterAll: true}
	for _, p := range c.photos {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// FilteredPhotos returns the photos visible under the active filter, in
// upload order.
func (c *Controller) FilteredPhotos() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

func (c *Controller) filteredLocked() []models.Photo {
	if c.filter == FilterAll {
		return c.photos
	}
	filtered := []models.Photo{}
	for _, p := range c.photos {
		if p.Category == c.filter {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ToggleSelect flips a photo's selection state and reports the new
// state. Ids outside the unlocked set are ignored.
func (c *Controller) ToggleSelect(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.containsLocked(id) {
		return false
	}
	if c.selected[id] {
		delete(c.selected, id)
		return false
	}
	c.selected[id] = true
	return true
}

func (c *Controller) containsLocked(id string) bool {
	for _, p := range c.photos {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SelectAllToggle replaces the selection with every currently visible
// photo, unless the selection size already equals the visible count, in
// which case it clears everything.
func (c *Controller) SelectAllToggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	if len(c.selected) == len(filtered) {
		c.selected = map[string]bool{}
		return
	}
	next := make(map[string]bool, len(filtered))
	for _, p := range filtered {
		next[p.ID] = true
	}
	c.selected = next
}

// ClearSelection drops every pick.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = map[string]bool{}
}

// SelectedCount returns the number of picked photos.
func (c *Controller) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selected)
}

// Selected returns the picked photos in upload order, regardless of the
// active filter.
func (c *Controller) Selected() []models.Photo {
	c.mu.Lock()
	defer c.mu.Unlock()

	picked := []models.Photo{}
	for _, p := range c.photos {
		if c.selected[p.ID] {
			picked = append(picked, p)
		}
	}
	return picked
}

// SelectedIDs returns the picked photo ids in upload order.
func (c *Controller) SelectedIDs() []string {
	ids := []string{}
	for _, p := range c.Selected() {
		ids = append(ids, p.ID)
	}
	return ids
}
