package ui

// Mouse region identifiers
const (
	RegionOpen      = "open-button" // "Open Modal" on the page
	RegionBackdrop  = "backdrop"    // Whole screen behind the dialog
	RegionDialog    = "dialog"      // Dialog body; swallows clicks
	RegionClose     = "close"       // X in the dialog header
	RegionPrimary   = "primary"     // "Got it, thanks!"
	RegionSecondary = "secondary"   // "Remind me later"
)

// Rect is a screen rectangle in terminal cells. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region is a clickable area of the last composed frame.
type Region struct {
	ID   string
	Rect Rect
}

// HitMap holds the regions of one frame. Regions added later sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Add appends a region.
func (h *HitMap) Add(r Region) {
	h.regions = append(h.regions, r)
}

// AddRect appends a region built from coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int) {
	h.Add(Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: height}})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Find returns the first region with the given ID.
func (h *HitMap) Find(id string) (Region, bool) {
	for _, r := range h.regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Regions returns the recorded regions, bottom first.
func (h *HitMap) Regions() []Region {
	return h.regions
}
