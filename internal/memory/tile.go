package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// Tile is one cell of the board.
// A matched tile is always revealed; the setters keep that true.
type Tile struct {
	rect     core.Rect
	image    ImageID
	revealed bool
	matched  bool
}

// TileView is what a Canvas needs to draw a tile.
// Image is HiddenImage while the tile is face down.
type TileView struct {
	Rect    core.Rect
	Image   ImageID
	Matched bool
}

// NewTile creates a face-down tile.
func NewTile(rect core.Rect, image ImageID) *Tile {
	return &Tile{rect: rect, image: image}
}

// Draw issues a draw command for the placeholder or the tile's image.
func (t *Tile) Draw(c Canvas) {
	c.DrawTile(t.View())
}

// View returns the drawable state of the tile.
func (t *Tile) View() TileView {
	img := HiddenImage
	if t.revealed {
		img = t.image
	}
	return TileView{Rect: t.rect, Image: img, Matched: t.matched}
}

// HitTest reports whether p lies inside the tile.
func (t *Tile) HitTest(p core.Point) bool {
	return t.rect.ContainsPoint(p)
}

// Flip reveals the tile if p lies inside it and it is face down.
// It returns true only for that hidden to revealed transition, so clicking a
// tile that is already showing never counts as a flip.
func (t *Tile) Flip(p core.Point) bool {
	if t.revealed || !t.HitTest(p) {
		return false
	}
	t.revealed = true
	return true
}

// SetRevealed shows or hides the tile. Hiding a matched tile is a no-op.
func (t *Tile) SetRevealed(v bool) {
	if !v && t.matched {
		return
	}
	t.revealed = v
}

// SetMatched marks the tile as part of a found pair. Matching also reveals.
func (t *Tile) SetMatched(v bool) {
	t.matched = v
	if v {
		t.revealed = true
	}
}

// Revealed reports whether the tile is face up.
func (t *Tile) Revealed() bool {
	return t.revealed
}

// Matched reports whether the tile's pair has been found.
func (t *Tile) Matched() bool {
	return t.matched
}

// Image returns the tile's image, whether or not it is revealed.
func (t *Tile) Image() ImageID {
	return t.image
}

// Position returns the top-left corner.
func (t *Tile) Position() core.Point {
	return t.rect.Min()
}

// Rect returns the tile bounds.
func (t *Tile) Rect() core.Rect {
	return t.rect
}
