package memory

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Board dimensions.
const (
	Rows      = 4
	Cols      = 4
	TileCount = Rows * Cols
)

// Layout places the grid on a surface. Units are whatever the surface uses.
type Layout struct {
	OriginX, OriginY int
	TileW, TileH     int
	GapX, GapY       int
}

// LayoutFromConfig builds a layout from a surface section.
func LayoutFromConfig(s config.SurfaceConfig) Layout {
	return Layout{
		OriginX: s.Origin.X,
		OriginY: s.Origin.Y,
		TileW:   s.Tile.W,
		TileH:   s.Tile.H,
		GapX:    s.Gap.W,
		GapY:    s.Gap.H,
	}
}

// TileRect returns the bounds of the tile at (row, col).
func (l Layout) TileRect(row, col int) core.Rect {
	return core.NewRect(
		l.OriginX+col*(l.TileW+l.GapX),
		l.OriginY+row*(l.TileH+l.GapY),
		l.TileW,
		l.TileH,
	)
}

// Bounds returns the rectangle covering every tile.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(
		l.OriginX,
		l.OriginY,
		Cols*l.TileW+(Cols-1)*l.GapX,
		Rows*l.TileH+(Rows-1)*l.GapY,
	)
}

// Board owns the 16 tiles in row-major order.
// Every ImageID appears on exactly two tiles and tiles never change image.
type Board struct {
	layout Layout
	tiles  [TileCount]*Tile
}

// NewBoard deals a shuffled board: ids 0..7 are duplicated, shuffled with
// rng and assigned to the grid row by row.
func NewBoard(layout Layout, rng *rand.Rand) *Board {
	deal := make([]ImageID, 0, TileCount)
	for id := range ImageCount {
		deal = append(deal, ImageID(id), ImageID(id))
	}
	rng.Shuffle(len(deal), func(i, j int) {
		deal[i], deal[j] = deal[j], deal[i]
	})

	b := &Board{layout: layout}
	for i, id := range deal {
		b.tiles[i] = NewTile(layout.TileRect(i/Cols, i%Cols), id)
	}
	return b
}

// Layout returns the layout the board was dealt with.
func (b *Board) Layout() Layout {
	return b.layout
}

// Tiles returns the tiles in row-major order.
func (b *Board) Tiles() []*Tile {
	return b.tiles[:]
}

// Tile returns the tile at index i, or nil when out of range.
func (b *Board) Tile(i int) *Tile {
	if i < 0 || i >= TileCount {
		return nil
	}
	return b.tiles[i]
}

// IndexAt returns the index of the tile under p, or -1.
func (b *Board) IndexAt(p core.Point) int {
	for i, t := range b.tiles {
		if t.HitTest(p) {
			return i
		}
	}
	return -1
}

// RevealedCount returns the number of face-up tiles.
func (b *Board) RevealedCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.Revealed() {
			n++
		}
	}
	return n
}

// MatchedCount returns the number of tiles whose pair has been found.
func (b *Board) MatchedCount() int {
	n := 0
	for _, t := range b.tiles {
		if t.Matched() {
			n++
		}
	}
	return n
}

// Unresolved returns the tiles that are revealed but not matched.
func (b *Board) Unresolved() []*Tile {
	var out []*Tile
	for _, t := range b.tiles {
		if t.Revealed() && !t.Matched() {
			out = append(out, t)
		}
	}
	return out
}

// HideUnmatched turns every unmatched tile face down and returns how many
// were showing.
func (b *Board) HideUnmatched() int {
	n := 0
	for _, t := range b.tiles {
		if t.Matched() {
			continue
		}
		if t.Revealed() {
			n++
		}
		t.SetRevealed(false)
	}
	return n
}

// Deal returns the image of every tile in row-major order.
func (b *Board) Deal() [TileCount]ImageID {
	var out [TileCount]ImageID
	for i, t := range b.tiles {
		out[i] = t.Image()
	}
	return out
}

// Draw draws every tile.
func (b *Board) Draw(c Canvas) {
	for _, t := range b.tiles {
		t.Draw(c)
	}
}

// String renders the board as a grid for logs: '#' is face down, a digit is
// a revealed image and a bracketed digit is matched.
func (b *Board) String() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		if i > 0 && i%Cols == 0 {
			sb.WriteByte('\n')
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case t.Matched():
			sb.WriteByte('[')
			sb.WriteByte(byte('0' + t.Image()))
			sb.WriteByte(']')
		case t.Revealed():
			sb.WriteByte(' ')
			sb.WriteByte(byte('0' + t.Image()))
			sb.WriteByte(' ')
		default:
			sb.WriteString(" # ")
		}
	}
	return sb.String()
}
