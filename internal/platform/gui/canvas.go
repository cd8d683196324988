package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

const (
	glyphW     = 7
	glyphH     = 13
	lineHeight = 16
	tileInset  = 18
)

var (
	backgroundColor = color.RGBA{0x1c, 0x1f, 0x26, 0xff}
	hiddenColor     = color.RGBA{0x3a, 0x40, 0x4d, 0xff}
	hiddenBorder    = color.RGBA{0x55, 0x5d, 0x6e, 0xff}
	faceColor       = color.RGBA{0xee, 0xee, 0xe8, 0xff}
	matchedBorder   = color.RGBA{0xf5, 0xc5, 0x18, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xc0}
)

// ansiColors approximates the terminal palette for text.
var ansiColors = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x0d, 0xbc, 0x79, 0xff},
	core.ColorYellow:        {0xe5, 0xe5, 0x10, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x23, 0xd1, 0x8b, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := ansiColors[c]; ok {
		return v
	}
	return ansiColors[core.ColorDefault]
}

// canvas implements memory.Canvas on an Ebiten image.
type canvas struct {
	dst     *ebiten.Image
	palette []color.RGBA
	names   []string
}

func (c *canvas) DrawTile(v memory.TileView) {
	x, y := float32(v.Rect.X), float32(v.Rect.Y)
	w, h := float32(v.Rect.W), float32(v.Rect.H)

	if v.Image == memory.HiddenImage {
		vector.DrawFilledRect(c.dst, x, y, w, h, hiddenColor, false)
		vector.StrokeRect(c.dst, x+1, y+1, w-2, h-2, 2, hiddenBorder, false)
		return
	}

	vector.DrawFilledRect(c.dst, x, y, w, h, faceColor, false)
	if int(v.Image) < len(c.palette) {
		vector.DrawFilledRect(c.dst, x+tileInset, y+tileInset/2, w-2*tileInset, h-2*tileInset, c.palette[v.Image], true)
	}
	if int(v.Image) < len(c.names) {
		name := c.names[v.Image]
		tx := v.Rect.X + (v.Rect.W-len(name)*glyphW)/2
		ty := v.Rect.Bottom() - tileInset/2
		text.Draw(c.dst, name, basicfont.Face7x13, tx, ty, color.Black)
	}
	if v.Matched {
		vector.StrokeRect(c.dst, x+1.5, y+1.5, w-3, h-3, 3, matchedBorder, false)
	}
}

// DrawText draws s with its top-left corner at (x, y) over a bg box.
func (c *canvas) DrawText(x, y int, s string, fg, bg core.Color) {
	w := len([]rune(s)) * glyphW
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w+4), float32(lineHeight), rgba(bg), false)
	text.Draw(c.dst, s, basicfont.Face7x13, x+2, y+glyphH-1, rgba(fg))
}

// drawBanner darkens area and centers lines on it.
func (c *canvas) drawBanner(area core.Rect, lines ...string) {
	vector.DrawFilledRect(c.dst, float32(area.X), float32(area.Y), float32(area.W), float32(area.H), overlayColor, false)

	top := area.Y + (area.H-len(lines)*2*lineHeight)/2
	for i, l := range lines {
		clr := rgba(core.ColorBrightWhite)
		if i == 0 {
			clr = matchedBorder
		}
		x := area.X + (area.W-len(l)*glyphW)/2
		text.Draw(c.dst, l, basicfont.Face7x13, x, top+i*2*lineHeight+glyphH, clr)
	}
}
