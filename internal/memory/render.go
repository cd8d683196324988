package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Draw draws the tiles and the score through c.
func (g *Game) Draw(c Canvas) {
	g.board.Draw(c)
	c.DrawText(g.opts.ScorePos.X, g.opts.ScorePos.Y, g.ScoreText(), core.ColorBrightWhite, core.ColorBlack)
}

// ScoreText is the score label.
func (g *Game) ScoreText() string {
	return fmt.Sprintf("Time %ds", g.score)
}

// Render draws the game to a character screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextColor(g.opts.Layout.OriginX, 0, g.opts.Title, core.ColorBrightCyan)
	g.Draw(&screenCanvas{dst: dst, images: g.opts.Images})

	x, y := g.opts.ScorePos.X, g.opts.ScorePos.Y
	dst.DrawText(x, y+1, fmt.Sprintf("Pairs %d/%d", g.Pairs(), ImageCount))
	dst.DrawText(x, y+2, fmt.Sprintf("Moves %d", g.moves))

	if !g.continueGame {
		g.renderOverlay(dst,
			"ALL PAIRS FOUND",
			fmt.Sprintf("Time %ds  Moves %d", g.score, g.moves),
			"Press R to restart",
		)
	}
}

// renderTooSmall tells the player how much room the board needs.
func (g *Game) renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", g.opts.MinWidth, g.opts.MinHeight))
}

// renderOverlay draws a centered box holding the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBoxColor(box, core.ColorBrightYellow)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, box.Y+2+i, l, c)
	}
}

// screenCanvas draws tiles as boxes of characters.
// Background colours are not representable and are ignored.
type screenCanvas struct {
	dst    *core.Screen
	images []ImageStyle
}

func (c *screenCanvas) DrawTile(v TileView) {
	r := v.Rect
	if v.Image == HiddenImage {
		c.dst.DrawRect(r, '░', core.ColorGray)
		c.dst.DrawBoxColor(r, core.ColorGray)
		return
	}

	st := style(c.images, v.Image)
	frame := core.ColorWhite
	if v.Matched {
		frame = st.Color
	}
	c.dst.DrawRect(r, ' ', core.ColorDefault)
	c.dst.DrawBoxColor(r, frame)

	cx, cy := r.Center()
	c.dst.SetCell(cx, cy, core.Cell{Rune: st.Glyph, Color: st.Color})
}

func (c *screenCanvas) DrawText(x, y int, s string, fg, _ core.Color) {
	c.dst.DrawTextColor(x, y, s, fg)
}
