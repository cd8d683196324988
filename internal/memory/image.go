package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// ImageID identifies the image on a tile. Two tiles with the same ImageID
// form a matching pair.
type ImageID int

// HiddenImage is drawn for a tile that is face down.
const HiddenImage ImageID = -1

// ImageCount is the number of distinct images dealt onto the board.
const ImageCount = config.PairCount

// Valid reports whether id names one of the dealt images.
func (id ImageID) Valid() bool {
	return id >= 0 && int(id) < ImageCount
}

func (id ImageID) String() string {
	if id == HiddenImage {
		return "hidden"
	}
	return fmt.Sprintf("image#%d", int(id))
}

// ImageStyle describes how an image is drawn on a character screen.
type ImageStyle struct {
	Name  string
	Glyph rune
	Color core.Color
}

// StylesFromConfig converts the configured image set, indexed by ImageID.
// Unknown colour names fall back to the default colour.
func StylesFromConfig(images []config.ImageConfig) []ImageStyle {
	styles := make([]ImageStyle, len(images))
	for i, img := range images {
		c, ok := core.ParseColor(img.Color)
		if !ok {
			c = core.ColorDefault
		}
		styles[i] = ImageStyle{
			Name:  img.Name,
			Glyph: img.GlyphRune(),
			Color: c,
		}
	}
	return styles
}

// style returns the style for id, or a '?' placeholder when the set is short.
func style(styles []ImageStyle, id ImageID) ImageStyle {
	if id < 0 || int(id) >= len(styles) {
		return ImageStyle{Name: id.String(), Glyph: '?', Color: core.ColorDefault}
	}
	return styles[id]
}
