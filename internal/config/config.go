// Package config provides YAML-based configuration loading for the memory
// game: timing, surface layouts and the image set.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

// PairCount is the number of distinct images on the board.
// Every image is placed on exactly two tiles.
const PairCount = 8

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Timing   TimingConfig  `yaml:"timing"`
	Terminal SurfaceConfig `yaml:"terminal"`
	Window   SurfaceConfig `yaml:"window"`
	Images   []ImageConfig `yaml:"images"`
}

// TimingConfig defines frame rate and the visible delay of a flipped pair.
type TimingConfig struct {
	FPS           int `yaml:"fps"`
	RevealDelayMS int `yaml:"reveal_delay_ms"`
}

// RevealDelay returns the reveal delay as a duration.
func (t TimingConfig) RevealDelay() time.Duration {
	return time.Duration(t.RevealDelayMS) * time.Millisecond
}

// SurfaceConfig describes a drawing surface and the fixed grid layout on it.
// Units are character cells for the terminal and pixels for the window.
type SurfaceConfig struct {
	Title  string      `yaml:"title"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Origin PointConfig `yaml:"origin"`
	Tile   SizeConfig  `yaml:"tile"`
	Gap    SizeConfig  `yaml:"gap"`
	Score  PointConfig `yaml:"score"`
}

// PointConfig is a position on a surface.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ImageConfig describes how one tile image is drawn.
type ImageConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // single rune for the terminal
	Color string `yaml:"color"` // ANSI colour name for the terminal
	RGB   string `yaml:"rgb"`   // #rrggbb for the window
}

// GlyphRune returns the first rune of the glyph, or '?' when empty.
func (i ImageConfig) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(i.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Validate checks the configuration for values the game cannot run with.
func (c MemoryConfig) Validate() error {
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("%w: timing.fps must be positive, got %d", ErrInvalid, c.Timing.FPS)
	}
	if c.Timing.RevealDelayMS < 0 {
		return fmt.Errorf("%w: timing.reveal_delay_ms must not be negative", ErrInvalid)
	}

	if err := c.Terminal.validate("terminal"); err != nil {
		return err
	}
	if err := c.Window.validate("window"); err != nil {
		return err
	}

	if len(c.Images) != PairCount {
		return fmt.Errorf("%w: need exactly %d images, got %d", ErrInvalid, PairCount, len(c.Images))
	}

	seen := make(map[string]bool, len(c.Images))
	for i, img := range c.Images {
		if img.Name == "" {
			return fmt.Errorf("%w: images[%d] has no name", ErrInvalid, i)
		}
		if seen[img.Name] {
			return fmt.Errorf("%w: duplicate image %q", ErrInvalid, img.Name)
		}
		seen[img.Name] = true

		if utf8.RuneCountInString(img.Glyph) != 1 {
			return fmt.Errorf("%w: image %q glyph must be a single character", ErrInvalid, img.Name)
		}
		if _, _, _, err := ParseHexColor(img.RGB); err != nil {
			return fmt.Errorf("%w: image %q: %v", ErrInvalid, img.Name, err)
		}
	}

	return nil
}

// validate checks a single surface layout.
func (s SurfaceConfig) validate(section string) error {
	if s.Tile.W <= 0 || s.Tile.H <= 0 {
		return fmt.Errorf("%w: %s.tile must have positive size", ErrInvalid, section)
	}
	if s.Gap.W < 0 || s.Gap.H < 0 {
		return fmt.Errorf("%w: %s.gap must not be negative", ErrInvalid, section)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %s size must be positive", ErrInvalid, section)
	}
	return nil
}

// ParseHexColor parses a "#rrggbb" colour. The leading '#' is optional.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return 0, 0, 0, fmt.Errorf("colour %q is not #rrggbb", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("colour %q is not #rrggbb", s)
	}

	r, g, b = c.RGB255()
	return r, g, b, nil
}
