package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the default memory game configuration.
// It mirrors defaults/memory.yaml and is used when the embedded file
// cannot be parsed.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Timing: TimingConfig{
			FPS:           60,
			RevealDelayMS: 300,
		},
		Terminal: SurfaceConfig{
			Title:  "Memory Tiles",
			Width:  56,
			Height: 22,
			Origin: PointConfig{X: 2, Y: 2},
			Tile:   SizeConfig{W: 9, H: 4},
			Gap:    SizeConfig{W: 1, H: 1},
			Score:  PointConfig{X: 45, Y: 2},
		},
		Window: SurfaceConfig{
			Title:  "Memory Tiles",
			Width:  525,
			Height: 425,
			Origin: PointConfig{X: 5, Y: 5},
			Tile:   SizeConfig{W: 100, H: 100},
			Gap:    SizeConfig{W: 5, H: 5},
			Score:  PointConfig{X: 445, Y: 0},
		},
		Images: []ImageConfig{
			{Name: "sun", Glyph: "☀", Color: "bright_yellow", RGB: "#f5c518"},
			{Name: "moon", Glyph: "☾", Color: "bright_white", RGB: "#d8d8e8"},
			{Name: "star", Glyph: "★", Color: "yellow", RGB: "#e0a030"},
			{Name: "heart", Glyph: "♥", Color: "bright_red", RGB: "#e0304a"},
			{Name: "spade", Glyph: "♠", Color: "bright_blue", RGB: "#3a6fe0"},
			{Name: "club", Glyph: "♣", Color: "bright_green", RGB: "#2fb54a"},
			{Name: "diamond", Glyph: "♦", Color: "bright_magenta", RGB: "#c040d0"},
			{Name: "note", Glyph: "♪", Color: "bright_cyan", RGB: "#30c8d8"},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `memory config`.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
