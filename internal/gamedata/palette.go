package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// SwatchDef is a named box colour.
type SwatchDef struct {
	Name  string `json:"name"`
	Color string `json:"color"` // Hex colour code (e.g., "#A855F7")
}

// TCellColor returns the colour as a tcell.Color.
func (s *SwatchDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Palette []SwatchDef `json:"palette"`
}

// Colors returns the hex codes in palette order.
func (p *PaletteFile) Colors() []string {
	colors := make([]string, len(p.Palette))
	for i, s := range p.Palette {
		colors[i] = s.Color
	}
	return colors
}

// LoadPalette loads the box palette from the embedded palette.json file.
func LoadPalette() (*PaletteFile, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Palette) == 0 {
		return nil, errors.New("no colours loaded from palette.json")
	}
	for _, s := range file.Palette {
		if _, err := ParseHexColor(s.Color); err != nil {
			return nil, err
		}
	}
	return &file, nil
}
