package renderer

import "github.com/Jamieson-H7/visualizations/internal/engine/geometry"

// Palette is the set of theme-dependent colours.
type Palette struct {
	Background geometry.Color
	Grid       geometry.GridColors
	// HandleBorder outlines the draggable tip discs.
	HandleBorder geometry.Color
}

// DarkPalette and LightPalette are the two colour schemes.
var (
	DarkPalette = Palette{
		Background:   geometry.Color{0.09, 0.10, 0.11},
		Grid:         geometry.GridColors{Minor: geometry.Color{0.22, 0.22, 0.22}, Major: geometry.Color{0.38, 0.38, 0.38}},
		HandleBorder: geometry.Color{1, 1, 1},
	}
	LightPalette = Palette{
		Background:   geometry.Color{1, 1, 1},
		Grid:         geometry.GridColors{Minor: geometry.Color{0.85, 0.85, 0.85}, Major: geometry.Color{0.6, 0.6, 0.6}},
		HandleBorder: geometry.Color{0.2, 0.2, 0.2},
	}
)

// PaletteFor returns the palette for dark or light mode.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// GridAlpha is the opacity used for the grid pass.
const GridAlpha = 0.8
