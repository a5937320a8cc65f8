package ui2d

import "github.com/Jamieson-H7/visualizations/internal/engine/geometry"

// Color is an RGB color with float components (0.0 to 1.0). Panels are
// opaque, so there is no alpha channel.
type Color struct {
	R, G, B float32
}

func (c Color) vertex() geometry.Color {
	return geometry.Color{c.R, c.G, c.B}
}

// Style holds the widget colors for one theme.
type Style struct {
	PanelBg      Color
	PanelBorder  Color
	ButtonNormal Color
	ButtonHover  Color
	ButtonActive Color
	InputBg      Color
	InputBorder  Color
	Text         Color
	TextDim      Color
	Highlight    Color
}

// Predefined styles.
var (
	DarkStyle = Style{
		PanelBg:      Color{0.13, 0.14, 0.16},
		PanelBorder:  Color{0.3, 0.3, 0.36},
		ButtonNormal: Color{0.18, 0.19, 0.23},
		ButtonHover:  Color{0.26, 0.27, 0.33},
		ButtonActive: Color{0.1, 0.3, 0.5},
		InputBg:      Color{0.07, 0.07, 0.09},
		InputBorder:  Color{0.22, 0.22, 0.28},
		Text:         Color{0.9, 0.9, 0.9},
		TextDim:      Color{0.55, 0.55, 0.6},
		Highlight:    Color{0.2, 0.6, 0.9},
	}

	LightStyle = Style{
		PanelBg:      Color{0.95, 0.95, 0.96},
		PanelBorder:  Color{0.7, 0.7, 0.74},
		ButtonNormal: Color{0.86, 0.87, 0.9},
		ButtonHover:  Color{0.78, 0.8, 0.85},
		ButtonActive: Color{0.6, 0.75, 0.9},
		InputBg:      Color{1, 1, 1},
		InputBorder:  Color{0.75, 0.75, 0.8},
		Text:         Color{0.1, 0.1, 0.12},
		TextDim:      Color{0.45, 0.45, 0.5},
		Highlight:    Color{0.15, 0.45, 0.8},
	}
)

// StyleFor returns the dark or light style.
func StyleFor(dark bool) Style {
	if dark {
		return DarkStyle
	}
	return LightStyle
}
