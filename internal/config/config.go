// Package config handles visualizer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	gomath "math"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	View     ViewConfig     `yaml:"view"`
	Camera   CameraConfig   `yaml:"camera"`
	Input    InputConfig    `yaml:"input"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // Samples, 0 disables multisampling
}

// Theme selects the colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// Next cycles dark → light → auto → dark.
func (t Theme) Next() Theme {
	switch t {
	case ThemeDark:
		return ThemeLight
	case ThemeLight:
		return ThemeAuto
	default:
		return ThemeDark
	}
}

func (t Theme) valid() bool {
	return t == ThemeDark || t == ThemeLight || t == ThemeAuto
}

// ViewConfig holds the display toggles.
type ViewConfig struct {
	ShowAxes          bool  `yaml:"show_axes"`
	ShowArrow3D       bool  `yaml:"show_arrow_3d"`
	ShowComponents    bool  `yaml:"show_components"`
	ShowMatrixVectors bool  `yaml:"show_matrix_vectors"`
	ShowDraggableTips bool  `yaml:"show_draggable_tips"`
	DebugMode         bool  `yaml:"debug_mode"`
	ShowPanel         bool  `yaml:"show_panel"` // Vector and matrix editor
	GridExtent        int   `yaml:"grid_extent"` // Grid lines on each side of the origin
	Theme             Theme `yaml:"theme"`
}

// CameraConfig holds the initial orbit and zoom limits.
type CameraConfig struct {
	Azimuth   float32 `yaml:"azimuth"`   // Radians
	Elevation float32 `yaml:"elevation"` // Radians
	Zoom      float32 `yaml:"zoom"`
	MinZoom   float32 `yaml:"min_zoom"`
	MaxZoom   float32 `yaml:"max_zoom"`
}

// InputConfig holds pointer preferences.
type InputConfig struct {
	InvertHorizontal bool `yaml:"invert_horizontal"`
	InvertVertical   bool `yaml:"invert_vertical"`
	InvertZoom       bool `yaml:"invert_zoom"`
}

// VectorConfig is one starting vector.
type VectorConfig struct {
	Value           [3]float32 `yaml:"value,flow"`
	Visible         bool       `yaml:"visible"`
	ShowTransformed bool       `yaml:"show_transformed"`
}

// SceneConfig is the scene the visualizer starts with.
type SceneConfig struct {
	Vectors []VectorConfig `yaml:"vectors"`
	Rows    [][3]float32   `yaml:"rows,flow"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MaxGridExtent bounds grid_extent to keep the grid buffer reasonable.
const MaxGridExtent = 5000

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			MSAA:   4,
		},
		View: ViewConfig{
			ShowAxes:          true,
			ShowArrow3D:       true,
			ShowComponents:    false,
			ShowMatrixVectors: false,
			ShowDraggableTips: true,
			ShowPanel:         true,
			GridExtent:        1000,
			Theme:             ThemeAuto,
		},
		Camera: CameraConfig{
			Elevation: float32(gomath.Atan2(2, 3)),
			Zoom:      1,
			MinZoom:   0.01,
			MaxZoom:   10,
		},
		Scene: SceneConfig{
			Vectors: []VectorConfig{
				{Value: [3]float32{0.6, 0.6, 0.6}, Visible: true, ShowTransformed: true},
			},
			Rows: [][3]float32{
				{0.5, 0, 0},
				{0, 0.5, 0},
				{0, 0, 0.5},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.View.GridExtent < 0 || c.View.GridExtent > MaxGridExtent {
		errs = append(errs, fmt.Errorf("view: grid_extent %d outside [0, %d]", c.View.GridExtent, MaxGridExtent))
	}
	if !c.View.Theme.valid() {
		errs = append(errs, fmt.Errorf("view: unknown theme %q", c.View.Theme))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera: invalid zoom range [%g, %g]", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	return errors.Join(errs...)
}
