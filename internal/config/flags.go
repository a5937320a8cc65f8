package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the vector readout")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagTheme      = flag.String("theme", "", "Colour theme: dark, light or auto")
	flagGridExtent = flag.Int("grid-extent", -1, "Grid lines on each side of the origin")
	flagInvertZoom = flag.Bool("invert-zoom", false, "Invert wheel and pinch zoom direction")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.View.DebugMode = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagTheme != "" {
		cfg.View.Theme = Theme(*flagTheme)
	}
	if *flagGridExtent >= 0 {
		cfg.View.GridExtent = *flagGridExtent
	}
	if *flagInvertZoom {
		cfg.Input.InvertZoom = true
	}
}
