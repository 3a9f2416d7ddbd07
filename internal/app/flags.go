package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	Preset string
	Scene  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 512, Height: 512, Scale: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Preset, "preset", c.Preset, "built-in preset to load at startup")
	fs.StringVar(&c.Scene, "scene", c.Scene, "TOML scene file to load at startup")
}
