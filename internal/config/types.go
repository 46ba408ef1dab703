package config

import (
	"github.com/alexisbeaulieu97/swatch/internal/color"
)

// Default values applied to fields a document leaves out.
const (
	DefaultColor      = "#ffffff"
	DefaultAreaWidth  = 32
	DefaultAreaHeight = 12
	DefaultHistory    = 8
	DefaultLogLevel   = "info"
)

// Config is the root picker configuration.
type Config struct {
	Color    string     `yaml:"color" validate:"required,color"`
	XChannel string     `yaml:"x_channel,omitempty" validate:"omitempty,channel"`
	YChannel string     `yaml:"y_channel,omitempty" validate:"omitempty,channel"`
	XStep    float64    `yaml:"x_step,omitempty" validate:"gte=0"`
	YStep    float64    `yaml:"y_step,omitempty" validate:"gte=0"`
	Area     AreaConfig `yaml:"area"`
	History  int        `yaml:"history" validate:"gte=0,lte=64"`
	Log      LogConfig  `yaml:"log"`
}

// AreaConfig sizes the rendered color area in terminal cells.
type AreaConfig struct {
	Width  int `yaml:"width" validate:"gte=2,lte=256"`
	Height int `yaml:"height" validate:"gte=2,lte=128"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Human *bool  `yaml:"human,omitempty"`
}

// HumanReadable reports whether console formatting is requested. It
// defaults to true.
func (l LogConfig) HumanReadable() bool {
	return l.Human == nil || *l.Human
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{History: DefaultHistory}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in zero-valued fields. History is left alone since
// zero disables it; documents are decoded over Default so an omitted
// history keeps its default.
func (c *Config) ApplyDefaults() {
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.Area.Width == 0 {
		c.Area.Width = DefaultAreaWidth
	}
	if c.Area.Height == 0 {
		c.Area.Height = DefaultAreaHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// ParsedColor returns the configured color.
func (c *Config) ParsedColor() (color.Color, error) {
	return color.Parse(c.Color)
}

// Channels returns the configured axis channels. Unset channels are left
// empty for the color area to infer.
func (c *Config) Channels() (x, y color.Channel) {
	if c.XChannel != "" {
		x, _ = color.ParseChannel(c.XChannel)
	}
	if c.YChannel != "" {
		y, _ = color.ParseChannel(c.YChannel)
	}
	return x, y
}
