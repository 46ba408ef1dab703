package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/colorarea"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

// loadConfig reads the configuration named by --config, or the defaults
// when none is given.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if strings.TrimSpace(flags.configPath) == "" {
		return config.Default(), nil
	}

	abs, err := filepath.Abs(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", abs)
	}

	return config.ParseConfig(abs)
}

func newLogger(cfg *config.Config, flags *rootFlags, w io.Writer, component string) (*logger.Logger, error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable(),
		Writer:        w,
		Component:     component,
	})
}

// newAreaState builds an uncontrolled area from the configuration.
func newAreaState(cfg *config.Config, log *logger.Logger, onChange func(color.Color)) (*colorarea.State, error) {
	initial, err := cfg.ParsedColor()
	if err != nil {
		return nil, err
	}
	x, y := cfg.Channels()
	return colorarea.New(colorarea.Options{
		DefaultValue: initial,
		XChannel:     x,
		YChannel:     y,
		XChannelStep: cfg.XStep,
		YChannelStep: cfg.YStep,
		OnChange:     onChange,
		Logger:       log,
	}), nil
}
