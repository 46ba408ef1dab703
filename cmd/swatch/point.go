package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/color"
)

type pointOptions struct {
	X    float64
	Y    float64
	JSON bool
}

type pointJSONPayload struct {
	Color   string  `json:"color"`
	Hex     string  `json:"hex"`
	ThumbX  float64 `json:"thumb_x"`
	ThumbY  float64 `json:"thumb_y"`
	Changed bool    `json:"changed"`
}

func newPointCmd(root *rootFlags) *cobra.Command {
	opts := pointOptions{}

	cmd := &cobra.Command{
		Use:   "point",
		Short: "Set the configured color from a point in the area",
		Long: `Map a point of the unit square onto the configured area channels and print the
resulting color. The origin is the top left corner; values outside [0, 1] are clamped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoint(cmd, root, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.X, "x", 0, "Horizontal position in [0, 1]")
	cmd.Flags().Float64Var(&opts.Y, "y", 0, "Vertical position in [0, 1], 0 at the top")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("x") //nolint:errcheck
	cmd.MarkFlagRequired("y") //nolint:errcheck

	return cmd
}

func runPoint(cmd *cobra.Command, root *rootFlags, opts pointOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root, cmd.ErrOrStderr(), "point")
	if err != nil {
		return err
	}

	changes := 0
	area, err := newAreaState(cfg, log, func(color.Color) { changes++ })
	if err != nil {
		return err
	}

	area.SetDragging(true)
	area.SetColorFromPoint(opts.X, opts.Y)
	area.SetDragging(false)

	c := area.Value()
	thumb := area.ThumbPosition()

	if opts.JSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(pointJSONPayload{
			Color:   c.String(),
			Hex:     c.Hex(),
			ThumbX:  thumb.X,
			ThumbY:  thumb.Y,
			Changed: changes > 0,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Color:   %s\n", c.String())
	fmt.Fprintf(out, "Hex:     %s\n", c.Hex())
	fmt.Fprintf(out, "Thumb:   x=%s y=%s\n", formatFloat(thumb.X), formatFloat(thumb.Y))
	fmt.Fprintf(out, "Changed: %t\n", changes > 0)
	return nil
}
