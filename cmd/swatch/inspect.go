package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/colorarea"
)

type inspectJSONAxis struct {
	Channel  color.Channel `json:"channel"`
	Value    float64       `json:"value"`
	Min      float64       `json:"min"`
	Max      float64       `json:"max"`
	Step     float64       `json:"step"`
	PageStep float64       `json:"page_step"`
}

type inspectJSONPayload struct {
	Color string            `json:"color"`
	Hex   string            `json:"hex"`
	Space color.Space       `json:"space"`
	Axes  []inspectJSONAxis `json:"axes"`
}

func newInspectCmd(root *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the channels, values and steps of the configured area",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, root, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runInspect(cmd *cobra.Command, root *rootFlags, jsonOutput bool) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root, cmd.ErrOrStderr(), "inspect")
	if err != nil {
		return err
	}

	area, err := newAreaState(cfg, log, nil)
	if err != nil {
		return err
	}

	payload := inspectPayload(area)
	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Color: %s (%s)\n\n", payload.Color, payload.Hex)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "AXIS\tCHANNEL\tVALUE\tRANGE\tSTEP\tPAGE")
	for i, axis := range payload.Axes {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s-%s\t%s\t%s\n",
			[]string{"x", "y", "z"}[i],
			axis.Channel,
			formatFloat(axis.Value),
			formatFloat(axis.Min),
			formatFloat(axis.Max),
			formatFloat(axis.Step),
			formatFloat(axis.PageStep),
		)
	}
	return writer.Flush()
}

func inspectPayload(area *colorarea.State) inspectJSONPayload {
	c := area.Value()
	ch := area.Channels()

	axis := func(channel color.Channel, step, page float64) inspectJSONAxis {
		r := c.ChannelRange(channel)
		return inspectJSONAxis{
			Channel:  channel,
			Value:    c.ChannelValue(channel),
			Min:      r.MinValue,
			Max:      r.MaxValue,
			Step:     step,
			PageStep: page,
		}
	}
	zRange := c.ChannelRange(ch.Z)

	return inspectJSONPayload{
		Color: c.String(),
		Hex:   c.Hex(),
		Space: c.Space(),
		Axes: []inspectJSONAxis{
			axis(ch.X, area.XChannelStep(), area.XChannelPageStep()),
			axis(ch.Y, area.YChannelStep(), area.YChannelPageStep()),
			axis(ch.Z, zRange.Step, max(zRange.PageSize, zRange.Step)),
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
