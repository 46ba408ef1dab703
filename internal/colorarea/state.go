// Package colorarea implements the state of a two-dimensional color editing
// surface: two channels of a color are mapped to the horizontal and vertical
// axes while the third is held fixed.
//
// The state is not safe for concurrent use. It is driven from the single
// goroutine that handles input events and every operation completes
// synchronously.
package colorarea

import (
	"math"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/controlled"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/numeric"
)

// Options configures a State.
type Options struct {
	// Value makes the state controlled: it always reflects the caller's
	// value and changes are only requested through OnChange.
	Value color.Color
	// DefaultValue seeds an uncontrolled state. Ignored when Value is set.
	DefaultValue color.Color

	// XChannel and YChannel select the axis channels. Missing ones are
	// inferred from the color space.
	XChannel color.Channel
	YChannel color.Channel

	// XChannelStep and YChannelStep override the channel step. Zero or NaN
	// selects the channel's own step.
	XChannelStep float64
	YChannelStep float64

	// OnChange receives every committed color.
	OnChange func(color.Color)
	// OnChangeEnd receives the last committed color when a drag session
	// closes.
	OnChangeEnd func(color.Color)

	Logger *logger.Logger
}

// Point is a position within the unit square, origin at the top left.
type Point struct {
	X, Y float64
}

// State is the color area state machine.
type State struct {
	value      controlled.Value[color.Color]
	controlled *controlled.Controlled[color.Color]

	// committed mirrors the most recently written color so the end of a
	// drag session reports it even before a controlling caller syncs.
	committed color.Color

	xInput, yInput         color.Channel
	memo                   channelMemo
	xStepInput, yStepInput float64

	dragging    bool
	onChangeEnd func(color.Color)
	log         *logger.Logger
}

// New creates a State from opts.
func New(opts Options) *State {
	s := &State{
		xInput:      opts.XChannel,
		yInput:      opts.YChannel,
		xStepInput:  opts.XChannelStep,
		yStepInput:  opts.YChannelStep,
		onChangeEnd: opts.OnChangeEnd,
		log:         opts.Logger,
	}

	if opts.Value != nil {
		c := controlled.NewControlled(color.Normalize(opts.Value), opts.OnChange)
		s.value = c
		s.controlled = c
	} else {
		initial := opts.DefaultValue
		if initial == nil {
			initial = color.White
		}
		s.value = controlled.NewUncontrolled(color.Normalize(initial), opts.OnChange)
	}
	s.committed = s.value.Get()

	s.Channels()
	return s
}

// NewFromStrings is like New but parses the value and default value from
// text. Empty strings are treated as absent.
func NewFromStrings(value, defaultValue string, opts Options) (*State, error) {
	if value != "" {
		c, err := color.Parse(value)
		if err != nil {
			return nil, err
		}
		opts.Value = c
	}
	if defaultValue != "" {
		c, err := color.Parse(defaultValue)
		if err != nil {
			return nil, err
		}
		opts.DefaultValue = c
	}
	return New(opts), nil
}

// Value returns the current color.
func (s *State) Value() color.Color {
	return s.value.Get()
}

// SetValue replaces the current color. Setting a color equal to the current
// one is a no-op and does not fire OnChange, matching every other setter.
func (s *State) SetValue(c color.Color) {
	c = color.Normalize(c)
	s.committed = c
	s.value.Set(c)
}

// SetValueString parses v and replaces the current color with it.
func (s *State) SetValueString(v string) error {
	c, err := color.Parse(v)
	if err != nil {
		return err
	}
	s.SetValue(c)
	return nil
}

// Sync adopts a new caller-owned color. Only controlled states accept it.
func (s *State) Sync(c color.Color) {
	if s.controlled == nil {
		s.log.Warn("ignoring sync on uncontrolled color area", "value", c.String())
		return
	}
	c = color.Normalize(c)
	s.controlled.Sync(c)
	s.committed = c
}

// Controlled reports whether the color is owned by the caller.
func (s *State) Controlled() bool {
	return s.value.Controlled()
}

// Channels returns the axis and fixed channels for the current color.
func (s *State) Channels() Channels {
	space := s.value.Get().Space()
	ch, changed := s.memo.resolve(space, s.xInput, s.yInput)
	if changed && s.log.DebugEnabled() {
		s.log.Debug("color area channels resolved",
			"space", string(space), "x", string(ch.X), "y", string(ch.Y), "z", string(ch.Z))
	}
	return ch
}

// SetChannels replaces the requested axis channels. Empty values are
// inferred.
func (s *State) SetChannels(x, y color.Channel) {
	s.xInput, s.yInput = x, y
	s.Channels()
}

// SetChannelSteps replaces the step overrides. Zero or NaN selects the
// channel's own step.
func (s *State) SetChannelSteps(x, y float64) {
	s.xStepInput, s.yStepInput = x, y
}

// XChannelStep is the unit step of the horizontal channel.
func (s *State) XChannelStep() float64 {
	return effectiveStep(s.xStepInput, s.xRange())
}

// YChannelStep is the unit step of the vertical channel.
func (s *State) YChannelStep() float64 {
	return effectiveStep(s.yStepInput, s.yRange())
}

// XChannelPageStep is the coarse step of the horizontal channel. It is
// never smaller than XChannelStep.
func (s *State) XChannelPageStep() float64 {
	return math.Max(s.xRange().PageSize, s.XChannelStep())
}

// YChannelPageStep is the coarse step of the vertical channel. It is never
// smaller than YChannelStep.
func (s *State) YChannelPageStep() float64 {
	return math.Max(s.yRange().PageSize, s.YChannelStep())
}

func effectiveStep(override float64, r color.ChannelRange) float64 {
	if override > 0 && !math.IsNaN(override) && !math.IsInf(override, 0) {
		return override
	}
	return r.Step
}

func (s *State) xRange() color.ChannelRange {
	return s.value.Get().ChannelRange(s.Channels().X)
}

func (s *State) yRange() color.ChannelRange {
	return s.value.Get().ChannelRange(s.Channels().Y)
}

// XValue is the current value of the horizontal channel.
func (s *State) XValue() float64 {
	return s.value.Get().ChannelValue(s.Channels().X)
}

// YValue is the current value of the vertical channel.
func (s *State) YValue() float64 {
	return s.value.Get().ChannelValue(s.Channels().Y)
}

// SetXValue writes the horizontal channel. Writing the current value is a
// no-op.
func (s *State) SetXValue(v float64) {
	s.setChannel(s.Channels().X, v)
}

// SetYValue writes the vertical channel. Writing the current value is a
// no-op.
func (s *State) SetYValue(v float64) {
	s.setChannel(s.Channels().Y, v)
}

func (s *State) setChannel(ch color.Channel, v float64) {
	current := s.value.Get()
	if current.ChannelValue(ch) == v {
		return
	}
	s.commit(current.WithChannelValue(ch, v))
}

func (s *State) commit(c color.Color) {
	s.committed = c
	s.value.Set(c)
}

// SetColorFromPoint sets both axis channels from a position in the unit
// square, origin at the top left. Coordinates are clamped to [0, 1] and the
// resulting values are snapped to the channel steps. At most one change is
// committed per call.
func (s *State) SetColorFromPoint(x, y float64) {
	current := s.value.Get()
	ch := s.Channels()
	xr := current.ChannelRange(ch.X)
	yr := current.ChannelRange(ch.Y)

	newX := xr.MinValue + numeric.Clamp(x, 0, 1)*(xr.MaxValue-xr.MinValue)
	newY := yr.MinValue + (1-numeric.Clamp(y, 0, 1))*(yr.MaxValue-yr.MinValue)
	newX = numeric.SnapToStep(newX, xr.MinValue, xr.MaxValue, s.XChannelStep())
	newY = numeric.SnapToStep(newY, yr.MinValue, yr.MaxValue, s.YChannelStep())

	next := current
	if newX != current.ChannelValue(ch.X) {
		next = next.WithChannelValue(ch.X, newX)
	}
	if newY != current.ChannelValue(ch.Y) {
		next = next.WithChannelValue(ch.Y, newY)
	}
	if next == current {
		return
	}
	s.commit(next)
}

// ThumbPosition returns the position of the current color in the unit
// square. The vertical axis is inverted so the channel maximum is at the top.
func (s *State) ThumbPosition() Point {
	xr, yr := s.xRange(), s.yRange()
	return Point{
		X: (s.XValue() - xr.MinValue) / (xr.MaxValue - xr.MinValue),
		Y: 1 - (s.YValue()-yr.MinValue)/(yr.MaxValue-yr.MinValue),
	}
}

// IncrementX raises the horizontal channel by step.
func (s *State) IncrementX(step float64) {
	r := s.xRange()
	s.SetXValue(numeric.SnapToStep(s.XValue()+step, r.MinValue, r.MaxValue, step))
}

// DecrementX lowers the horizontal channel by step.
func (s *State) DecrementX(step float64) {
	r := s.xRange()
	s.SetXValue(numeric.SnapToStep(s.XValue()-step, r.MinValue, r.MaxValue, step))
}

// IncrementY raises the vertical channel by step.
func (s *State) IncrementY(step float64) {
	r := s.yRange()
	s.SetYValue(numeric.SnapToStep(s.YValue()+step, r.MinValue, r.MaxValue, step))
}

// DecrementY lowers the vertical channel by step.
func (s *State) DecrementY(step float64) {
	r := s.yRange()
	s.SetYValue(numeric.SnapToStep(s.YValue()-step, r.MinValue, r.MaxValue, step))
}

// IsDragging reports whether a drag session is open.
func (s *State) IsDragging() bool {
	return s.dragging
}

// SetDragging opens or closes a drag session. Closing an open session
// reports the last committed color to OnChangeEnd.
func (s *State) SetDragging(dragging bool) {
	was := s.dragging
	s.dragging = dragging

	switch {
	case dragging && !was:
		s.log.Debug("color area drag started", "value", s.committed.String())
	case !dragging && was:
		s.log.Debug("color area drag ended", "value", s.committed.String())
		if s.onChangeEnd != nil {
			s.onChangeEnd(s.committed)
		}
	}
}

// DisplayColor is the current color made fully opaque, for rendering the
// area and its thumb.
func (s *State) DisplayColor() color.Color {
	return s.value.Get().WithChannelValue(color.Alpha, 1)
}
