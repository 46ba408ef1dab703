// Package colorslider implements the state of a one-dimensional slider that
// edits a single channel of a color.
package colorslider

import (
	"math"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/controlled"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/numeric"
)

// Options configures a State.
type Options struct {
	Value        color.Color
	DefaultValue color.Color
	// Channel is the channel edited by the slider. It must belong to the
	// color's space or be alpha.
	Channel color.Channel
	// Step overrides the channel step. Zero or NaN selects the channel's
	// own step.
	Step float64

	OnChange    func(color.Color)
	OnChangeEnd func(color.Color)

	Logger *logger.Logger
}

// State is the color slider state machine. It is not safe for concurrent
// use.
type State struct {
	value      controlled.Value[color.Color]
	controlled *controlled.Controlled[color.Color]
	committed  color.Color

	channel   color.Channel
	stepInput float64

	dragging    bool
	onChangeEnd func(color.Color)
	log         *logger.Logger
}

// New creates a State from opts.
func New(opts Options) *State {
	s := &State{
		channel:     opts.Channel,
		stepInput:   opts.Step,
		onChangeEnd: opts.OnChangeEnd,
		log:         opts.Logger,
	}
	if opts.Value != nil {
		c := controlled.NewControlled(color.Normalize(opts.Value), opts.OnChange)
		s.value, s.controlled = c, c
	} else {
		initial := opts.DefaultValue
		if initial == nil {
			initial = color.White
		}
		s.value = controlled.NewUncontrolled(color.Normalize(initial), opts.OnChange)
	}
	s.committed = s.value.Get()
	return s
}

// Value returns the current color.
func (s *State) Value() color.Color { return s.value.Get() }

// SetValue replaces the current color. An unchanged color does not fire
// OnChange.
func (s *State) SetValue(c color.Color) {
	s.commit(color.Normalize(c))
}

// Sync adopts a new caller-owned color. Only controlled states accept it.
func (s *State) Sync(c color.Color) {
	if s.controlled == nil {
		s.log.Warn("ignoring sync on uncontrolled color slider", "value", c.String())
		return
	}
	c = color.Normalize(c)
	s.controlled.Sync(c)
	s.committed = c
}

// Channel is the edited channel.
func (s *State) Channel() color.Channel { return s.channel }

// SetChannel switches the edited channel.
func (s *State) SetChannel(ch color.Channel) { s.channel = ch }

// Range is the edited channel's range.
func (s *State) Range() color.ChannelRange {
	return s.value.Get().ChannelRange(s.channel)
}

// Step is the unit step of the slider.
func (s *State) Step() float64 {
	if s.stepInput > 0 && !math.IsNaN(s.stepInput) && !math.IsInf(s.stepInput, 0) {
		return s.stepInput
	}
	return s.Range().Step
}

// PageStep is the coarse step of the slider, never smaller than Step.
func (s *State) PageStep() float64 {
	return math.Max(s.Range().PageSize, s.Step())
}

// ThumbValue is the current value of the edited channel.
func (s *State) ThumbValue() float64 {
	return s.value.Get().ChannelValue(s.channel)
}

// SetThumbValue writes the edited channel. Writing the current value is a
// no-op.
func (s *State) SetThumbValue(v float64) {
	current := s.value.Get()
	if current.ChannelValue(s.channel) == v {
		return
	}
	s.commit(current.WithChannelValue(s.channel, v))
}

// ThumbPercent is the thumb position as a fraction of the track.
func (s *State) ThumbPercent() float64 {
	r := s.Range()
	return (s.ThumbValue() - r.MinValue) / (r.MaxValue - r.MinValue)
}

// SetThumbPercent moves the thumb to a fraction of the track. The fraction
// is clamped to [0, 1] and the value snapped to the step.
func (s *State) SetThumbPercent(p float64) {
	r := s.Range()
	v := r.MinValue + numeric.Clamp(p, 0, 1)*(r.MaxValue-r.MinValue)
	s.SetThumbValue(numeric.SnapToStep(v, r.MinValue, r.MaxValue, s.Step()))
}

// IncrementThumb raises the channel by step.
func (s *State) IncrementThumb(step float64) {
	r := s.Range()
	s.SetThumbValue(numeric.SnapToStep(s.ThumbValue()+step, r.MinValue, r.MaxValue, step))
}

// DecrementThumb lowers the channel by step.
func (s *State) DecrementThumb(step float64) {
	r := s.Range()
	s.SetThumbValue(numeric.SnapToStep(s.ThumbValue()-step, r.MinValue, r.MaxValue, step))
}

// IsDragging reports whether a drag session is open.
func (s *State) IsDragging() bool { return s.dragging }

// SetDragging opens or closes a drag session. Closing an open session
// reports the last committed color to OnChangeEnd.
func (s *State) SetDragging(dragging bool) {
	was := s.dragging
	s.dragging = dragging
	if was && !dragging {
		s.log.Debug("color slider drag ended", "channel", string(s.channel), "value", s.committed.String())
		if s.onChangeEnd != nil {
			s.onChangeEnd(s.committed)
		}
	}
}

// DisplayColor is the color used to paint the thumb. A hue slider shows the
// pure hue, an alpha slider keeps the transparency and every other channel
// shows the opaque color.
func (s *State) DisplayColor() color.Color {
	current := s.value.Get()
	switch s.channel {
	case color.Hue:
		return color.HSL{H: current.ChannelValue(color.Hue), S: 100, L: 50, A: 1}
	case color.Alpha:
		return current
	default:
		return current.WithChannelValue(color.Alpha, 1)
	}
}

func (s *State) commit(c color.Color) {
	s.committed = c
	s.value.Set(c)
}
