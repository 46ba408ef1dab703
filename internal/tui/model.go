package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/color"
	"github.com/alexisbeaulieu97/swatch/internal/colorarea"
	"github.com/alexisbeaulieu97/swatch/internal/colorslider"
	"github.com/alexisbeaulieu97/swatch/internal/config"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/ui/components"
)

type pointerTarget int

const (
	pointerNone pointerTarget = iota
	pointerArea
	pointerSlider
)

// session is the mutable picker state shared by every copy of Model. The
// area and slider are controlled by the session's color.
type session struct {
	color        color.Color
	area         *colorarea.State
	slider       *colorslider.State
	history      []color.Color
	historyLimit int
}

func (s *session) setColor(c color.Color) {
	s.color = c
	s.area.Sync(c)
	s.slider.Sync(c)
}

func (s *session) pushHistory(c color.Color) {
	if s.historyLimit <= 0 {
		return
	}
	if n := len(s.history); n > 0 && s.history[n-1] == c {
		return
	}
	s.history = append(s.history, c)
	if len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}
}

// Model contains the Bubbletea state for the color picker.
type Model struct {
	s          *session
	areaView   *components.ColorArea
	sliderView *components.ColorSlider
	keys       keyMap
	help       help.Model
	pointer    pointerTarget
	accepted   bool
	cancelled  bool
	log        *logger.Logger
}

// NewModel constructs a picker for the given configuration. The logger may
// be nil.
func NewModel(cfg *config.Config, log *logger.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	initial, err := cfg.ParsedColor()
	if err != nil {
		return Model{}, err
	}

	s := &session{color: initial, historyLimit: cfg.History}
	x, y := cfg.Channels()
	s.area = colorarea.New(colorarea.Options{
		Value:        initial,
		XChannel:     x,
		YChannel:     y,
		XChannelStep: cfg.XStep,
		YChannelStep: cfg.YStep,
		OnChange:     s.setColor,
		OnChangeEnd:  s.pushHistory,
		Logger:       log,
	})
	s.slider = colorslider.New(colorslider.Options{
		Value:       initial,
		Channel:     s.area.Channels().Z,
		OnChange:    s.setColor,
		OnChangeEnd: s.pushHistory,
		Logger:      log,
	})
	s.color = s.area.Value()

	return Model{
		s:          s,
		areaView:   components.NewColorArea(s.area, cfg.Area.Width, cfg.Area.Height),
		sliderView: components.NewColorSlider(s.slider, cfg.Area.Width),
		keys:       defaultKeyMap(),
		help:       help.New(),
		log:        log,
	}, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Color returns the color currently being edited.
func (m Model) Color() color.Color {
	return m.s.color
}

// History returns the committed colors, oldest first.
func (m Model) History() []color.Color {
	return append([]color.Color(nil), m.s.history...)
}

// Result returns the picked color and whether the user accepted it.
func (m Model) Result() (color.Color, bool) {
	return m.s.color, m.accepted
}

// Cancelled reports whether the user left without accepting.
func (m Model) Cancelled() bool {
	return m.cancelled
}
