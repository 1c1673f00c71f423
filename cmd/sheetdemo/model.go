package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/sheet/pkg/gestures"
	"github.com/go-drift/sheet/pkg/graphics"
	"github.com/go-drift/sheet/pkg/scroll"
	"github.com/go-drift/sheet/pkg/sheet"
)

// Terminal cells are mapped to points so the default sheet heights and
// thresholds behave sensibly on a terminal grid.
const (
	cellWidth     = 5.0
	cellHeight    = 10.0
	frameInterval = 16 * time.Millisecond
	wheelRows     = 3
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	handleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// sheetStyle draws only the top edge; the sheet runs off the bottom.
var sheetStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder(), true, false, false, false).
	BorderForeground(lipgloss.Color("63"))

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	lines      []string
	view       *scroll.ScrollView
	controller *sheet.Controller
	animator   *sheet.TweenAnimator
	recognizer *gestures.PanRecognizer

	width, height int
	sized         bool
	lastFrame     time.Time
	now           func() time.Time
}

func newModel(cfg sheet.Config, lines []string) (*model, error) {
	m := &model{
		lines:    lines,
		view:     scroll.NewScrollView(0),
		animator: sheet.NewTweenAnimator(cfg.AnimationDuration),
		now:      time.Now,
	}

	opts := append(cfg.Options(),
		sheet.WithAnimator(m.animator),
		sheet.WithCallbacks(sheet.Callbacks{
			WillDisplay: func(_ *sheet.Controller, s sheet.DisplayState) {
				log.Printf("will display %s", s)
			},
			DidDisplay: func(_ *sheet.Controller, s sheet.DisplayState) {
				log.Printf("did display %s", s)
			},
		}),
	)
	c, err := sheet.New(m.view, opts...)
	if err != nil {
		return nil, err
	}
	m.controller = c
	m.recognizer = gestures.NewPanRecognizer(func(p *gestures.PanRecognizer) {
		c.HandlePan(p)
	})
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.controller.SetBounds(graphics.Size{
			Width:  float64(msg.Width) * cellWidth,
			Height: float64(msg.Height) * cellHeight,
		})
		if !m.sized {
			// Reported once the sheet has bounds so short content clamps
			// the heights from a laid-out frame.
			m.sized = true
			m.view.SetContentHeight(float64(len(m.lines)) * cellHeight)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.controller.DisplayMax()
		case "n":
			m.controller.DisplayMin()
		case " ":
			if m.controller.DisplayState() == sheet.Maximized {
				m.controller.DisplayMin()
			} else {
				m.controller.DisplayMax()
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case frameMsg:
		t := time.Time(msg)
		dt := frameInterval
		if !m.lastFrame.IsZero() {
			dt = t.Sub(m.lastFrame)
		}
		m.lastFrame = t
		m.animator.Step(dt)
		return m, tick()
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	p := graphics.Offset{X: float64(msg.X) * cellWidth, Y: float64(msg.Y) * cellHeight}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !m.controller.HitTest(p) {
			return
		}
		dy := wheelRows * cellHeight
		if msg.Button == tea.MouseButtonWheelUp {
			dy = -dy
		}
		m.view.ScrollBy(dy)
		return
	}

	event := gestures.PointerEvent{PointerID: 1, Position: p, Time: m.now()}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.controller.HitTest(p) {
			return
		}
		event.Phase = gestures.PointerPhaseDown
	case tea.MouseActionMotion:
		event.Phase = gestures.PointerPhaseMove
	case tea.MouseActionRelease:
		event.Phase = gestures.PointerPhaseUp
	default:
		return
	}
	m.recognizer.HandleEvent(event)
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	frame := m.view.Frame()
	top := int(math.Round(frame.Top / cellHeight))
	top = max(0, min(top, m.height))

	header := make([]string, top)
	if top > 0 {
		header[0] = statusStyle.Render(fmt.Sprintf("state=%s top=%.0f offset=%.0f",
			m.controller.DisplayState(), frame.Top, m.view.ContentOffset().Y))
	}
	if top > 1 {
		header[1] = helpStyle.Render("drag or scroll the sheet · m max · n min · space toggle · q quit")
	}

	visible := m.height - top
	switch {
	case visible <= 0:
		return strings.Join(header, "\n")
	case visible == 1:
		return strings.Join(append(header, handleStyle.Render(strings.Repeat("─", m.width))), "\n")
	}

	rows := visible - 1
	first := int(m.view.ContentOffset().Y / cellHeight)
	body := make([]string, rows)
	for i := range body {
		if n := first + i; n >= 0 && n < len(m.lines) {
			body[i] = rowStyle.Render(m.lines[n])
		}
	}
	sheetView := sheetStyle.Width(m.width).Render(strings.Join(body, "\n"))

	if top == 0 {
		return sheetView
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(header, "\n"), sheetView)
}
