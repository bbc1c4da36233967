// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gpucontext"
	"github.com/spf13/cobra"

	"github.com/gogpu/lipuma"
	"github.com/gogpu/lipuma/input"
	"github.com/gogpu/lipuma/render"
	"github.com/gogpu/lipuma/tool"
)

// Status line styles
var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))
	toolStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Background(lipgloss.Color("236"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("236"))
)

const tuiHelp = "l line  s select  ⌫ delete  esc cancel  wheel zoom  middle-drag pan  q quit"

func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Draw interactively in the terminal",
		Long: `Tui opens a full-screen drawing surface in the terminal. Drag with the
left button to draw lines, switch to the selection tool to select and delete
them, drag with the middle button to pan and scroll to zoom.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := c.settings
			if settings.Seed == 0 {
				settings.Seed = seedFromClock()
			}
			m := newTUIModel(tool.NewSession(settings))
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(*tuiModel); ok {
				c.logger.Debug("tui closed", "objects", fm.session.Scene().Len())
			}
			return nil
		},
	}
}

// tuiModel is the bubbletea model of the interactive host.
type tuiModel struct {
	session *tool.Session
	canvas  *render.RasterCanvas
	painter render.Painter

	cols, rows int
	pressed    input.Button
	err        error
}

func newTUIModel(s *tool.Session) *tuiModel {
	return &tuiModel{
		session: s,
		painter: render.Painter{Background: color.White},
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height-1)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.session.SetTool(tool.KindFractalLine)
		case "s":
			m.session.SetTool(tool.KindSelection)
		case "esc":
			m.handleKey(gpucontext.KeyEscape)
		case "delete":
			m.handleKey(gpucontext.KeyDelete)
		case "backspace":
			m.handleKey(gpucontext.KeyBackspace)
		}

	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(tea.MouseEvent(msg)); ok {
			_, m.err = m.session.HandlePointer(ev)
		}
	}

	m.repaint()
	return m, nil
}

func (m *tuiModel) handleKey(k gpucontext.Key) {
	_, m.err = m.session.HandleKey(input.Press(k))
}

// resize allocates a canvas for a cols x rows cell area.
func (m *tuiModel) resize(cols, rows int) {
	m.cols, m.rows = max(cols, 1), max(rows, 1)
	m.canvas = render.NewRasterCanvas(m.cols*cellWidth, m.rows*cellHeight)
	m.session.Resize(float64(m.cols*cellWidth), float64(m.rows*cellHeight))
}

// pointerEvent translates a terminal mouse event. Cell coordinates map to
// the center of the cell's pixel block.
func (m *tuiModel) pointerEvent(e tea.MouseEvent) (input.PointerEvent, bool) {
	if e.Y >= m.rows {
		return input.PointerEvent{}, false
	}
	screen := lipuma.Pt(float64(e.X*cellWidth)+cellWidth/2, float64(e.Y*cellHeight)+cellHeight/2)

	switch e.Button {
	case tea.MouseButtonWheelUp:
		return input.Wheel(screen, 1), true
	case tea.MouseButtonWheelDown:
		return input.Wheel(screen, -1), true
	}

	switch e.Action {
	case tea.MouseActionPress:
		b := mouseButton(e.Button)
		if b == input.ButtonNone {
			return input.PointerEvent{}, false
		}
		m.pressed = b
		return input.PointerEvent{Kind: input.PointerDown, Screen: screen, Button: b}, true
	case tea.MouseActionRelease:
		b := m.pressed
		m.pressed = input.ButtonNone
		if b == input.ButtonNone {
			return input.PointerEvent{}, false
		}
		return input.PointerEvent{Kind: input.PointerUp, Screen: screen, Button: b}, true
	case tea.MouseActionMotion:
		return input.PointerEvent{Kind: input.PointerMove, Screen: screen, Button: m.pressed}, true
	}
	return input.PointerEvent{}, false
}

func mouseButton(b tea.MouseButton) input.Button {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonPrimary
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle
	case tea.MouseButtonRight:
		return input.ButtonSecondary
	default:
		return input.ButtonNone
	}
}

// repaint paints the damage accumulated by the session.
func (m *tuiModel) repaint() {
	if m.canvas == nil {
		return
	}
	view := m.session.Viewport()
	rects, full := m.session.TakeDamage()
	if full {
		rects = []lipuma.Rect{view.Visible()}
	}
	if len(rects) == 0 {
		return
	}
	m.canvas.Save()
	m.canvas.Transform(view.Transform)
	m.painter.Paint(m.canvas, m.session.Scene(), view.Visible(), rects, m.session.Preview())
	m.canvas.Restore()
}

func (m *tuiModel) View() string {
	if m.canvas == nil {
		return "loading…"
	}
	var b strings.Builder
	b.WriteString(brailleText(m.canvas.Image(), m.cols, m.rows))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *tuiModel) statusLine() string {
	s := m.session.Scene()
	selected := 0
	for range s.Selected() {
		selected++
	}
	zoom := m.session.Viewport().Transform.MaxScale()

	left := toolStyle.Render(" " + m.session.Tool().Kind().String() + " ")
	info := fmt.Sprintf(" %d objects  %d selected  %.0f%%  ", s.Len(), selected, zoom*100)
	var right string
	if m.err != nil {
		right = errorStyle.Render(" " + m.err.Error() + " ")
	} else {
		right = statusStyle.Render(" " + tuiHelp + " ")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, left, statusStyle.Render(info), right)
	return lipgloss.NewStyle().MaxWidth(m.cols).Render(line)
}
