// Package viz provides a live terminal view of a conduction run: the
// solver is stepped row by row and the current temperature profile is
// redrawn at a fixed tick.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/heatrod/internal/render"
	"github.com/san-kum/heatrod/internal/thermal"
)

const historyCapacity = 2000

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the solver and renders the profile. Completed rows are
// kept (up to a cap) so playback can be scrubbed backwards.
type Model struct {
	solver *thermal.Solver
	meta   render.Meta

	st       *thermal.Stepper
	history  []thermal.Row
	times    []float64
	playHead int // -1 means live at the newest row

	rowsPerTick int
	running     bool
	done        bool
	recording   bool
	recorded    []thermal.Row
	recTimes    []float64
	status      string
}

// NewModel prepares a live view for one solver run.
func NewModel(solver *thermal.Solver, meta render.Meta) Model {
	st := solver.Stepper()
	rowsPerTick := solver.Steps() / 600
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	return Model{
		solver:      solver,
		meta:        meta,
		st:          st,
		history:     []thermal.Row{st.Row().Clone()},
		times:       []float64{0},
		playHead:    -1,
		rowsPerTick: rowsPerTick,
		running:     true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.st = m.solver.Stepper()
			m.history = []thermal.Row{m.st.Row().Clone()}
			m.times = []float64{0}
			m.playHead = -1
			m.done = false
			m.running = true
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.recorded = nil
				m.recTimes = nil
			} else {
				m.recording = true
				m.recorded = make([]thermal.Row, 0)
				m.recTimes = make([]float64, 0)
			}
		}
	case TickMsg:
		if m.running && m.playHead == -1 && !m.done {
			for i := 0; i < m.rowsPerTick; i++ {
				if !m.st.Next() {
					m.done = true
					break
				}
				m.push(m.st.Row().Clone(), m.st.Time())
			}
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) push(row thermal.Row, t float64) {
	m.history = append(m.history, row)
	m.times = append(m.times, t)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
		m.times = m.times[1:]
	}
	if m.recording {
		m.recorded = append(m.recorded, row)
		m.recTimes = append(m.recTimes, t)
	}
}

func (m *Model) scrub(dir int) {
	if len(m.history) == 0 {
		return
	}
	if m.playHead == -1 {
		m.playHead = len(m.history) - 1
		m.running = false
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

func (m *Model) saveGIF() {
	if len(m.recorded) == 0 {
		return
	}
	field := &thermal.Field{
		Temps:     m.recorded,
		Times:     m.recTimes,
		Positions: m.solver.Positions(),
		Th:        m.solver.Th(),
	}
	w := &render.GIFWriter{}
	if err := w.Consume(field, m.meta); err != nil {
		m.status = fmt.Sprintf("gif failed: %v", err)
		return
	}
	m.status = "saved " + m.meta.OutputName(".gif")
}

func (m Model) View() string {
	row := m.history[len(m.history)-1]
	t := m.times[len(m.times)-1]
	status := "RUNNING"
	switch {
	case m.playHead >= 0:
		row = m.history[m.playHead]
		t = m.times[m.playHead]
		status = fmt.Sprintf("REPLAY (t=%.1fs)", t)
	case m.done:
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	if m.recording {
		status += "  ● REC"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.meta.Material)) + "\n")
	s.WriteString(status + "\n")

	chart := asciigraph.Plot(row,
		asciigraph.Height(14),
		asciigraph.Width(72),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(m.solver.Th()),
		asciigraph.Caption(fmt.Sprintf("temperature profile, x in [0, %g m]", m.meta.Length)),
	)
	s.WriteString(graphStyle.Render(chart) + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs / %.1fs", t, m.solver.Config().TotalTime)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d / %d", m.st.Index(), m.solver.Steps()-1)) + "\n")
	s.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%.4gs", m.solver.Dt())) + "\n")
	s.WriteString(labelStyle.Render("dx") + valueStyle.Render(fmt.Sprintf("%.4gm", m.solver.Dx())) + "\n")
	s.WriteString(labelStyle.Render("Boundaries") + valueStyle.Render(fmt.Sprintf("%g C / %g C", m.meta.LeftTemp, m.meta.RightTemp)) + "\n")
	if m.status != "" {
		s.WriteString(labelStyle.Render("Output") + valueStyle.Render(m.status) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset G:Record [ ]:Scrub Q:Quit"))
	return s.String()
}
