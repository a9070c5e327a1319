// Package tui animates a convolution stepper in the terminal: three stacked
// lanes (input, impulse, output) with index markers and a step counter.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-convtrace/dsp/conv"
)

const minLaneHeight = 3

// Model is the Bubble Tea model for the convolution animation. It only reads
// signal state and step records; the stepper owns all mutation.
type Model struct {
	stepper *conv.Stepper
	delay   time.Duration

	inY  []float64
	impY []float64
	outY []float64

	inLimit  float64
	impLimit float64

	width    int
	height   int
	paused   bool
	finished bool
	quitting bool

	started bool
	last    conv.Step

	// The output lane rescales as values accumulate; the limit follows a
	// spring so the rescale is smooth rather than jumping per step.
	spring harmonica.Spring
	outLim float64
	outVel float64
}

// New creates a Model over a fresh stepper. delay is the pause between
// animation steps.
func New(stepper *conv.Stepper, delay time.Duration) Model {
	inY, _ := stepper.Input().Y()
	impY, _ := stepper.Impulse().Y()
	outY, _ := stepper.Output().Y()

	fps := int(time.Second / delay)
	if fps < 1 {
		fps = 1
	}

	return Model{
		stepper:  stepper,
		delay:    delay,
		inY:      inY,
		impY:     impY,
		outY:     outY,
		inLimit:  absLimit(inY),
		impLimit: absLimit(impY),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.9),
		outLim:   1,
	}
}

// absLimit returns the largest magnitude in ys, or 1 for an all-zero slice.
func absLimit(ys []float64) float64 {
	if len(ys) == 0 {
		return 1
	}
	limit := math.Max(math.Abs(floats.Max(ys)), math.Abs(floats.Min(ys)))
	if limit == 0 {
		return 1
	}
	return limit
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ":
			if !m.finished {
				m.paused = !m.paused
			}
			return m, nil
		case "n":
			if m.paused && !m.finished {
				m = m.advance()
			}
			return m, nil
		}
		return m, nil

	case tickMsg:
		if !m.paused && !m.finished {
			m = m.advance()
		}
		m.outLim, m.outVel = m.spring.Update(m.outLim, m.outVel, absLimit(m.outY))
		return m, tickCmd(m.delay)
	}

	return m, nil
}

// advance takes exactly one convolution step and records it for the view.
func (m Model) advance() Model {
	step, err := m.stepper.Next()
	if err != nil {
		m.finished = true
		return m
	}
	m.started = true
	m.last = step
	if m.stepper.Done() {
		m.finished = true
	}
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width < 20 {
		width = 80
	}
	laneHeight := minLaneHeight
	if m.height > 0 {
		if h := (m.height - 8) / 3; h > laneHeight {
			laneHeight = h
		}
	}

	inMark, impMark, outMark := -1, -1, -1
	if m.started {
		inMark = m.last.InputIndex
		impMark = m.last.ImpulseIndex
		outMark = m.last.OutputIndex
	}

	header := headerStyle.Render("input-side convolution") + "  " +
		statusStyle.Render(fmt.Sprintf("step: %d/%d", m.stepper.Steps(), m.stepper.TotalSteps()))
	switch {
	case m.finished:
		header += "  " + doneStyle.Render("convolution complete")
	case m.paused:
		header += "  " + statusStyle.Render("paused")
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')

	sb.WriteString(laneTitleStyle.Render(laneTitle("Input signal", inMark)))
	sb.WriteByte('\n')
	sb.WriteString(renderLane(m.inY, inMark, width, laneHeight, m.inLimit))
	sb.WriteByte('\n')

	sb.WriteString(laneTitleStyle.Render(laneTitle("Impulse signal", impMark)))
	sb.WriteByte('\n')
	sb.WriteString(renderLane(m.impY, impMark, width, laneHeight, m.impLimit))
	sb.WriteByte('\n')

	sb.WriteString(laneTitleStyle.Render(laneTitle("Output signal", outMark)))
	sb.WriteByte('\n')
	sb.WriteString(renderLane(m.outY, outMark, width, laneHeight, m.outLim))
	sb.WriteByte('\n')

	sb.WriteString(helpStyle.Render("space pause · n step · q quit"))
	return sb.String()
}

func laneTitle(name string, marker int) string {
	if marker < 0 {
		return name
	}
	return fmt.Sprintf("%s  (index: %d)", name, marker)
}
