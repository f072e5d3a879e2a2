// Package tui renders a live convergence view for a running optimization.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GenerationMsg carries one completed generation.
type GenerationMsg struct {
	Gen  int
	Best float64
}

// DoneMsg signals that the run finished.
type DoneMsg struct {
	Err error
}

type model struct {
	benchmark string
	total     int
	trace     []float64
	done      bool
	err       error
}

func newModel(benchmark string, generations int) model {
	return model{
		benchmark: benchmark,
		total:     generations,
		trace:     make([]float64, 0, generations),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case GenerationMsg:
		m.trace = append(m.trace, msg.Best)
	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	s := titleStyle.Render(fmt.Sprintf("swarmopt · %s", m.benchmark)) + "\n\n"

	if len(m.trace) > 1 {
		s += asciigraph.Plot(m.trace,
			asciigraph.Height(12),
			asciigraph.Width(64),
			asciigraph.Caption("best fitness"),
		) + "\n\n"
	}

	switch {
	case m.err != nil:
		s += statusStyle.Render(fmt.Sprintf("failed: %v", m.err))
	case m.done:
		s += statusStyle.Render(fmt.Sprintf("done · %d generations · best %.6g",
			len(m.trace), last(m.trace)))
	case len(m.trace) > 0:
		s += statusStyle.Render(fmt.Sprintf("generation %d/%d · best %.6g · q to quit",
			len(m.trace), m.total, last(m.trace)))
	default:
		s += statusStyle.Render("starting...")
	}
	return s + "\n"
}

func last(trace []float64) float64 {
	if len(trace) == 0 {
		return 0
	}
	return trace[len(trace)-1]
}

// LiveView forwards runner generations into a bubbletea program. It
// satisfies the runner's Observer interface.
type LiveView struct {
	prog *tea.Program
}

func (l *LiveView) OnGeneration(gen int, best float64) {
	l.prog.Send(GenerationMsg{Gen: gen, Best: best})
}

// Run displays the live view while executing run in the background. The
// run callback receives the view to attach as an observer. Quitting the
// view does not abort the optimization; Run waits for it to finish and
// returns its error.
func Run(benchmark string, generations int, run func(view *LiveView) error) error {
	p := tea.NewProgram(newModel(benchmark, generations))
	view := &LiveView{prog: p}

	done := make(chan error, 1)
	go func() {
		err := run(view)
		done <- err
		p.Send(DoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-done
}
