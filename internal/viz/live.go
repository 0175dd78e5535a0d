package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	graphWidth  = 70
	graphHeight = 14
)

type TickMsg time.Time

// Model replays a computed trajectory sample by sample in the terminal.
// The simulation itself is finished before the view starts; playback
// only walks the output arrays.
type Model struct {
	times   []float64
	biomass []float64
	rate    []float64

	light float64
	dic   float64
	xmax  float64
	muMax float64

	idx     int
	running bool
	fps     int
}

func NewModel(times, biomass, rate []float64, light, dic, xmax, muMax float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		times:   times,
		biomass: biomass,
		rate:    rate,
		light:   light,
		dic:     dic,
		xmax:    xmax,
		muMax:   muMax,
		idx:     1,
		running: true,
		fps:     fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running {
				return m, m.tick()
			}
			return m, nil
		case "r":
			m.idx = 1
			m.running = true
			return m, m.tick()
		}
	case TickMsg:
		if !m.running {
			return m, nil
		}
		if m.idx < len(m.biomass) {
			m.idx++
		}
		if m.idx >= len(m.biomass) {
			m.running = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.biomass) == 0 {
		return "no trajectory\n"
	}

	cur := m.idx - 1
	graph := GrowthPlot(m.biomass[:m.idx], m.light, m.dic, graphWidth, graphHeight)

	var stats strings.Builder
	row := func(label string, format string, args ...interface{}) {
		stats.WriteString(labelStyle.Render(label))
		stats.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
		stats.WriteString("\n")
	}
	row("t", "%.1f h", m.times[cur])
	row("biomass", "%.4f g/L", m.biomass[cur])
	row("Xmax", "%.4f g/L", m.xmax)
	row("mu_max", "%.4f 1/h", m.muMax)
	if cur < len(m.rate) {
		row("qCO2", "%.5f g/L/h", m.rate[cur])
	}
	status := "running"
	if !m.running {
		status = "paused"
		if m.idx >= len(m.biomass) {
			status = "done"
		}
	}
	row("status", "%s", status)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		graphStyle.Render(graph),
		statsStyle.Render(stats.String()),
	)

	return headerStyle.Render("algrow: culture growth") + "\n" +
		body + "\n" +
		helpStyle.Render("space: pause/resume  r: restart  q: quit") + "\n"
}
