package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tonefold/ampcab/pkg/framework/debug"
	"github.com/tonefold/ampcab/pkg/fx"
)

type view int

const (
	viewRoot view = iota
	viewModels
	viewCabs
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

// browser is the terminal rendering of the effect's two-level UI hierarchy:
// root controls plus a models list and a cabs list, each bound to the
// corresponding list/select parameter pair.
type browser struct {
	inst  *fx.Instance
	meter *debug.Meter

	view   view
	items  []string
	cursor int
}

func newBrowser(inst *fx.Instance, meter *debug.Meter) *browser {
	return &browser{inst: inst, meter: meter}
}

func (b *browser) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return b, tick()
	case tea.KeyMsg:
		return b.handleKey(msg)
	}
	return b, nil
}

func (b *browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "ctrl+c" {
		return b, tea.Quit
	}

	if b.view == viewRoot {
		switch key {
		case "m":
			b.openList(viewModels, "model_list", "model_index")
		case "c":
			b.openList(viewCabs, "cab_list", "cab_index")
		case "b":
			b.toggleBypass()
		case "left":
			b.nudge("input_level", -0.05)
		case "right":
			b.nudge("input_level", 0.05)
		case "down":
			b.nudge("output_level", -0.05)
		case "up":
			b.nudge("output_level", 0.05)
		}
		return b, nil
	}

	switch key {
	case "esc":
		b.view = viewRoot
	case "up":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down":
		if b.cursor < len(b.items)-1 {
			b.cursor++
		}
	case "enter":
		if b.cursor < len(b.items) {
			param := "model_index"
			if b.view == viewCabs {
				param = "cab_index"
			}
			b.inst.SetParam(param, strconv.Itoa(b.cursor))
		}
		b.view = viewRoot
	}
	return b, nil
}

func (b *browser) openList(v view, listKey, indexKey string) {
	raw, err := b.inst.Param(listKey)
	if err != nil {
		return
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return
	}

	b.items = items
	b.cursor = 0
	if idx, err := b.inst.Param(indexKey); err == nil {
		if i, err := strconv.Atoi(idx); err == nil && i >= 0 && i < len(items) {
			b.cursor = i
		}
	}
	b.view = v
}

func (b *browser) toggleBypass() {
	v, err := b.inst.Param("cab_bypass")
	if err != nil {
		return
	}
	if v == "1" {
		b.inst.SetParam("cab_bypass", "0")
	} else {
		b.inst.SetParam("cab_bypass", "1")
	}
}

func (b *browser) nudge(key string, delta float64) {
	raw, err := b.inst.Param(key)
	if err != nil {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	b.inst.SetParam(key, strconv.FormatFloat(v+delta, 'f', 2, 64))
}

func (b *browser) View() string {
	switch b.view {
	case viewModels:
		return b.listView("Choose Model")
	case viewCabs:
		return b.listView("Choose Cab")
	default:
		return b.rootView()
	}
}

func (b *browser) rootView() string {
	param := func(key string) string {
		v, err := b.inst.Param(key)
		if err != nil {
			return "?"
		}
		return v
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ampcab") + "\n\n")

	row := func(label, value string) {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", label)),
			valueStyle.Render(value)))
	}

	row("Model", param("model_name"))
	if param("loading") == "1" {
		row("", "(loading...)")
	}
	row("Cab", param("cab_name"))
	bypass := "off"
	if param("cab_bypass") == "1" {
		bypass = "ON"
	}
	row("Bypass", bypass)
	row("Input", param("input_level"))
	row("Output", param("output_level"))

	stats := b.meter.Stats()
	if stats.Count > 0 {
		row("Block avg", stats.Avg.String())
	}

	sb.WriteString("\n" + helpStyle.Render(
		"m models · c cabs · b bypass · ←/→ input · ↑/↓ output · q quit"))
	return sb.String()
}

func (b *browser) listView(title string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title) + "\n\n")

	if len(b.items) == 0 {
		sb.WriteString(labelStyle.Render("  (empty)") + "\n")
	}
	for i, item := range b.items {
		if i == b.cursor {
			sb.WriteString(selectedStyle.Render("> "+item) + "\n")
		} else {
			sb.WriteString("  " + item + "\n")
		}
	}

	sb.WriteString("\n" + helpStyle.Render("↑/↓ move · enter select · esc back"))
	return sb.String()
}
