package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bowmaster/internal/config"
	"github.com/vovakirdan/bowmaster/internal/core"
)

// PresetItem describes what a difficulty preset does to a base config.
type PresetItem struct {
	Preset      config.DifficultyPreset
	Health      int
	StartAim    float64 // enemy aim blend at score 0
	Jitter      float64 // enemy angle noise at score 0, degrees
	Progressive bool
}

// PresetItems applies every preset to base and summarizes the result.
func PresetItems(base config.BowmasterConfig) []PresetItem {
	presets := []config.DifficultyPreset{
		config.DifficultyEasy,
		config.DifficultyNormal,
		config.DifficultyHard,
		config.DifficultyFixed,
	}
	items := make([]PresetItem, 0, len(presets))
	for _, p := range presets {
		cfg := base
		config.ApplyBowmasterPreset(&cfg, p)
		d := config.NewDifficultyManager(cfg.Difficulty)
		items = append(items, PresetItem{
			Preset:      p,
			Health:      cfg.Player.Health,
			StartAim:    d.AimBlend(0, 0),
			Jitter:      d.Jitter(0, 0),
			Progressive: d.IsEnabled(),
		})
	}
	return items
}

// presetKeyMap defines the key bindings of the preset picker.
type presetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k presetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k presetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPresetKeyMap() presetKeyMap {
	return presetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "z", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PresetModel is the Bubble Tea model of the difficulty picker shown by
// the menu command before a duel.
type PresetModel struct {
	items    []PresetItem
	table    table.Model
	help     help.Model
	keys     presetKeyMap
	width    int
	height   int
	selected *config.DifficultyPreset
	quitting bool
}

// NewPresetModel creates a picker over the presets applied to base.
// The cursor starts on normal.
func NewPresetModel(base config.BowmasterConfig, width, height int) PresetModel {
	m := PresetModel{
		items:  PresetItems(base),
		help:   help.New(),
		keys:   defaultPresetKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.table.SetCursor(1)
	return m
}

func (m PresetModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Preset", Width: 8},
		{Title: "Health", Width: 7},
		{Title: "Enemy aim", Width: 10},
		{Title: "Jitter", Width: 7},
		{Title: "Ramps up", Width: 9},
	}

	rows := make([]table.Row, len(m.items))
	for i, it := range m.items {
		ramps := "no"
		if it.Progressive {
			ramps = "yes"
		}
		rows[i] = table.Row{
			string(it.Preset),
			fmt.Sprintf("%d", it.Health),
			fmt.Sprintf("%.0f%%", it.StartAim*100),
			fmt.Sprintf("%.1f°", it.Jitter),
			ramps,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the picker.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.items) {
				p := m.items[i].Preset
				m.selected = &p
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PresetModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B O W M A S T E R", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPresetSelector shows the difficulty picker and returns the chosen
// preset, or nil when the user quit.
func RunPresetSelector(base config.BowmasterConfig, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewPresetModel(base, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(PresetModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}
