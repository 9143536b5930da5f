package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Menu layout constants
const (
	menuTableWidth = 44
	menuMaxRows    = 10
)

// MenuItem represents a selectable language in the menu.
type MenuItem struct {
	Info    wordle.PackInfo
	Answers int
}

// MenuModel is the Bubble Tea model for the language picker.
type MenuModel struct {
	items     []MenuItem
	table     table.Model
	help      help.Model
	keyMapper *KeyMapper
	width     int
	height    int
	config    core.RuntimeConfig
	status    string
	quitting  bool
	selected  *MenuItem // Set when user picks a playable language
}

// NewMenuModel creates a new menu listing the packs of reg in index order.
func NewMenuModel(reg *registry.Registry, cfg core.RuntimeConfig) MenuModel {
	infos := reg.Ordered()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		item := MenuItem{Info: info}
		if p, err := reg.Get(info.ID); err == nil {
			item.Answers = p.AnswerCount()
		}
		items = append(items, item)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := MenuModel{
		items:     items,
		help:      h,
		keyMapper: NewKeyMapper(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the language table.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 4},
		{Title: "Language", Width: 16},
		{Title: "Words", Width: 8},
		{Title: "", Width: menuTableWidth - 4 - 16 - 8 - 8},
	}

	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		status := ""
		if item.Info.Disabled {
			status = "soon"
		}
		rows = append(rows, table.Row{
			item.Info.Flag,
			item.Info.Label,
			strconv.Itoa(item.Answers),
			status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Min(len(rows), menuMaxRows)+2), // rows plus bordered header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("2")).
		Bold(true)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.table.MoveUp(1)
		m.status = ""

	case MenuActionDown:
		m.table.MoveDown(1)
		m.status = ""

	case MenuActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.table.Cursor()]
		if item.Info.Disabled {
			m.status = fmt.Sprintf("%s is not available yet", item.Info.Label)
			return m, nil
		}
		m.selected = &item
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	status := " "
	if m.status != "" {
		status = errorStyle.Render(m.status)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("W O R D L E"),
		subtitleStyle.Render("(copycat)"),
		"",
		"Pick a language",
		"",
		m.table.View(),
		"",
		status,
		"",
		m.help.View(menuHelp{k: m.keyMapper.Keys()}),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Reject clears the selection and shows err under the table.
func (m *MenuModel) Reject(err error) {
	m.selected = nil
	m.status = err.Error()
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
