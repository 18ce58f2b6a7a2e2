// Package tui is an interactive browser over the exercises.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/scalars/internal/model"
	"github.com/idilsaglam/scalars/internal/report"
	"github.com/idilsaglam/scalars/internal/temperature"
	"github.com/idilsaglam/scalars/internal/ui"
)

const (
	listWidth     = 34
	defaultWidth  = 100
	defaultHeight = 24
)

// Options seed the temperature exercise.
type Options struct {
	Policy temperature.Policy
	Range  temperature.Range
}

// exerciseItem adapts model.Exercise to bubbles/list.
type exerciseItem struct {
	ex model.Exercise
}

func (i exerciseItem) Title() string       { return i.ex.Title }
func (i exerciseItem) Description() string { return i.ex.Summary }
func (i exerciseItem) FilterValue() string { return i.ex.Name }

var (
	policyBind = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "float/int"))
	tableBind  = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "table"))
	quitBind   = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))
)

type modelTUI struct {
	list    list.Model
	view    viewport.Model
	opt     report.Options
	current string // name of the exercise shown
	err     error
}

func newModel(opt Options) modelTUI {
	items := make([]list.Item, 0, len(model.Catalog()))
	for _, e := range model.Catalog() {
		items = append(items, exerciseItem{ex: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), listWidth, defaultHeight)
	l.Title = "scalars"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = ui.Current().Title
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{policyBind, tableBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{policyBind, tableBind} }

	vp := viewport.New(defaultWidth-listWidth-4, defaultHeight-2)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	m := modelTUI{
		list: l,
		view: vp,
		opt:  report.Options{Policy: opt.Policy, Range: opt.Range},
	}
	m.refresh()
	return m
}

// Run starts the browser and blocks until the user quits.
func Run(opt Options) error {
	p := tea.NewProgram(newModel(opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *modelTUI) selected() string {
	if it, ok := m.list.SelectedItem().(exerciseItem); ok {
		return it.ex.Name
	}
	return model.Temp
}

// refresh re-renders the selected exercise into the viewport.
func (m *modelTUI) refresh() {
	m.current = m.selected()
	out, err := report.String(m.current, m.opt)
	m.err = err
	if err != nil {
		out = ui.C(ui.Current().Error, err.Error())
	}
	m.view.SetContent(out)
	m.view.GotoTop()
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - 2
		m.list.SetSize(listWidth, h)
		m.view.Width = msg.Width - listWidth - 4
		m.view.Height = h
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitBind):
			return m, tea.Quit
		case key.Matches(msg, policyBind):
			if m.opt.Policy == temperature.FloatDescending {
				m.opt.Policy = temperature.IntAscending
			} else {
				m.opt.Policy = temperature.FloatDescending
			}
			m.refresh()
			return m, nil
		case key.Matches(msg, tableBind):
			m.opt.Table = !m.opt.Table
			m.refresh()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	if m.selected() != m.current {
		m.refresh()
	}
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m modelTUI) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), ui.PanelString(m.view.View()))
}
