package rig

import (
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// pickItem adapts an Option to the bubbles list item interfaces.
type pickItem struct {
	opt Option
}

func (i pickItem) Title() string       { return i.opt.Label }
func (i pickItem) Description() string { return i.opt.Value }
func (i pickItem) FilterValue() string { return i.opt.Label }

// pickerModel drives the full-screen option picker. Enter selects the
// highlighted option; esc, q, or ctrl+c backs out with no choice.
type pickerModel struct {
	list   list.Model
	choice *Option
}

func newPickerModel(options []Option) pickerModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = pickItem{opt: opt}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select an option"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.choice = &item.opt
			}
			return m, tea.Quit
		case "esc", "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// pickerAvailable reports whether the full-screen picker can run: it must
// be enabled in config and both console streams must be terminals.
func (c *Console) pickerAvailable() bool {
	if !c.cfg.UsePicker {
		return false
	}
	in, inOK := c.cfg.In.(*os.File)
	out, outOK := c.cfg.Out.(*os.File)
	return inOK && outOK &&
		term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// pickOption runs the picker on the console's own streams and returns the
// selection. ok is false when the user backed out or the UI failed; the
// caller falls back to the numbered line prompt.
func (c *Console) pickOption(options []Option) (Option, bool) {
	program := tea.NewProgram(newPickerModel(options),
		tea.WithAltScreen(),
		tea.WithInput(c.cfg.In),
		tea.WithOutput(c.cfg.Out),
	)
	final, err := program.Run()
	if err != nil {
		c.debugf("picker failed, falling back to line prompt: %v", err)
		return Option{}, false
	}
	m, ok := final.(pickerModel)
	if !ok || m.choice == nil {
		return Option{}, false
	}
	return *m.choice, true
}
