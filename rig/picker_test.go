package rig

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pickOn runs pickOption with the given key bytes as console input and a
// deadline, so a picker reading the wrong stream fails instead of hanging.
func pickOn(t *testing.T, keys string) (Option, bool, *syncBuffer) {
	t.Helper()

	out := &syncBuffer{}
	c := NewConsole(ConsoleConfig{
		In:  strings.NewReader(keys),
		Out: out,
	})

	type picked struct {
		opt Option
		ok  bool
	}
	done := make(chan picked, 1)
	go func() {
		opt, ok := c.pickOption(yesNo)
		done <- picked{opt, ok}
	}()

	select {
	case p := <-done:
		return p.opt, p.ok, out
	case <-time.After(5 * time.Second):
		t.Fatal("picker did not finish on the console input stream")
		return Option{}, false, out
	}
}

func sized(t *testing.T, m pickerModel) pickerModel {
	t.Helper()
	upd, _ := m.Update(tea.WindowSizeMsg{Width: 48, Height: 16})
	return upd.(pickerModel)
}

func TestPickerModel_SelectsHighlighted_When_EnterPressed(t *testing.T) {
	t.Parallel()

	m := sized(t, newPickerModel(yesNo))

	upd, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = upd.(pickerModel)
	upd, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = upd.(pickerModel)

	if m.choice == nil {
		t.Fatal("no choice recorded after enter")
	}
	if m.choice.Value != "n" {
		t.Errorf("choice = %q, want %q", m.choice.Value, "n")
	}
	if cmd == nil {
		t.Fatal("enter did not quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("enter command is not tea.Quit")
	}
}

func TestPickerModel_LeavesNoChoice_When_Escaped(t *testing.T) {
	t.Parallel()

	m := sized(t, newPickerModel(yesNo))

	upd, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = upd.(pickerModel)

	if m.choice != nil {
		t.Errorf("choice = %v, want none after esc", m.choice)
	}
	if cmd == nil {
		t.Fatal("esc did not quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc command is not tea.Quit")
	}
}

func TestPickerModel_View_ShowsOptionLabels(t *testing.T) {
	t.Parallel()

	m := sized(t, newPickerModel(yesNo))

	view := m.View()
	if !strings.Contains(view, "Yes") || !strings.Contains(view, "No") {
		t.Errorf("view = %q, want both option labels", view)
	}
}

func TestConsole_PickOption_Selects_When_EnterArrivesOnConsoleInput(t *testing.T) {
	t.Parallel()

	opt, ok, out := pickOn(t, "\r")

	if !ok {
		t.Fatal("pickOption reported no choice after enter")
	}
	if opt.Value != "y" {
		t.Errorf("choice = %q, want the highlighted first option %q", opt.Value, "y")
	}
	if out.String() == "" {
		t.Error("picker drew nothing to the console writer")
	}
}

func TestConsole_PickOption_FallsBack_When_UserBacksOut(t *testing.T) {
	t.Parallel()

	_, ok, out := pickOn(t, "q")

	if ok {
		t.Error("pickOption reported a choice after backing out")
	}
	if out.String() == "" {
		t.Error("picker drew nothing to the console writer")
	}
}

func TestConsole_PickerAvailable_IsFalse_When_DisabledOrNotATerminal(t *testing.T) {
	t.Parallel()

	if NewConsole(ConsoleConfig{}).pickerAvailable() {
		t.Error("picker available with UsePicker unset")
	}
	// Under go test the standard streams are not terminals, so even an
	// enabled picker must stand down.
	if NewConsole(ConsoleConfig{UsePicker: true}).pickerAvailable() {
		t.Error("picker available without a terminal")
	}
	// In-memory streams are not terminals either.
	c := NewConsole(ConsoleConfig{
		UsePicker: true,
		In:        strings.NewReader(""),
		Out:       &syncBuffer{},
	})
	if c.pickerAvailable() {
		t.Error("picker available on in-memory console streams")
	}
}
