package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap/zaptest"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/flip"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestModel(t *testing.T) (Model, *notes.Store, *notes.Memory, *testClock) {
	t.Helper()
	clk := &testClock{t: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	mem := &notes.Memory{}
	st := notes.New(mem, zaptest.NewLogger(t))
	m := New(Options{
		Store:     st,
		Names:     locale.New("en_US"),
		Now:       clk.now,
		Log:       zaptest.NewLogger(t),
		Frames:    4,
		HelpStyle: "notty",
	})
	return m, st, mem, clk
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// settle plays frames until the controller has nothing left to animate.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.anim.active; i++ {
		if i > 10000 {
			t.Fatalf("animation never settled")
		}
		next, _ := m.Update(frameMsg{seq: m.anim.seq})
		m = next.(Model)
	}
	return m
}

func TestNewShowsCurrentMonth(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 2}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
	// March 1 2024 is a Friday, so the 15th sits at 5+14.
	if m.cursor != 19 {
		t.Fatalf("cursor = %d", m.cursor)
	}
	view := m.View()
	for _, want := range []string{"March 2024", "Current month", "Sun", "Total notes: 0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestArrowFlipsThroughFrames(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "right")
	if !m.anim.active || m.ctl.State() != flip.Animating {
		t.Fatalf("expected a running flip")
	}
	// A frame mid flip still renders.
	next, _ := m.Update(frameMsg{seq: m.anim.seq})
	m = next.(Model)
	if m.View() == "" {
		t.Fatalf("empty view mid flip")
	}
	// Frames from an older rotation are ignored.
	before := m.anim.frame
	next, _ = m.Update(frameMsg{seq: m.anim.seq - 1})
	m = next.(Model)
	if m.anim.frame != before {
		t.Fatalf("stale frame advanced the animation")
	}

	m = settle(t, m)
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 3}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
	if !strings.Contains(m.View(), "April 2024") {
		t.Fatalf("title not updated")
	}

	m = settle(t, press(t, m, "F"))
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 2}) {
		t.Fatalf("F should flip back, view = %v", m.ctl.View())
	}
}

func TestKeysDuringFlipAreQueued(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "right", "right", "f", "left")
	if m.ctl.Pending() != 3 {
		t.Fatalf("pending = %d", m.ctl.Pending())
	}
	m = settle(t, m)
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 4}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
	if m.ctl.Flips() != 4 {
		t.Fatalf("flips = %d", m.ctl.Flips())
	}
}

func TestDoubleEnterEditsNote(t *testing.T) {
	m, st, _, clk := newTestModel(t)
	m = press(t, m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("single enter should only select")
	}
	if !strings.HasPrefix(m.board.Meta(), "Fri Mar 15 2024") {
		t.Fatalf("meta = %q", m.board.Meta())
	}

	clk.t = clk.t.Add(200 * time.Millisecond)
	m = press(t, m, "enter")
	if m.mode != modeEdit {
		t.Fatalf("second enter should open the editor, mode = %v", m.mode)
	}
	if m.edit.label != "Add/edit note for Fri Mar 15 2024:" {
		t.Fatalf("label = %q", m.edit.label)
	}

	m.editor.SetValue("  Dentist ")
	m = press(t, m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("enter should close the editor")
	}
	if note, _ := st.Get("2024-03-15"); note != "Dentist" {
		t.Fatalf("note = %q", note)
	}
	cell := m.board.Face(m.ctl.Current()).Grid.Cells[m.cursor]
	if !cell.HasNote {
		t.Fatalf("cell should show the note")
	}
	if !strings.Contains(m.View(), "Note: Dentist") {
		t.Fatalf("selected note not shown")
	}
}

func TestSlowSecondEnterOnlySelects(t *testing.T) {
	m, _, _, clk := newTestModel(t)
	m = press(t, m, "enter")
	clk.t = clk.t.Add(DoubleActivation + time.Millisecond)
	m = press(t, m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("slow second enter must not edit")
	}

	// Activating another cell resets the pair.
	clk.t = clk.t.Add(100 * time.Millisecond)
	m = press(t, m, "l", "enter")
	if m.mode != modeNormal {
		t.Fatalf("enter on a different cell must not edit")
	}
}

func TestEditCancelDoesNotWrite(t *testing.T) {
	m, st, mem, _ := newTestModel(t)
	_ = st.Set("2024-03-15", "Dentist")
	writes := mem.Writes

	m = press(t, m, "n")
	if m.mode != modeEdit || m.editor.Value() != "Dentist" {
		t.Fatalf("editor should be seeded, got %q", m.editor.Value())
	}
	m.editor.SetValue("changed")
	m = press(t, m, "esc")
	if m.mode != modeNormal || mem.Writes != writes {
		t.Fatalf("cancel must not write")
	}
	if note, _ := st.Get("2024-03-15"); note != "Dentist" {
		t.Fatalf("note = %q", note)
	}

	m = press(t, m, "n")
	m.editor.SetValue("   ")
	m = press(t, m, "enter")
	if st.Has("2024-03-15") {
		t.Fatalf("blank save should delete")
	}
	if m.status != "Note removed" {
		t.Fatalf("status = %q", m.status)
	}
}

func TestEditorKeysDoNotNavigate(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "n", "right", "q", "f")
	if m.mode != modeEdit || m.anim.active {
		t.Fatalf("keys typed into the editor must not flip or quit")
	}
}

func TestClearAllNeedsConfirmation(t *testing.T) {
	m, st, _, _ := newTestModel(t)
	_ = st.Set("2024-03-15", "Dentist")
	_ = st.Set("2024-03-16", "Gym")

	m = press(t, m, "X", "n")
	if st.Count() != 2 {
		t.Fatalf("declined clear removed notes")
	}

	m = press(t, m, "X")
	if !strings.Contains(m.View(), "Clear ALL saved notes?") {
		t.Fatalf("confirmation not shown")
	}
	m = press(t, m, "y")
	if st.Count() != 0 {
		t.Fatalf("notes left: %d", st.Count())
	}
	for _, c := range m.board.Face(m.ctl.Current()).Grid.Cells {
		if c.HasNote {
			t.Fatalf("face still shows a note on %s", c.Key)
		}
	}
}

func TestPickerJumps(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "g")
	if m.mode != modePicker {
		t.Fatalf("g should open the picker")
	}
	// March 2024 -> May 2025.
	m = press(t, m, "j", "j", "l", "enter")
	if m.mode != modeNormal {
		t.Fatalf("enter should close the picker")
	}
	m = settle(t, m)
	if m.ctl.View() != (calendar.Month{Year: 2025, Month: 4}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
	if m.ctl.Flips() != 14 {
		t.Fatalf("flips = %d", m.ctl.Flips())
	}
}

func TestPickerJumpIsCapped(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "g", "l", "l", "l", "enter")
	m = settle(t, m)
	if m.ctl.Flips() != flip.MaxJumpSteps {
		t.Fatalf("flips = %d", m.ctl.Flips())
	}
	if m.ctl.View() != (calendar.Month{Year: 2026, Month: 2}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
}

func TestPickerYearBounds(t *testing.T) {
	p := newPicker(calendar.Month{Year: 2024, Month: 2}, 2024)
	for i := 0; i < 80; i++ {
		p.moveYear(+1)
	}
	if p.year != 2074 {
		t.Fatalf("year = %d", p.year)
	}
	p.moveMonth(-3)
	if p.month != 11 {
		t.Fatalf("month = %d", p.month)
	}
}

func TestTodayKey(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = settle(t, press(t, m, "left", "left"))
	m = press(t, m, "t")
	if m.status != "Flipping to today" {
		t.Fatalf("status = %q", m.status)
	}
	m = settle(t, m)
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 2}) {
		t.Fatalf("view = %v", m.ctl.View())
	}

	m = press(t, m, "h", "h", "t")
	if m.anim.active {
		t.Fatalf("today on the current month must not flip")
	}
	if m.cursor != 19 {
		t.Fatalf("cursor = %d", m.cursor)
	}
	if sel := m.board.Selected(); sel == nil || sel.Key() != "2024-03-15" {
		t.Fatalf("selected = %+v", sel)
	}
}

func TestStoreChangeReloads(t *testing.T) {
	m, _, mem, _ := newTestModel(t)
	mem.Data = []byte(`{"2024-03-20":"Dinner"}`)
	next, _ := m.Update(storeChangedMsg{})
	m = next.(Model)
	g := m.board.Face(m.ctl.Current()).Grid
	if !g.Cells[g.Find("2024-03-20")].HasNote {
		t.Fatalf("reloaded note not shown")
	}
	if !strings.Contains(m.board.Meta(), "Total notes: 1") {
		t.Fatalf("meta = %q", m.board.Meta())
	}
}

func TestHelpToggles(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "?")
	if m.mode != modeHelp {
		t.Fatalf("? should open help")
	}
	if m.help.Err() != nil {
		t.Fatalf("help: %v", m.help.Err())
	}
	if !strings.Contains(m.View(), "Flip calendar") {
		t.Fatalf("help content missing:\n%s", m.View())
	}
	m = press(t, m, "?")
	if m.mode != modeNormal {
		t.Fatalf("? should close help")
	}
}

func TestQuit(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestFlipScale(t *testing.T) {
	cases := []struct {
		p        float64
		scale    float64
		revealed bool
	}{
		{0, 1, false},
		{0.25, 0.5, false},
		{0.5, 0, true},
		{1, 1, true},
	}
	for _, tc := range cases {
		scale, revealed := flipScale(tc.p)
		if scale != tc.scale || revealed != tc.revealed {
			t.Fatalf("flipScale(%v) = %v, %v", tc.p, scale, revealed)
		}
	}
	if got := blendBorder("nope", "#000000", 0.5); got != "#000000" {
		t.Fatalf("blend fallback = %q", got)
	}
}

func TestOwnWriteKeepsStatus(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "n", "D", "e", "n", "t", "i", "s", "t", "enter")
	if m.status != "Note saved" {
		t.Fatalf("status = %q, want Note saved", m.status)
	}
	next, _ := m.Update(storeChangedMsg{})
	m = next.(Model)
	if m.status != "Note saved" {
		t.Fatalf("echo of our own write replaced status with %q", m.status)
	}
}

func TestTodayDuringFlipBackSelectsOnLanding(t *testing.T) {
	m, _, _, _ := newTestModel(t)
	m = press(t, m, "h", "right", "left", "t")
	if m.status != "Flipping to today" {
		t.Fatalf("status = %q", m.status)
	}
	if m.ctl.Pending() != 1 {
		t.Fatalf("pending = %d, want only the queued left", m.ctl.Pending())
	}
	m = settle(t, m)
	if m.ctl.View() != (calendar.Month{Year: 2024, Month: 2}) {
		t.Fatalf("view = %v", m.ctl.View())
	}
	if sel := m.board.Selected(); sel == nil || sel.Key() != "2024-03-15" {
		t.Fatalf("selected = %+v, want today", sel)
	}
	if m.cursor != 19 {
		t.Fatalf("cursor = %d, want today's cell", m.cursor)
	}
}
