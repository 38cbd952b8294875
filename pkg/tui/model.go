// Package tui is the Bubble Tea front end of the flip calendar.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"tableflip.dev/flipcal/pkg/calendar"
	"tableflip.dev/flipcal/pkg/face"
	"tableflip.dev/flipcal/pkg/flip"
	"tableflip.dev/flipcal/pkg/locale"
	"tableflip.dev/flipcal/pkg/notes"
	"tableflip.dev/flipcal/pkg/store"
	"tableflip.dev/flipcal/pkg/tui/help"
	"tableflip.dev/flipcal/pkg/tui/theme"
)

// DoubleActivation is the longest gap between two activations of the same
// day that still opens the note editor.
const DoubleActivation = 500 * time.Millisecond

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modePicker
	modeConfirm
	modeHelp
)

func (m mode) String() string {
	switch m {
	case modeEdit:
		return "EDIT"
	case modePicker:
		return "GOTO"
	case modeConfirm:
		return "CONFIRM"
	case modeHelp:
		return "HELP"
	}
	return "NORMAL"
}

const normalStatus = "←/→ month, hjkl move, enter select, enter twice edit, g go to, t today, ? help, q quit"

// Options configures a Model.
type Options struct {
	Store *notes.Store
	Names *locale.Names
	// Now defaults to time.Now.
	Now        func() time.Time
	Log        *zap.Logger
	Frames     int
	FrameDelay time.Duration
	// Events, when set, reloads the notes whenever the record changes on
	// disk.
	Events <-chan store.Event
	// HelpStyle is the Glamour style of the help overlay.
	HelpStyle string
}

type storeChangedMsg struct{}

type errMsg struct{ err error }

// editTarget remembers which day the open editor writes to.
type editTarget struct {
	face  face.Face
	idx   int
	key   string
	label string
}

// Model is the Bubble Tea model of the flip calendar.
type Model struct {
	store *notes.Store
	board *face.Board
	ctl   *flip.Controller
	anim  *animator
	theme theme.Theme
	log   *zap.Logger
	now   func() time.Time

	mode   mode
	cursor int
	status string

	editor textinput.Model
	edit   editTarget
	picker picker
	help   *help.Model

	lastActivateIdx int
	lastActivateAt  time.Time
	// followToday moves the cursor to today's cell when the flips settle.
	followToday bool

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New builds the model, renders both faces and selects nothing.
func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	th := theme.Default()

	ti := textinput.New()
	ti.Placeholder = "Note"
	ti.CharLimit = 256
	ti.Prompt = ""

	board := face.New(opts.Store, opts.Names, now, log)
	anim := newAnimator(opts.Frames, opts.FrameDelay)
	ctl := flip.New(calendar.MonthOf(now()), board, anim, log)
	ctl.Init()

	m := Model{
		store:           opts.Store,
		board:           board,
		ctl:             ctl,
		anim:            anim,
		theme:           th,
		log:             log,
		now:             now,
		status:          normalStatus,
		editor:          ti,
		help:            help.New(faceWidth(th.Face), faceLines+2, opts.HelpStyle),
		lastActivateIdx: -1,
		events:          opts.Events,
	}
	m.cursor = m.todayIndex()
	return m
}

// todayIndex is today's cell on the visible face, or the first day of the
// month when today is elsewhere.
func (m Model) todayIndex() int {
	g := m.board.Face(m.ctl.Current()).Grid
	if idx := g.Find(calendar.Today(m.now()).Key()); idx >= 0 && !g.Cells[idx].OtherMonth {
		return idx
	}
	return g.Find(m.ctl.View().First().Key())
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

// Update handles keys, animation frames and store changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetSize(min(msg.Width-2, 90), msg.Height-6)
		m.editor.SetWidth(max(min(msg.Width-8, 60), 10))
	case frameMsg:
		next, done := m.anim.advance(msg)
		if next != nil {
			cmds = append(cmds, next)
		}
		if done {
			m.ctl.Complete()
			if m.followToday && m.ctl.State() == flip.Idle {
				m.followToday = false
				m.cursorToSelection()
			}
		}
	case storeChangedMsg:
		if m.store.Reload() {
			if m.ctl.State() == flip.Idle {
				m.board.RenderFace(m.ctl.Current(), m.ctl.View())
			}
			m.board.RefreshMeta()
			m.status = "Notes reloaded"
		}
		cmds = append(cmds, m.waitForChange())
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	if cmd := m.anim.start(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modePicker:
		m.handlePickerKey(key)
		return nil
	case modeConfirm:
		return m.handleConfirmKey(key)
	case modeHelp:
		switch key {
		case "?", "q", "esc":
			m.mode = modeNormal
			return nil
		}
		return m.help.Update(msg)
	}

	switch key {
	case "q":
		return tea.Quit
	case "left":
		m.ctl.QueueFlip(-1)
	case "right":
		m.ctl.QueueFlip(+1)
	case "f":
		m.ctl.QueueFlip(+1)
	case "F", "shift+f":
		m.ctl.QueueFlip(-1)
	case "h":
		m.moveCursor(-1)
	case "l":
		m.moveCursor(+1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(+7)
	case "enter", "space", " ":
		return m.activate()
	case "n":
		return m.openEditor(m.cursor)
	case "t":
		m.today()
	case "g":
		m.picker = newPicker(m.ctl.Projected(), m.now().Year())
		m.mode = modePicker
	case "X", "shift+x":
		m.mode = modeConfirm
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= calendar.GridCells {
		return
	}
	m.cursor = next
}

// activate selects the cell under the cursor. A second activation of the
// same cell within DoubleActivation opens the editor.
func (m *Model) activate() tea.Cmd {
	now := m.now()
	if m.lastActivateIdx == m.cursor && now.Sub(m.lastActivateAt) <= DoubleActivation {
		m.lastActivateIdx = -1
		return m.openEditor(m.cursor)
	}
	m.lastActivateIdx = m.cursor
	m.lastActivateAt = now
	m.board.Select(m.ctl.Current(), m.cursor)
	return nil
}

func (m *Model) today() {
	if m.ctl.Today(calendar.Today(m.now())) {
		m.followToday = true
		m.status = "Flipping to today"
		return
	}
	m.cursorToSelection()
	m.status = "Today"
}

func (m *Model) cursorToSelection() {
	if sel := m.board.Selected(); sel != nil {
		if idx := m.board.Face(m.ctl.Current()).Grid.Find(sel.Key()); idx >= 0 {
			m.cursor = idx
		}
	}
}

func (m *Model) openEditor(idx int) tea.Cmd {
	f := m.ctl.Current()
	content := m.board.Face(f)
	if idx < 0 || idx >= calendar.GridCells || !content.Rendered {
		return nil
	}
	cell := content.Grid.Cells[idx]
	existing, _ := m.store.Get(cell.Key)
	m.edit = editTarget{face: f, idx: idx, key: cell.Key, label: m.board.PromptLabel(cell.Day)}
	m.board.Select(f, idx)
	m.editor.SetValue(existing)
	m.editor.CursorEnd()
	m.mode = modeEdit
	return tea.Batch(m.editor.Focus(), textinput.Blink)
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value := m.editor.Value()
		m.closeEditor()
		if err := m.commitNote(value); err != nil {
			m.log.Warn("tui: saving note failed", zap.String("key", m.edit.key), zap.Error(err))
			return func() tea.Msg { return errMsg{err} }
		}
		if strings.TrimSpace(value) == "" {
			m.status = "Note removed"
		} else {
			m.status = "Note saved"
		}
		return nil
	case "esc":
		m.closeEditor()
		m.status = "Edit cancelled"
		return nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

// commitNote writes value for the day the editor was opened on.
func (m *Model) commitNote(value string) error {
	t := m.edit
	content := m.board.Face(t.face)
	if content.Rendered && content.Grid.Cells[t.idx].Key == t.key {
		answer := face.PrompterFunc(func(string, string) (string, bool) { return value, true })
		_, err := m.board.EditNote(t.face, t.idx, answer)
		return err
	}
	// The face flipped to another month while the editor was open.
	if err := m.store.Set(t.key, value); err != nil {
		return err
	}
	if m.ctl.State() == flip.Idle {
		m.board.RenderFace(m.ctl.Current(), m.ctl.View())
	}
	return nil
}

func (m *Model) closeEditor() {
	m.mode = modeNormal
	m.editor.Blur()
	m.editor.Reset()
}

func (m *Model) handlePickerKey(key string) {
	switch key {
	case "esc", "q":
		m.mode = modeNormal
		m.status = "Go to cancelled"
	case "j", "down":
		m.picker.moveMonth(+1)
	case "k", "up":
		m.picker.moveMonth(-1)
	case "l", "right":
		m.picker.moveYear(+1)
	case "h", "left":
		m.picker.moveYear(-1)
	case "enter":
		m.mode = modeNormal
		target := m.picker.target()
		steps := m.ctl.JumpTo(target)
		if steps == 0 {
			m.status = "Already there"
			return
		}
		m.status = fmt.Sprintf("Flipping %d month(s) toward %s", steps, m.board.Names().MonthLabel(target))
	}
}

func (m *Model) handleConfirmKey(key string) tea.Cmd {
	m.mode = modeNormal
	if key != "y" && key != "Y" {
		m.status = "Clear cancelled"
		return nil
	}
	if err := m.store.ClearAll(); err != nil {
		m.log.Warn("tui: clearing notes failed", zap.Error(err))
		return func() tea.Msg { return errMsg{err} }
	}
	m.board.RenderFace(m.ctl.Current(), m.ctl.View())
	m.status = "All notes cleared"
	return nil
}

// View renders the card, the status lines and any open overlay.
func (m Model) View() string {
	th := m.theme
	header := th.Header.Title.Render(m.board.Title())
	if sub := m.board.Subtitle(); sub != "" {
		header += "  " + th.Header.Subtitle.Render(sub)
	}

	body := m.renderCard()
	if m.mode == modeHelp {
		body = m.help.View()
	}

	lines := []string{header, body, th.Footer.Meta.Render(m.board.Meta())}
	if sel := m.board.Selected(); sel != nil {
		if note, ok := m.store.Get(sel.Key()); ok {
			lines = append(lines, th.Face.Note.Render(wordwrap.String("Note: "+note, faceWidth(th.Face))))
		}
	}

	switch m.mode {
	case modeEdit:
		prompt := th.Modal.Title.Render(m.edit.label) + "\n" + m.editor.View() + "\n" +
			th.Modal.Body.Render("enter save  esc cancel")
		lines = append(lines, th.Modal.Frame.Render(prompt))
	case modePicker:
		lines = append(lines, m.picker.view(th.Modal, m.board.Names()))
	case modeConfirm:
		lines = append(lines, th.Modal.Frame.Render(
			th.Modal.Title.Render("Clear ALL saved notes? This cannot be undone.")+"\n"+
				th.Modal.Body.Render("y to clear, any other key to keep them")))
	}

	status := th.Footer.Status.Render(fmt.Sprintf("[%s] %s", m.mode, m.status))
	lines = append(lines, status)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCard draws the visible face, or the frame of a running flip.
func (m Model) renderCard() string {
	th := m.theme.Face
	current := m.ctl.Current()
	if !m.anim.active {
		return renderFace(th, m.board.Face(current), m.cursor, cellWidth, borderFor(th, current))
	}

	p := m.anim.progress()
	scale, revealed := flipScale(p)
	shown := current
	if revealed {
		shown = m.anim.to
	}
	width := int(float64(cellWidth)*scale + 0.5)
	border := blendBorder(borderFor(th, current), borderFor(th, m.anim.to), p)
	card := renderFace(th, m.board.Face(shown), -1, width, border)
	return lipgloss.PlaceHorizontal(faceWidth(th), lipgloss.Center, card)
}
