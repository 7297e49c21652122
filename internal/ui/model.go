package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zmilan/sapling/internal/editor"
	"github.com/zmilan/sapling/internal/highlight"
	"github.com/zmilan/sapling/internal/logging"
	"github.com/zmilan/sapling/internal/theme"
	uistate "github.com/zmilan/sapling/internal/ui/state"
)

// Session is the editor as seen by the UI. *editor.Editor satisfies it for
// every grammar.
type Session interface {
	HandleKey(k editor.Key) editor.State
	Frame() (editor.Frame, error)
	Err() error
}

// Options configures a Model. Zero values pick the defaults.
type Options struct {
	Width       int
	Height      int
	Styles      *theme.Styles
	Highlighter *highlight.Highlighter
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the structural editor.
type Model struct {
	session     Session
	frame       editor.Frame
	err         error
	quitting    bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	viewport    uistate.Viewport
	styles      *theme.Styles
	highlighter *highlight.Highlighter
	help        help.Model
	caret       cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps session and renders its first frame.
func NewModel(session Session, opts Options) *Model {
	m := &Model{
		session:     session,
		styles:      opts.Styles,
		highlighter: opts.Highlighter,
	}
	if m.styles == nil {
		m.styles = theme.Default()
	}
	if m.highlighter == nil {
		h, err := highlight.New(highlight.None, *m.styles.Selection)
		if err == nil {
			m.highlighter = h
		}
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help = help.New()
	m.help.Styles.ShortKey = *m.styles.HintKey
	m.help.Styles.ShortDesc = *m.styles.Hint
	m.help.Styles.ShortSeparator = *m.styles.Hint

	c := cursor.New()
	c.Style = *m.styles.Cursor
	c.TextStyle = *m.styles.Command
	c.SetChar(" ")
	m.caret = c

	m.refreshFrame()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Frame returns the frame the next View call draws.
func (m *Model) Frame() editor.Frame {
	return m.frame
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	for _, k := range toEditorKeys(keyMsg) {
		if m.session.HandleKey(k) == editor.Terminated {
			m.quitting = true
			m.err = m.session.Err()
			return tea.Quit
		}
	}
	if !m.refreshFrame() {
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// refreshFrame pulls a new frame from the session. A failure is fatal: the
// error is logged and kept for the caller of the program.
func (m *Model) refreshFrame() bool {
	f, err := m.session.Frame()
	if err != nil {
		logging.Error(err)
		m.err = err
		return false
	}
	m.frame = f
	return true
}
