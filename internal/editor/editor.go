// Package editor holds the modal editing loop: it feeds key presses through
// the command interpreter, applies the resulting edits to a tree and lays
// the result out on a terminal canvas.
package editor

import (
	"errors"
	"fmt"

	"github.com/zmilan/sapling/internal/ast"
	"github.com/zmilan/sapling/internal/command"
	"github.com/zmilan/sapling/internal/logging"
	"github.com/zmilan/sapling/internal/logging/events"
	"github.com/zmilan/sapling/internal/tree"
)

// Hint is shown on the bottom row of every frame.
const Hint = "Press 'q' to exit."

// State reports whether the loop should keep reading keys.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Constructor builds the node a replace command asks for. It reports false
// when the character has no meaning in the grammar.
type Constructor[N ast.Node] func(c rune) (N, bool)

// Frame is everything one screen shows, independent of how it is drawn.
type Frame struct {
	Tree      string
	Selection ast.Span
	Command   string
	Status    string
	Hint      string
}

// Editor owns a tree, the command being typed and the last status message.
type Editor[N ast.Node] struct {
	tree   *tree.Tree[N]
	build  Constructor[N]
	style  ast.FormatStyle
	buffer command.Buffer
	status string
	state  State
	err    error
}

// New returns a running editor over t.
func New[N ast.Node](t *tree.Tree[N], build Constructor[N], style ast.FormatStyle) *Editor[N] {
	return &Editor[N]{tree: t, build: build, style: style}
}

// Accessors for the backends. Command is the pending, unresolved input.
func (e *Editor[N]) Tree() *tree.Tree[N]    { return e.tree }
func (e *Editor[N]) State() State           { return e.state }
func (e *Editor[N]) Command() string        { return e.buffer.String() }
func (e *Editor[N]) Status() string         { return e.status }
func (e *Editor[N]) Style() ast.FormatStyle { return e.style }

// Err returns the error that terminated the editor, if any.
func (e *Editor[N]) Err() error { return e.err }

// HandleKey applies one key press and returns the resulting state. Keys
// arriving after termination are ignored.
func (e *Editor[N]) HandleKey(k Key) State {
	if e.state == Terminated {
		return e.state
	}
	e.status = ""
	switch k.Kind {
	case KeyRune:
		e.handleRune(k.Rune)
	case KeyEscape:
		events.Command.Abort(e.buffer.String(), events.ReasonEscape)
		e.buffer.Clear()
	case KeyInterrupt:
		events.Command.Abort(e.buffer.String(), events.ReasonInterrupt)
		e.buffer.Clear()
		e.state = Terminated
	case KeyUp:
		e.move("parent", e.tree.SelectParent)
	case KeyDown:
		e.move("child", e.tree.SelectFirstChild)
	case KeyLeft:
		e.move("prev", e.tree.SelectPrevSibling)
	case KeyRight:
		e.move("next", e.tree.SelectNextSibling)
	case KeyDelete:
		e.deleteSelected()
	}
	return e.state
}

func (e *Editor[N]) handleRune(r rune) {
	e.buffer.Push(r)
	events.Command.Append(e.buffer.String())
	action, ok := command.Interpret(e.buffer.String())
	if !ok {
		return
	}
	events.Command.Resolve(e.buffer.String(), action.String())
	e.buffer.Clear()

	switch action.Kind {
	case command.Quit:
		e.state = Terminated
	case command.Replace:
		e.replace(action.Char)
	}
}

func (e *Editor[N]) replace(c rune) {
	n, ok := e.build(c)
	if !ok {
		e.status = fmt.Sprintf("Cannot replace with %q", c)
		return
	}
	ref := e.tree.Selected()
	if err := e.tree.ReplaceSelected(n); err != nil {
		e.fail(err)
		return
	}
	events.Tree.Replace(int(ref), fmt.Sprintf("%c", c))
}

func (e *Editor[N]) move(direction string, fn func() error) {
	if err := fn(); err != nil {
		e.refuse("select "+direction, err)
		return
	}
	events.Tree.Select(direction, int(e.tree.Selected()))
}

func (e *Editor[N]) deleteSelected() {
	ref := e.tree.Selected()
	if err := e.tree.DeleteSelected(); err != nil {
		e.refuse("delete", err)
		return
	}
	events.Tree.Delete(int(ref), int(e.tree.Selected()))
}

// refuse reports an edit that could not be made. Broken structure is fatal;
// anything else is a status message.
func (e *Editor[N]) refuse(op string, err error) {
	if isFatal(err) {
		e.fail(err)
		return
	}
	events.Tree.Refused(op, err)
	e.status = fmt.Sprintf("Cannot %s: %v", op, err)
}

func (e *Editor[N]) fail(err error) {
	logging.Error(err)
	e.err = err
	e.state = Terminated
}

func isFatal(err error) bool {
	return errors.Is(err, ast.ErrInvalidReference) ||
		errors.Is(err, ast.ErrCycle) ||
		errors.Is(err, tree.ErrInvalidSelection)
}

// Frame renders the current tree with the selection marked.
func (e *Editor[N]) Frame() (Frame, error) {
	text, span, err := e.tree.Render(e.style)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Tree:      text,
		Selection: span,
		Command:   e.buffer.String(),
		Status:    e.status,
		Hint:      Hint,
	}, nil
}
