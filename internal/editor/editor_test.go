package editor

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zmilan/sapling/internal/ast"
	"github.com/zmilan/sapling/internal/jsontree"
	"github.com/zmilan/sapling/internal/logging"
	"github.com/zmilan/sapling/internal/tree"
)

const defaultPretty = `[
  true,
  false,
  {
    "value": true
  }
]`

func newEditor(t *testing.T, lit jsontree.Literal, style ast.FormatStyle) *Editor[jsontree.Node] {
	t.Helper()
	logging.Configure(t.TempDir() + "/sapling.log")
	t.Cleanup(func() { logging.Configure("") })
	nodes, root := jsontree.Build(lit)
	return New(tree.New(nodes, root), jsontree.FromChar, style)
}

func treeText(t *testing.T, e *Editor[jsontree.Node]) string {
	t.Helper()
	text, err := e.Tree().ToText(e.Style())
	if err != nil {
		t.Fatalf("render tree: %v", err)
	}
	return text
}

func press(e *Editor[jsontree.Node], script string) State {
	keys, err := ParseKeys(script)
	if err != nil {
		panic(err)
	}
	state := e.State()
	for _, k := range keys {
		state = e.HandleKey(k)
	}
	return state
}

func TestQuitTerminatesWithoutMutation(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Pretty)
	if state := press(e, "q"); state != Terminated {
		t.Fatalf("expected terminated, got %v", state)
	}
	if got := treeText(t, e); got != defaultPretty {
		t.Fatalf("expected unchanged tree, got %q", got)
	}
	if e.Err() != nil {
		t.Fatalf("expected clean exit, got %v", e.Err())
	}
}

func TestUndefinedCommandClearsBuffer(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Pretty)
	if state := press(e, "x"); state != Running {
		t.Fatalf("expected running, got %v", state)
	}
	if e.Command() != "" {
		t.Fatalf("expected empty command, got %q", e.Command())
	}
	if state := press(e, "q"); state != Terminated {
		t.Fatalf("expected terminated, got %v", state)
	}
	if got := treeText(t, e); got != defaultPretty {
		t.Fatalf("expected unchanged tree, got %q", got)
	}
}

func TestIncompleteCommandStaysBuffered(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Pretty)
	press(e, "r")
	if e.Command() != "r" {
		t.Fatalf("expected buffered r, got %q", e.Command())
	}
	press(e, "<esc>")
	if e.Command() != "" {
		t.Fatalf("expected escape to clear, got %q", e.Command())
	}
	if e.State() != Running {
		t.Fatalf("expected running after escape, got %v", e.State())
	}
}

func TestReplaceRootInPlace(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	root := e.Tree().Root()
	press(e, "rt")
	if got := treeText(t, e); got != "true" {
		t.Fatalf("expected true, got %q", got)
	}
	if e.Tree().Root() != root || e.Tree().Selected() != root {
		t.Fatalf("expected root slot %s to be kept", root)
	}
}

func TestReplaceNestedSelection(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "<down><right><right><down>r5")
	if got, want := treeText(t, e), `[true,false,{"value":5}]`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReplaceWithUnknownCharacterSetsStatus(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "rx")
	if !strings.Contains(e.Status(), "Cannot replace") {
		t.Fatalf("expected status message, got %q", e.Status())
	}
	if got := treeText(t, e); got != `[true,false,{"value":true}]` {
		t.Fatalf("expected unchanged tree, got %q", got)
	}
	press(e, "<esc>")
	if e.Status() != "" {
		t.Fatalf("expected status to clear on next key, got %q", e.Status())
	}
}

func TestRefusedMoveKeepsRunning(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	if state := press(e, "<up>"); state != Running {
		t.Fatalf("expected running, got %v", state)
	}
	if !strings.Contains(e.Status(), "Cannot select parent") {
		t.Fatalf("expected refusal status, got %q", e.Status())
	}
	press(e, "<del>")
	if !strings.Contains(e.Status(), "Cannot delete") {
		t.Fatalf("expected refusal status, got %q", e.Status())
	}
}

func TestDeleteSelectsParent(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "<down><right><del>")
	if got, want := treeText(t, e), `[true,{"value":true}]`; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if e.Tree().Selected() != e.Tree().Root() {
		t.Fatalf("expected selection on root, got %s", e.Tree().Selected())
	}
}

func TestInterruptTerminates(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "r")
	if state := press(e, "<ctrl+c>"); state != Terminated {
		t.Fatalf("expected terminated, got %v", state)
	}
	if e.Command() != "" {
		t.Fatalf("expected buffer cleared, got %q", e.Command())
	}
}

func TestKeysAfterTerminationAreIgnored(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "qrn")
	if got := treeText(t, e); got != `[true,false,{"value":true}]` {
		t.Fatalf("expected unchanged tree, got %q", got)
	}
}

func TestFrameMarksSelection(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "<down><right><right>r")
	f, err := e.Frame()
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if got := f.Tree[f.Selection.Start:f.Selection.End]; got != `{"value":true}` {
		t.Fatalf("expected object selected, got %q", got)
	}
	if f.Command != "r" || f.Hint != Hint {
		t.Fatalf("unexpected frame %+v", f)
	}
}

func TestRunScriptedSession(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Pretty)
	keys, err := ParseKeys("xr")
	if err != nil {
		t.Fatalf("parse keys: %v", err)
	}
	term := NewScriptTerminal(10, 30, keys)
	if err := e.Run(term); err != nil {
		t.Fatalf("run: %v", err)
	}
	screens := term.Screens()
	if len(screens) != 3 {
		t.Fatalf("expected 3 screens, got %d", len(screens))
	}
	want := strings.Join([]string{
		"[",
		"  true,",
		"  false,",
		"  {",
		`    "value": true`,
		"  }",
		"]",
		"",
		"",
		"Press 'q' to exit.      r",
	}, "\n")
	if diff := cmp.Diff(want, screens[2]); diff != "" {
		t.Fatalf("screen mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnQuitWithoutRedraw(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	term := NewScriptTerminal(4, 40, []Key{Rune('q'), Rune('r'), Rune('n')})
	if err := e.Run(term); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(term.Screens()) != 1 {
		t.Fatalf("expected only the initial screen, got %d", len(term.Screens()))
	}
	if term.Remaining() != 2 {
		t.Fatalf("expected 2 unread keys, got %d", term.Remaining())
	}
}

type failingTerminal struct {
	*Grid
	err error
}

func (f failingTerminal) PollEvent() (Key, error) { return Key{}, f.err }
func (f failingTerminal) Present() error          { return nil }

func TestRunReturnsTerminalError(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	boom := errors.New("tty closed")
	err := e.Run(failingTerminal{Grid: NewGrid(3, 20), err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestRunTreatsEOFAsCleanEnd(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	if err := e.Run(failingTerminal{Grid: NewGrid(3, 20), err: io.EOF}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStaleSelectionIsFatal(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "<down>")
	selected := e.Tree().Selected()
	if err := e.Tree().Store().Remove(selected); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if state := press(e, "rn"); state != Terminated {
		t.Fatalf("expected terminated, got %v", state)
	}
	if !errors.Is(e.Err(), ast.ErrInvalidReference) {
		t.Fatalf("expected invalid reference, got %v", e.Err())
	}
}

func TestDrawPlacesStatusAndCommand(t *testing.T) {
	e := newEditor(t, jsontree.DefaultLiteral(), ast.Compact)
	press(e, "<up>r")
	g := NewGrid(4, 40)
	if err := e.Draw(g); err != nil {
		t.Fatalf("draw: %v", err)
	}
	lines := g.Lines()
	if lines[0] != `[true,false,{"value":true}]` {
		t.Fatalf("unexpected tree row %q", lines[0])
	}
	if lines[2] != "" {
		t.Fatalf("expected status cleared by the following key, got %q", lines[2])
	}
	if lines[3] != "Press 'q' to exit."+strings.Repeat(" ", 16)+"r" {
		t.Fatalf("unexpected bottom row %q", lines[3])
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("r<lt><UP><del>√")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Key{Rune('r'), Rune('<'), {Kind: KeyUp}, {Kind: KeyDelete}, Rune('√')}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseKeysSuggestsName(t *testing.T) {
	_, err := ParseKeys("<dwn>")
	if err == nil || !strings.Contains(err.Error(), "did you mean <down>") {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if _, err := ParseKeys("<up"); err == nil {
		t.Fatalf("expected unterminated error")
	}
}

func TestGridWideCharacters(t *testing.T) {
	g := NewGrid(1, 6)
	g.Print(0, 0, "a世b")
	if got := g.Lines()[0]; got != "a世b" {
		t.Fatalf("expected a世b, got %q", got)
	}
	g.Print(0, 4, "界x")
	if got := g.Lines()[0]; got != "a世b界" {
		t.Fatalf("expected wide rune to fill the last two cells, got %q", got)
	}
	g.Print(0, 5, "界")
	if got := g.Lines()[0]; got != "a世b界" {
		t.Fatalf("expected clipped wide rune to be dropped, got %q", got)
	}
}
