package highlight

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/zmilan/sapling/internal/ast"
)

const sample = `{
  "value": [
    true,
    12,
    "leaf"
  ]
}`

func trueColor() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestRenderPreservesText(t *testing.T) {
	r := trueColor()
	h, err := New("monokai", r.NewStyle().Reverse(true), WithRenderer(r))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	start := strings.Index(sample, "[")
	sel := ast.Span{Start: start, End: strings.LastIndex(sample, "]") + 1}
	out := h.Render(sample, sel)
	if out == sample {
		t.Fatalf("expected escape codes in output")
	}
	if got := ansi.Strip(out); got != sample {
		t.Fatalf("expected stripped output to equal input, got %q", got)
	}
	if strings.Count(out, "\n") != strings.Count(sample, "\n") {
		t.Fatalf("expected line structure to be kept")
	}
}

func TestRenderWithoutThemePaintsSelectionOnly(t *testing.T) {
	r := trueColor()
	sel := r.NewStyle().Reverse(true)
	h, err := New(None, sel, WithRenderer(r))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out := h.Render("[true,false]", ast.Span{Start: 1, End: 5})
	want := "[" + sel.Render("true") + ",false]"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRenderEmptySelection(t *testing.T) {
	h, err := New("", lipgloss.NewStyle().Reverse(true), WithRenderer(trueColor()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if out := h.Render("null", ast.Span{}); out != "null" {
		t.Fatalf("expected plain output, got %q", out)
	}
}

func TestSelectionSpanningLines(t *testing.T) {
	r := trueColor()
	sel := r.NewStyle().Reverse(true)
	h, err := New(None, sel, WithRenderer(r))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	text := "[\n  1\n]"
	out := h.Render(text, ast.Span{Start: 0, End: len(text)})
	want := sel.Render("[") + "\n" + sel.Render("  1") + "\n" + sel.Render("]")
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestUnknownThemeSuggests(t *testing.T) {
	_, err := New("monokia", lipgloss.NewStyle())
	if err == nil || !strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestHasTheme(t *testing.T) {
	for name, want := range map[string]bool{
		"monokai": true,
		"Monokai": true,
		"none":    true,
		"":        true,
		"no-such": false,
	} {
		if got := HasTheme(name); got != want {
			t.Fatalf("HasTheme(%q): expected %v, got %v", name, want, got)
		}
	}
	if len(Themes()) == 0 {
		t.Fatalf("expected registered themes")
	}
}
