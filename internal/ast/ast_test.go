package ast

import (
	"errors"
	"fmt"
	"testing"
)

// listNode renders as "(label child child ...)".
type listNode struct {
	label string
	kids  []Ref
}

func (n listNode) Children() []Ref { return n.kids }

func (n listNode) ShallowEqual(other Node) bool {
	o, ok := other.(listNode)
	return ok && o.label == n.label && len(o.kids) == len(n.kids)
}

func (n listNode) Render(p *Printer, depth int) error {
	if len(n.kids) == 0 {
		p.WriteString(n.label)
		return nil
	}
	p.WriteString("(" + n.label)
	for _, kid := range n.kids {
		p.Newline(depth + 1)
		if p.Style().IsCompact() {
			p.WriteString(" ")
		}
		if err := p.Child(kid, depth+1); err != nil {
			return err
		}
	}
	p.WriteString(")")
	return nil
}

type mapResolver map[Ref]listNode

func (m mapResolver) Resolve(ref Ref) (Node, error) {
	n, ok := m[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}
	return n, nil
}

func sampleNodes() mapResolver {
	return mapResolver{
		0: {label: "root", kids: []Ref{1, 2}},
		1: {label: "a"},
		2: {label: "b", kids: []Ref{3}},
		3: {label: "c"},
	}
}

func TestRenderStyles(t *testing.T) {
	nodes := sampleNodes()
	compact, err := Render(nodes, 0, Compact)
	if err != nil {
		t.Fatalf("render compact: %v", err)
	}
	if compact != "(root a (b c))" {
		t.Fatalf("unexpected compact output %q", compact)
	}
	pretty, err := Render(nodes, 0, Pretty)
	if err != nil {
		t.Fatalf("render pretty: %v", err)
	}
	want := "(root\n  a\n  (b\n    c))"
	if pretty != want {
		t.Fatalf("expected %q, got %q", want, pretty)
	}
}

func TestPrinterMarksSpan(t *testing.T) {
	p := NewPrinter(sampleNodes(), Compact)
	p.Mark(2)
	if err := p.Child(0, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	span, ok := p.MarkedSpan()
	if !ok {
		t.Fatalf("expected marked span to be recorded")
	}
	if got := p.String()[span.Start:span.End]; got != "(b c)" {
		t.Fatalf("expected span to cover %q, got %q", "(b c)", got)
	}
}

func TestPrinterUnmarkedSpan(t *testing.T) {
	p := NewPrinter(sampleNodes(), Compact)
	p.Mark(42)
	if err := p.Child(0, 0); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, ok := p.MarkedSpan(); ok {
		t.Fatalf("expected no span for a ref outside the tree")
	}
}

func TestRenderDetectsCycle(t *testing.T) {
	nodes := mapResolver{
		0: {label: "loop", kids: []Ref{1}},
		1: {label: "back", kids: []Ref{0}},
	}
	_, err := Render(nodes, 0, Compact)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestRenderSharedChildIsNotACycle(t *testing.T) {
	nodes := mapResolver{
		0: {label: "pair", kids: []Ref{1, 1}},
		1: {label: "x"},
	}
	got, err := Render(nodes, 0, Compact)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "(pair x x)" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderInvalidReference(t *testing.T) {
	nodes := mapResolver{0: {label: "root", kids: []Ref{9}}}
	if _, err := Render(nodes, 0, Pretty); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("expected ErrInvalidReference, got %v", err)
	}
}

func TestEqualIgnoresSlotNumbering(t *testing.T) {
	a := sampleNodes()
	b := mapResolver{
		7: {label: "root", kids: []Ref{5, 6}},
		5: {label: "a"},
		6: {label: "b", kids: []Ref{4}},
		4: {label: "c"},
	}
	eq, err := Equal(a, 0, b, 7)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}
	if !eq {
		t.Fatalf("expected trees to be equal")
	}
	b[4] = listNode{label: "d"}
	if eq, _ := Equal(a, 0, b, 7); eq {
		t.Fatalf("expected trees with different leaves to differ")
	}
}

func TestParseFormatStyle(t *testing.T) {
	for _, tc := range []struct {
		name string
		want FormatStyle
	}{
		{"compact", Compact},
		{" Pretty ", Pretty},
		{"PRETTY4", Pretty4},
	} {
		got, err := ParseFormatStyle(tc.name)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("expected %v for %q, got %v", tc.want, tc.name, got)
		}
	}
	if _, err := ParseFormatStyle("fancy"); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}
