package ast

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range [Start, End) of rendered text.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Printer accumulates rendered text for a tree. Nodes reach their children
// through Child so that references are resolved against the right store and
// the span of a marked node can be recorded.
type Printer struct {
	nodes    Resolver
	style    FormatStyle
	buf      strings.Builder
	mark     Ref
	span     Span
	marked   bool
	visiting map[Ref]struct{}
}

// NewPrinter prepares a printer that resolves children through nodes.
func NewPrinter(nodes Resolver, style FormatStyle) *Printer {
	return &Printer{
		nodes:    nodes,
		style:    style,
		mark:     NoRef,
		visiting: make(map[Ref]struct{}),
	}
}

// Mark asks the printer to remember where ref's text starts and ends.
func (p *Printer) Mark(ref Ref) {
	p.mark = ref
	p.marked = false
	p.span = Span{}
}

// Style returns the format style in effect.
func (p *Printer) Style() FormatStyle {
	return p.style
}

// WriteString appends literal text.
func (p *Printer) WriteString(s string) {
	p.buf.WriteString(s)
}

// Newline breaks the line and indents to depth. Compact styles write nothing.
func (p *Printer) Newline(depth int) {
	if p.style.IsCompact() {
		return
	}
	p.buf.WriteByte('\n')
	if depth > 0 {
		p.buf.WriteString(strings.Repeat(" ", depth*p.style.Indent))
	}
}

// Space writes a separating blank in non-compact styles.
func (p *Printer) Space() {
	if p.style.IsCompact() {
		return
	}
	p.buf.WriteByte(' ')
}

// Child resolves ref and renders it at depth.
func (p *Printer) Child(ref Ref, depth int) error {
	if _, ok := p.visiting[ref]; ok {
		return fmt.Errorf("%w: %s", ErrCycle, ref)
	}
	node, err := p.nodes.Resolve(ref)
	if err != nil {
		return err
	}
	p.visiting[ref] = struct{}{}
	defer delete(p.visiting, ref)

	start := p.buf.Len()
	if err := node.Render(p, depth); err != nil {
		return err
	}
	if ref == p.mark && !p.marked {
		p.span = Span{Start: start, End: p.buf.Len()}
		p.marked = true
	}
	return nil
}

// String returns everything written so far.
func (p *Printer) String() string {
	return p.buf.String()
}

// MarkedSpan returns the span recorded for the marked ref, if it was rendered.
func (p *Printer) MarkedSpan() (Span, bool) {
	return p.span, p.marked
}

// Render renders the subtree rooted at root.
func Render(nodes Resolver, root Ref, style FormatStyle) (string, error) {
	p := NewPrinter(nodes, style)
	if err := p.Child(root, 0); err != nil {
		return "", err
	}
	return p.String(), nil
}
