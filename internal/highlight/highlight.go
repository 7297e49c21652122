// Package highlight colors rendered JSON with a chroma theme and paints the
// selected node's byte range on top of it.
package highlight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/zmilan/sapling/internal/ast"
	"github.com/zmilan/sapling/internal/format/suggest"
)

// None disables token colors. The selection is still painted.
const None = "none"

// Highlighter renders text with per-token styles. Build one with New.
type Highlighter struct {
	theme     *chroma.Style
	lexer     chroma.Lexer
	renderer  *lipgloss.Renderer
	selection lipgloss.Style
	cache     map[chroma.TokenType]lipgloss.Style
}

// Option customises a Highlighter.
type Option func(*Highlighter)

// WithRenderer builds token styles on r instead of the default renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(h *Highlighter) {
		h.renderer = r
	}
}

// Themes lists the chroma theme names accepted by New, sorted.
func Themes() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

// HasTheme reports whether name is None, empty or a registered chroma theme.
func HasTheme(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, None) {
		return true
	}
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// New returns a highlighter for the named theme. An empty name or None
// produces a highlighter that only paints the selection.
func New(themeName string, selection lipgloss.Style, opts ...Option) (*Highlighter, error) {
	h := &Highlighter{
		renderer:  lipgloss.DefaultRenderer(),
		selection: selection,
		cache:     map[chroma.TokenType]lipgloss.Style{},
	}
	for _, opt := range opts {
		opt(h)
	}
	themeName = strings.TrimSpace(themeName)
	if themeName == "" || strings.EqualFold(themeName, None) {
		return h, nil
	}
	theme, ok := styles.Registry[strings.ToLower(themeName)]
	if !ok {
		if hint := suggest.Suggest(themeName, Themes()); hint != "" {
			return nil, fmt.Errorf("unknown theme %q (did you mean %q?)", themeName, hint)
		}
		return nil, fmt.Errorf("unknown theme %q", themeName)
	}
	lexer := lexers.Get("json")
	if lexer == nil {
		return nil, fmt.Errorf("json lexer not registered")
	}
	h.theme = theme
	h.lexer = chroma.Coalesce(lexer)
	return h, nil
}

type segment struct {
	text  string
	style lipgloss.Style
}

// Render returns text with token colors applied and sel painted with the
// selection style. Stripping the escape codes gives back text unchanged.
func (h *Highlighter) Render(text string, sel ast.Span) string {
	var b strings.Builder
	offset := 0
	for _, seg := range h.segments(text) {
		end := offset + len(seg.text)
		cuts := []int{offset}
		for _, p := range []int{sel.Start, sel.End} {
			if p > offset && p < end {
				cuts = append(cuts, p)
			}
		}
		cuts = append(cuts, end)
		for i := 0; i+1 < len(cuts); i++ {
			lo, hi := cuts[i], cuts[i+1]
			style := seg.style
			if !sel.Empty() && lo >= sel.Start && hi <= sel.End {
				style = h.selection.Inherit(seg.style)
			}
			writeStyled(&b, text[lo:hi], style)
		}
		offset = end
	}
	return b.String()
}

// segments splits text into styled runs that cover it exactly. Text the
// lexer cannot reproduce byte for byte is returned as one plain run.
func (h *Highlighter) segments(text string) []segment {
	plain := []segment{{text: text, style: h.renderer.NewStyle()}}
	if h.theme == nil || text == "" {
		return plain
	}
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return plain
	}
	var out []segment
	covered := 0
	for _, tok := range it.Tokens() {
		value := tok.Value
		if covered+len(value) > len(text) {
			value = value[:len(text)-covered]
		}
		if value == "" {
			continue
		}
		if text[covered:covered+len(value)] != value {
			return plain
		}
		out = append(out, segment{text: value, style: h.tokenStyle(tok.Type)})
		covered += len(value)
		if covered == len(text) {
			break
		}
	}
	if covered != len(text) {
		return plain
	}
	return out
}

func (h *Highlighter) tokenStyle(tt chroma.TokenType) lipgloss.Style {
	if s, ok := h.cache[tt]; ok {
		return s
	}
	entry := h.theme.Get(tt)
	s := h.renderer.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	h.cache[tt] = s
	return s
}

// writeStyled styles each line of text separately so no escape sequence
// spans a newline.
func writeStyled(b *strings.Builder, text string, style lipgloss.Style) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line == "" {
			continue
		}
		b.WriteString(style.Render(line))
	}
}
