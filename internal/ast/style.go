package ast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by ParseFormatStyle for unrecognised names.
var ErrUnknownStyle = errors.New("unknown format style")

// FormatStyle selects how a tree is turned into text. Indent is the number of
// spaces per nesting level; zero renders everything on one line.
type FormatStyle struct {
	Name   string
	Indent int
}

var (
	Compact = FormatStyle{Name: "compact"}
	Pretty  = FormatStyle{Name: "pretty", Indent: 2}
	Pretty4 = FormatStyle{Name: "pretty4", Indent: 4}
)

var formatStyles = []FormatStyle{Compact, Pretty, Pretty4}

// IsCompact reports whether the style renders without line breaks.
func (s FormatStyle) IsCompact() bool {
	return s.Indent <= 0
}

func (s FormatStyle) String() string {
	return s.Name
}

// FormatStyleNames lists the names accepted by ParseFormatStyle.
func FormatStyleNames() []string {
	names := make([]string, len(formatStyles))
	for i, style := range formatStyles {
		names[i] = style.Name
	}
	return names
}

// ParseFormatStyle looks a style up by name, ignoring case and surrounding space.
func ParseFormatStyle(name string) (FormatStyle, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, style := range formatStyles {
		if style.Name == key {
			return style, nil
		}
	}
	return FormatStyle{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
