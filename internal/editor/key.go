package editor

import (
	"fmt"
	"strings"

	"github.com/zmilan/sapling/internal/format/suggest"
)

// KeyKind classifies a key press independently of the terminal backend.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyDelete
	KeyInterrupt
	KeyOther
)

// Key is one key press. Rune is only meaningful for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune returns the key press for a printable character.
func Rune(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

var keyNames = map[string]KeyKind{
	"esc":    KeyEscape,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"del":    KeyDelete,
	"ctrl+c": KeyInterrupt,
}

func (k Key) String() string {
	if k.Kind == KeyRune {
		if k.Rune == '<' {
			return "<lt>"
		}
		return string(k.Rune)
	}
	for name, kind := range keyNames {
		if kind == k.Kind {
			return "<" + name + ">"
		}
	}
	return "<other>"
}

// KeyNames lists the names accepted between angle brackets by ParseKeys.
func KeyNames() []string {
	return []string{"esc", "up", "down", "left", "right", "del", "ctrl+c", "lt"}
}

// ParseKeys turns a key script into key presses. Plain characters stand for
// themselves; named keys are written in angle brackets, e.g. "rt<up><del>q".
// A literal "<" is written "<lt>".
func ParseKeys(script string) ([]Key, error) {
	var keys []Key
	rest := script
	for rest != "" {
		r := []rune(rest)[0]
		if r != '<' {
			keys = append(keys, Rune(r))
			rest = rest[len(string(r)):]
			continue
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, fmt.Errorf("unterminated key name in %q", rest)
		}
		name := strings.ToLower(rest[1:end])
		rest = rest[end+1:]
		if name == "lt" {
			keys = append(keys, Rune('<'))
			continue
		}
		kind, ok := keyNames[name]
		if !ok {
			if hint := suggest.Suggest(name, KeyNames()); hint != "" {
				return nil, fmt.Errorf("unknown key <%s> (did you mean <%s>?)", name, hint)
			}
			return nil, fmt.Errorf("unknown key <%s>", name)
		}
		keys = append(keys, Key{Kind: kind})
	}
	return keys, nil
}
