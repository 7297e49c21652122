package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zmilan/sapling/internal/editor"
)

type keyMap struct {
	Parent    key.Binding
	Child     key.Binding
	Prev      key.Binding
	Next      key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Interrupt key.Binding
}

var keys = keyMap{
	Parent:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "parent")),
	Child:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "child")),
	Prev:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
	Next:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete")),
	Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Parent, k.Child, k.Prev, k.Next, k.Delete}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Parent, k.Child, k.Prev, k.Next},
		{k.Delete, k.Clear, k.Interrupt},
	}
}

// toEditorKeys maps a Bubble Tea key press to editor keys. Pasted text
// arrives as several runes and becomes one key per rune. Alt chords are not
// commands.
func toEditorKeys(msg tea.KeyMsg) []editor.Key {
	if msg.Alt {
		return []editor.Key{{Kind: editor.KeyOther}}
	}
	switch msg.Type {
	case tea.KeyRunes:
		out := make([]editor.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, editor.Rune(r))
		}
		return out
	case tea.KeySpace:
		return []editor.Key{editor.Rune(' ')}
	}
	switch {
	case key.Matches(msg, keys.Parent):
		return []editor.Key{{Kind: editor.KeyUp}}
	case key.Matches(msg, keys.Child):
		return []editor.Key{{Kind: editor.KeyDown}}
	case key.Matches(msg, keys.Prev):
		return []editor.Key{{Kind: editor.KeyLeft}}
	case key.Matches(msg, keys.Next):
		return []editor.Key{{Kind: editor.KeyRight}}
	case key.Matches(msg, keys.Delete):
		return []editor.Key{{Kind: editor.KeyDelete}}
	case key.Matches(msg, keys.Clear):
		return []editor.Key{{Kind: editor.KeyEscape}}
	case key.Matches(msg, keys.Interrupt):
		return []editor.Key{{Kind: editor.KeyInterrupt}}
	}
	return []editor.Key{{Kind: editor.KeyOther}}
}
