// Package command decodes the editor's modal keystroke commands.
//
// Interpret is a pure function of the whole pending buffer: callers append a
// key, call Interpret, and clear the buffer whenever it reports a complete
// command. Commands are prefix-free, so anything typed after a complete
// command is ignored.
package command

import "fmt"

// ActionKind names the outcome of a complete command.
type ActionKind int

const (
	// Rejected means the command is not defined; the buffer is cleared and
	// nothing else happens.
	Rejected ActionKind = iota
	Quit
	Replace
)

func (k ActionKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Replace:
		return "replace"
	}
	return "rejected"
}

// Action is a fully decoded command. Char carries the argument of Replace.
type Action struct {
	Kind ActionKind
	Char rune
}

func (a Action) String() string {
	if a.Kind == Replace {
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	}
	return a.Kind.String()
}

// decoder receives the runes following the command's first character.
type decoder func(rest []rune) (Action, bool)

// commands is keyed by a command's first character.
var commands = map[rune]decoder{
	'q': func([]rune) (Action, bool) {
		return Action{Kind: Quit}, true
	},
	'r': func(rest []rune) (Action, bool) {
		if len(rest) == 0 {
			return Action{}, false
		}
		return Action{Kind: Replace, Char: rest[0]}, true
	},
}

// Interpret decodes buffer. It reports false while the command is still
// incomplete; otherwise the action is ready and the buffer should be cleared.
func Interpret(buffer string) (Action, bool) {
	runes := []rune(buffer)
	if len(runes) == 0 {
		return Action{}, false
	}
	decode, ok := commands[runes[0]]
	if !ok {
		return Action{Kind: Rejected}, true
	}
	return decode(runes[1:])
}
