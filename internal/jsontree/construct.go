package jsontree

// replacements maps the character typed after "r" to the node it produces.
var replacements = map[rune]Node{
	'n': {Kind: Null},
	't': {Kind: True},
	'f': {Kind: False},
	'a': {Kind: Array},
	'o': {Kind: Object},
	's': {Kind: String},
}

// FromChar builds the node a replace command asks for. Digits produce the
// number with that value. It reports false for characters with no meaning.
func FromChar(c rune) (Node, bool) {
	if c >= '0' && c <= '9' {
		return Node{Kind: Number, Text: string(c)}, true
	}
	n, ok := replacements[c]
	return n, ok
}

// ReplaceChars lists the non-digit characters FromChar accepts.
func ReplaceChars() []rune {
	return []rune{'n', 't', 'f', 'a', 'o', 's'}
}
