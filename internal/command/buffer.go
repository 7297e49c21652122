package command

// Buffer holds the keys typed since the last command resolved or was aborted.
type Buffer struct {
	runes []rune
}

// Push appends r.
func (b *Buffer) Push(r rune) {
	b.runes = append(b.runes, r)
}

// Clear empties the buffer, keeping its storage.
func (b *Buffer) Clear() {
	b.runes = b.runes[:0]
}

// Len reports the number of runes held.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// String returns the pending keys as text.
func (b *Buffer) String() string {
	return string(b.runes)
}
