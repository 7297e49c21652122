// Package ui contains the Bubble Tea program that hosts the structural editor.
// The Model focuses on message orchestration; the editor itself owns the tree,
// the command buffer and every edit.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message is
//     routed through a typed handler registry so every tea.Msg is handled by
//     a focused function.
//   - Key presses are translated to editor keys (keys.go) and handed to the
//     Session. When the session terminates the model returns tea.Quit.
//   - After every key the model pulls a fresh editor.Frame and caches it for
//     View.
//
// Rendering:
//   - The tree text is colored by internal/highlight, which also paints the
//     selected node. The viewport in internal/ui/state keeps the selection on
//     screen when the tree is taller than the terminal.
//   - The bottom bar shows the status message, the hint with key help from
//     bubbles/help, and the pending command followed by a bubbles/cursor caret.
package ui
