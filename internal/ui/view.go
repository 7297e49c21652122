package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/zmilan/sapling/internal/editor"
)

const (
	// bottomBarRows covers the status row and the hint/command row.
	bottomBarRows = 2
	commandMargin = 5
	hintGap       = "  "
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := m.treeLines()
	lines = applyWidth(lines, m.width)
	bottom := []styledLine{m.statusLine(), m.bottomLine()}
	bottom = applyWidth(bottom, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// treeLines returns the visible part of the highlighted tree, padded to fill
// the rows above the bottom bar when the height is known.
func (m *Model) treeLines() []styledLine {
	f := m.frame
	text := f.Tree
	if m.highlighter != nil {
		text = m.highlighter.Render(f.Tree, f.Selection)
	}
	rows := strings.Split(text, "\n")
	maxVisible := m.maxVisibleRows()
	first, last := selectionRows(f)
	m.viewport.EnsureRangeVisible(first, last, len(rows), maxVisible)
	start, end := m.viewport.Window(len(rows), maxVisible)

	lines := make([]styledLine, 0, len(rows))
	for _, row := range rows[start:end] {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	for maxVisible > 0 && len(lines) < maxVisible {
		lines = append(lines, styledLine{})
	}
	return lines
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - bottomBarRows
	if remain < 1 {
		return 1
	}
	return remain
}

// selectionRows returns the first and last line the selection covers.
func selectionRows(f editor.Frame) (int, int) {
	start := f.Selection.Start
	end := f.Selection.End
	if end > start {
		end--
	}
	if start > len(f.Tree) {
		start = len(f.Tree)
	}
	if end > len(f.Tree) {
		end = len(f.Tree)
	}
	return strings.Count(f.Tree[:start], "\n"), strings.Count(f.Tree[:end], "\n")
}

func (m *Model) statusLine() styledLine {
	if m.err != nil {
		return styledLine{text: "Error: " + m.err.Error(), style: m.styles.Error}
	}
	if m.frame.Status != "" {
		return styledLine{text: m.frame.Status, style: m.styles.Status}
	}
	return styledLine{}
}

// bottomLine puts the hint and key help on the left and the pending command
// with its caret at width-5-len(command).
func (m *Model) bottomLine() styledLine {
	left := m.styles.Hint.Render(m.frame.Hint) + hintGap + m.help.ShortHelpView(keys.ShortHelp())
	command := m.frame.Command
	right := m.caret.View()
	if command != "" {
		right = m.styles.Command.Render(command) + right
	}
	if m.width <= 0 {
		return styledLine{text: left + hintGap + right, raw: true}
	}
	col := m.width - commandMargin - ansi.StringWidth(command)
	if col < 0 {
		col = 0
	}
	if ansi.StringWidth(left) >= col {
		if col > 1 {
			left = ansi.Truncate(left, col-1, "")
		} else {
			left = ""
		}
	}
	pad := col - ansi.StringWidth(left)
	if pad < 0 {
		pad = 0
	}
	return styledLine{text: left + strings.Repeat(" ", pad) + right, raw: true}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = ansi.Truncate(text, width-1, "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:  text,
			style: line.style,
			raw:   line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
