package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zmilan/sapling/internal/logging"
)

// Canvas is a grid of character cells addressed by row and column.
type Canvas interface {
	Clear()
	Print(row, col int, text string)
	Size() (rows, cols int)
}

// Terminal is a canvas that also delivers key presses and shows what was
// drawn.
type Terminal interface {
	Canvas
	PollEvent() (Key, error)
	Present() error
}

// commandMargin is the gap kept between the command buffer and the right edge.
const commandMargin = 5

// Draw lays the current frame out on c: the tree from the top-left corner,
// the status line above the bottom row, and the hint with the command
// buffer on the bottom row.
func (e *Editor[N]) Draw(c Canvas) error {
	f, err := e.Frame()
	if err != nil {
		e.fail(err)
		return err
	}
	c.Clear()
	rows, cols := c.Size()
	for i, line := range strings.Split(f.Tree, "\n") {
		c.Print(i, 0, line)
	}
	if rows <= 0 {
		return nil
	}
	if f.Status != "" && rows > 1 {
		c.Print(rows-2, 0, f.Status)
	}
	c.Print(rows-1, 0, f.Hint)
	col := cols - commandMargin - runewidth.StringWidth(f.Command)
	if col < 0 {
		col = 0
	}
	c.Print(rows-1, col, f.Command)
	return nil
}

// Run draws, then reads and applies keys until the editor terminates or the
// terminal stops delivering them. io.EOF from PollEvent ends the loop
// cleanly; any other terminal error is returned as is.
func (e *Editor[N]) Run(t Terminal) error {
	if err := e.present(t); err != nil {
		return err
	}
	for e.state == Running {
		k, err := t.PollEvent()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			logging.Error(fmt.Errorf("poll event: %w", err))
			return err
		}
		if e.HandleKey(k) == Terminated {
			break
		}
		if err := e.present(t); err != nil {
			return err
		}
	}
	return e.err
}

func (e *Editor[N]) present(t Terminal) error {
	if err := e.Draw(t); err != nil {
		return err
	}
	if err := t.Present(); err != nil {
		logging.Error(fmt.Errorf("present: %w", err))
		return err
	}
	return nil
}
