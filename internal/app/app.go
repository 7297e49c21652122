package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zmilan/sapling/internal/ast"
	"github.com/zmilan/sapling/internal/editor"
	"github.com/zmilan/sapling/internal/highlight"
	"github.com/zmilan/sapling/internal/jsontree"
	"github.com/zmilan/sapling/internal/logging/events"
	"github.com/zmilan/sapling/internal/theme"
	"github.com/zmilan/sapling/internal/tree"
	"github.com/zmilan/sapling/internal/ui"
)

const (
	defaultScriptRows = 24
	defaultScriptCols = 80
)

// Config describes user-provided application options.
type Config struct {
	Style    string
	Theme    string
	Seed     string
	SeedFile string
	Keys     string
	Width    int
	Height   int
	// Document is the already parsed starting document. When nil, Run
	// loads it with LoadSeed.
	Document *jsontree.Literal
}

type jsonEditor = editor.Editor[jsontree.Node]

// Run builds the document and edits it. With a key script the keys are
// replayed headlessly and the final document is written to out; otherwise
// the interactive Bubble Tea program takes over the terminal.
func Run(cfg Config, out io.Writer) error {
	style, err := ast.ParseFormatStyle(cfg.Style)
	if err != nil {
		return err
	}
	var lit jsontree.Literal
	if cfg.Document != nil {
		lit = *cfg.Document
	} else if lit, err = LoadSeed(cfg); err != nil {
		return err
	}
	nodes, root := jsontree.Build(lit)
	ed := editor.New(tree.New(nodes, root), jsontree.FromChar, style)
	if cfg.Keys != "" {
		return runScript(ed, cfg, out)
	}
	return runInteractive(ed, cfg)
}

// LoadSeed returns the starting document: the seed file, the inline seed or
// the built-in default, in that order. The file is only read, never written.
func LoadSeed(cfg Config) (jsontree.Literal, error) {
	switch {
	case strings.TrimSpace(cfg.SeedFile) != "":
		data, err := os.ReadFile(cfg.SeedFile)
		if err != nil {
			return jsontree.Literal{}, fmt.Errorf("read seed file: %w", err)
		}
		return jsontree.ParseLiteral(string(data))
	case strings.TrimSpace(cfg.Seed) != "":
		return jsontree.ParseLiteral(cfg.Seed)
	}
	return jsontree.DefaultLiteral(), nil
}

func runScript(ed *jsonEditor, cfg Config, out io.Writer) error {
	keys, err := editor.ParseKeys(cfg.Keys)
	if err != nil {
		return fmt.Errorf("parse key script: %w", err)
	}
	rows, cols := cfg.Height, cfg.Width
	if rows <= 0 {
		rows = defaultScriptRows
	}
	if cols <= 0 {
		cols = defaultScriptCols
	}
	term := editor.NewScriptTerminal(rows, cols, keys)
	if err := ed.Run(term); err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("script " + ed.State().String())
	text, err := ed.Tree().ToText(ed.Style())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

func runInteractive(ed *jsonEditor, cfg Config) error {
	styles := theme.Default()
	if strings.EqualFold(strings.TrimSpace(cfg.Theme), highlight.None) {
		styles = theme.Plain()
	}
	h, err := highlight.New(cfg.Theme, *styles.Selection)
	if err != nil {
		return err
	}
	model := ui.NewModel(ed, ui.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Styles:      styles,
		Highlighter: h,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		events.App.Stop("error")
		return m.Err()
	}
	events.App.Stop("quit")
	return nil
}
