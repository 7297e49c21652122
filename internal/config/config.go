package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/zmilan/sapling/internal/app"
	"github.com/zmilan/sapling/internal/ast"
	"github.com/zmilan/sapling/internal/editor"
	"github.com/zmilan/sapling/internal/format/suggest"
	"github.com/zmilan/sapling/internal/format/table"
	"github.com/zmilan/sapling/internal/highlight"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Logging holds the log file location and whether tracing is on.
type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStyle    = "SAPLING_STYLE"
	envTheme    = "SAPLING_THEME"
	envSeed     = "SAPLING_SEED"
	envSeedFile = "SAPLING_SEED_FILE"
	envKeys     = "SAPLING_KEYS"
	envWidth    = "SAPLING_WIDTH"
	envHeight   = "SAPLING_HEIGHT"
	envTrace    = "SAPLING_TRACE"
	envLogFile  = "SAPLING_LOG_FILE"

	defaultStyle   = "pretty"
	defaultTheme   = "monokai"
	defaultLogFile = "sapling.log"
)

// ErrHelp is returned by LoadArgs when -h or --help was given.
var ErrHelp = pflag.ErrHelp

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	style, _ := fs.GetString("style")
	themeName, _ := fs.GetString("theme")
	seed, _ := fs.GetString("seed")
	seedFile, _ := fs.GetString("seed-file")
	keys, _ := fs.GetString("keys")
	width, _ := fs.GetInt("width")
	height, _ := fs.GetInt("height")
	trace, _ := fs.GetBool("trace")
	logFile, _ := fs.GetString("log-file")

	if width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", width)
	}
	if height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", height)
	}

	cfg := Config{
		App: app.Config{
			Style:    style,
			Theme:    themeName,
			Seed:     seed,
			SeedFile: seedFile,
			Keys:     keys,
			Width:    width,
			Height:   height,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"style":    style,
			"theme":    themeName,
			"seed":     seed,
			"seedFile": seedFile,
			"keys":     keys,
			"width":    strconv.Itoa(width),
			"height":   strconv.Itoa(height),
			"trace":    strconv.FormatBool(trace),
			"logFile":  logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func newFlagSet(env map[string]string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("sapling", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false

	fs.StringP("style", "s", envOrDefault(env, envStyle, defaultStyle), "format style: "+strings.Join(ast.FormatStyleNames(), ", "))
	fs.StringP("theme", "t", envOrDefault(env, envTheme, defaultTheme), "chroma color theme, or \"none\"")
	fs.String("seed", envOrDefault(env, envSeed, ""), "inline JSON or YAML document to start from")
	fs.String("seed-file", envOrDefault(env, envSeedFile, ""), "file holding the document to start from")
	fs.StringP("keys", "k", envOrDefault(env, envKeys, ""), "replay a key script headlessly and print the result")
	fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	fs.String("log-file", envOrDefault(env, envLogFile, defaultLogFile), "path to the log file")
	return fs
}

// Usage describes every flag with its environment variable and default.
func Usage() string {
	envs := map[string]string{
		"style":     envStyle,
		"theme":     envTheme,
		"seed":      envSeed,
		"seed-file": envSeedFile,
		"keys":      envKeys,
		"width":     envWidth,
		"height":    envHeight,
		"trace":     envTrace,
		"log-file":  envLogFile,
	}
	rows := [][]string{{"FLAG", "ENV", "DEFAULT", "DESCRIPTION"}}
	newFlagSet(nil).VisitAll(func(f *pflag.Flag) {
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		rows = append(rows, []string{name, envs[f.Name], f.DefValue, f.Usage})
	})
	var b strings.Builder
	b.WriteString("Usage: sapling [flags]\n\n")
	for _, line := range table.Format(rows, nil) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks names against the known styles and themes and makes sure
// the seed document and key script parse. The parsed seed is kept in
// cfg.App.Document so it is read only once.
func Validate(cfg *Config) error {
	if _, err := ast.ParseFormatStyle(cfg.App.Style); err != nil {
		return withSuggestion(err, cfg.App.Style, ast.FormatStyleNames())
	}
	if !highlight.HasTheme(cfg.App.Theme) {
		err := fmt.Errorf("unknown theme %q", cfg.App.Theme)
		return withSuggestion(err, cfg.App.Theme, append(highlight.Themes(), highlight.None))
	}
	if strings.TrimSpace(cfg.App.Seed) != "" && strings.TrimSpace(cfg.App.SeedFile) != "" {
		return errors.New("--seed and --seed-file cannot be combined")
	}
	doc, err := app.LoadSeed(cfg.App)
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	if _, err := editor.ParseKeys(cfg.App.Keys); err != nil {
		return fmt.Errorf("invalid key script: %w", err)
	}
	cfg.App.Document = &doc
	return nil
}

func withSuggestion(err error, input string, candidates []string) error {
	if hint := suggest.Suggest(input, candidates); hint != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, hint)
	}
	return err
}
