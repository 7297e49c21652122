package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "sapling.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLines(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("tree.replace", map[string]interface{}{"ref": 3})
	Trace("command.resolve", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Event   string                 `json:"event"`
			Payload map[string]interface{} `json:"payload"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("decode %q: %v", scanner.Text(), err)
		}
		events = append(events, entry.Event)
	}
	if strings.Join(events, ",") != "tree.replace,command.resolve" {
		t.Fatalf("unexpected events %v", events)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)
	Trace("tree.replace", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, stat err=%v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	Error(errors.New("invalid reference: #9"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "invalid reference: #9") {
		t.Fatalf("expected error in log, got %q", data)
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", data)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
