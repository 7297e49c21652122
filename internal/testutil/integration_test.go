package testutil

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestHeadlessScriptOutput(t *testing.T) {
	bin := BuildBinary(t)
	for _, tc := range []struct {
		name   string
		args   []string
		golden string
	}{
		{"delete first item", []string{"--keys", "<down><del>q"}, "delete_first.txt"},
		{"replace root compact", []string{"--style", "compact", "--keys", "rnq"}, "replace_root_compact.txt"},
		{"seeded document", []string{"--seed", `{"a": [1, 2]}`, "--keys", "<down><down><right>r7q"}, "seeded_replace.txt"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout bytes.Buffer
			cmd := exec.Command(bin, append(tc.args, "--log-file", filepath.Join(t.TempDir(), "sapling.log"))...)
			cmd.Stdout = &stdout
			if err := cmd.Run(); err != nil {
				t.Fatalf("sapling failed: %v", err)
			}
			AssertGolden(t, filepath.Join("headless", tc.golden), stdout.String())
		})
	}
}
