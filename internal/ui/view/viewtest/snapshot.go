package viewtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
)

// UpdateEnv rewrites golden files instead of comparing against them.
const UpdateEnv = "UPDATE_SNAPSHOTS"

// AssertSnapshot compares rendered output against the golden file at path,
// relative to the test's package directory.
func AssertSnapshot(t *testing.T, actual, goldenPath string) {
	t.Helper()

	abs := goldenPath
	if !filepath.IsAbs(goldenPath) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("get working directory: %v", err)
		}
		abs = filepath.Join(wd, goldenPath)
	}

	if os.Getenv(UpdateEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatalf("create snapshot dir: %v", err)
		}
		if err := os.WriteFile(abs, []byte(actual), 0o600); err != nil {
			t.Fatalf("write snapshot %s: %v", abs, err)
		}
	}

	expected, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("read snapshot %s: %v", abs, err)
	}
	if diff := cmp.Diff(string(expected), actual); diff != "" {
		t.Fatalf("snapshot %s mismatch (-want +got):\n%s", filepath.Base(abs), diff)
	}
}

// AssertLines snapshots styled view lines. Escape sequences and trailing
// padding are dropped so goldens do not depend on the terminal's color
// profile.
func AssertLines(t *testing.T, lines []string, goldenPath string) {
	t.Helper()
	AssertSnapshot(t, Plain(strings.Join(lines, "\n"))+"\n", goldenPath)
}

// Plain strips escape sequences and trailing whitespace from each line.
func Plain(rendered string) string {
	lines := strings.Split(ansi.Strip(rendered), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
