package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestExamples_Regenerate checks that the committed example stubs are exactly
// what the generator produces, then runs the example tests against them.
func TestExamples_Regenerate(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	examples := []struct {
		dir    string
		stub   string
		output string
	}{
		{"stubs", "stubs.yaml", "serializer_stubs.go"},
		{"keyonly", "stubs.toml", "key_serializer_stubs.go"},
	}

	for _, ex := range examples {
		t.Run(ex.dir, func(t *testing.T) {
			t.Parallel()

			exampleDir := filepath.Join(repoRoot, "examples", ex.dir)

			cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/stub-generator", "gen",
				"-f", filepath.Join(exampleDir, ex.stub),
				"--check", "--dry-run", "--log-level", "warn",
			)
			cmd.Dir = repoRoot
			cmd.Stderr = os.Stderr

			got, err := cmd.Output()
			if err != nil {
				t.Fatalf("gen failed: %v", err)
			}

			want, err := os.ReadFile(filepath.Join(exampleDir, ex.output))
			if err != nil {
				t.Fatalf("read committed output: %v", err)
			}

			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("%s is stale (-committed +generated):\n%s", ex.output, diff)
			}

			run := exec.CommandContext(t.Context(), "go", "test", "./examples/"+ex.dir, "-count=1")
			run.Dir = repoRoot

			b, err := run.CombinedOutput()
			if err != nil {
				t.Fatalf("example tests failed: %v\n%s", err, string(b))
			}
		})
	}
}
