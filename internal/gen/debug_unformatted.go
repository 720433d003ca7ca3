package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// DebugPath returns the sidecar path used for unformattable output.
func DebugPath(output string) string {
	return strings.TrimSuffix(output, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and never makes generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(DebugPath(filepath.Join(outDir, filename)), content, filePerm)
}
