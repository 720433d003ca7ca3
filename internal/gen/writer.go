package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file, creating its directory if needed.
// It reports whether the file content changed. A stale unformatted sidecar
// from a previous failed run is removed.
func WriteFile(file *GeneratedFile) (bool, error) {
	if file == nil || file.Path == "" {
		return false, errors.New("generated file has no path")
	}

	_ = os.Remove(DebugPath(file.Path))

	if existing, err := os.ReadFile(file.Path); err == nil && bytes.Equal(existing, file.Content) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
		return false, errors.Wrap(err, "creating output directory")
	}

	if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
		return false, errors.Wrapf(err, "writing file %s", file.Path)
	}

	return true, nil
}
