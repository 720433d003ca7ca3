package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "stubs.go")
	file := &GeneratedFile{Path: out, Content: []byte("package p\n")}

	require.NoError(t, os.MkdirAll(filepath.Dir(out), dirPerm))
	require.NoError(t, os.WriteFile(DebugPath(out), []byte("broken"), filePerm))

	changed, err := WriteFile(file)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = WriteFile(file)
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, file.Content, got)

	_, err = os.Stat(DebugPath(out))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFile_NoPath(t *testing.T) {
	_, err := WriteFile(&GeneratedFile{})
	require.Error(t, err)

	_, err = WriteFile(nil)
	require.Error(t, err)
}

func TestDebugPath(t *testing.T) {
	assert.Equal(t, "dir/stubs.unformatted.go", DebugPath("dir/stubs.go"))
}
