package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	yaml := `
version: "1"
package: example
output: stubs_gen.go
imports: [fmt, "errs github.com/cockroachdb/errors"]
serializers:
  - receiver: "*MySerializer"
    receiver_name: s
    ok: int64
    assert: true
    stubs:
      - error: ErrCannotSerialize
        tags: [bool, bytes, i8]
      - return: "0, fmt.Errorf(\"%s: %q\", valueType, v)"
        tags: char
      - body: |
          n := int64(v)
          return n, nil
        tags: [i64]
      - call: reject
        tags: str
`

	f, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "example", f.Package)
	assert.Equal(t, "stubs_gen.go", f.Output)
	assert.Equal(t, []string{"fmt", "errs github.com/cockroachdb/errors"}, f.Imports)
	assert.Equal(t, DefaultSerPath, f.SerPath)

	require.Len(t, f.Serializers, 1)
	s := f.Serializers[0]
	assert.Equal(t, "*MySerializer", s.Receiver)
	assert.Equal(t, "MySerializer", s.BaseType())
	assert.Equal(t, "s", s.ReceiverName)
	assert.Equal(t, "int64", s.Ok)
	assert.True(t, s.Assert)

	require.Len(t, s.Stubs, 4)

	// list of tags
	assert.Equal(t, TagList{"bool", "bytes", "i8"}, s.Stubs[0].Tags)
	assert.Equal(t, FormError, s.Stubs[0].Form())
	assert.Equal(t, "ErrCannotSerialize", s.Stubs[0].Template())

	// single tag
	assert.Equal(t, TagList{"char"}, s.Stubs[1].Tags)
	assert.Equal(t, FormReturn, s.Stubs[1].Form())

	assert.Equal(t, FormBody, s.Stubs[2].Form())
	assert.Contains(t, s.Stubs[2].Template(), "n := int64(v)")

	assert.Equal(t, FormCall, s.Stubs[3].Form())
	assert.Equal(t, "reject", s.Stubs[3].Template())
}

func TestParse_TOML(t *testing.T) {
	data := `
package = "example"

[[serializers]]
receiver = "MySerializer"

[[serializers.stubs]]
error = "ErrCannotSerialize"
tags = ["none", "unit"]

[[serializers.stubs]]
error = "ErrCannotSerialize"
tags = "seq"
`

	f, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "example", f.Package)
	assert.Equal(t, DefaultOutput, f.Output)
	require.Len(t, f.Serializers, 1)

	s := f.Serializers[0]
	assert.Equal(t, "struct{}", s.Ok)
	require.Len(t, s.Stubs, 2)
	assert.Equal(t, TagList{"none", "unit"}, s.Stubs[0].Tags)
	assert.Equal(t, TagList{"seq"}, s.Stubs[1].Tags)
}

func TestParse_TOMLRejectsNonStringTags(t *testing.T) {
	data := `
package = "example"

[[serializers]]
receiver = "S"

[[serializers.stubs]]
error = "E"
tags = [1, 2]
`

	_, err := Parse([]byte(data), FormatTOML)
	assert.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	yaml := `
package: p
serializers:
  - receiver: S
    stubs:
      - error: E
        tags: bool
`

	f, err := Parse([]byte(yaml), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, DefaultOutput, f.Output)
	assert.Equal(t, "struct{}", f.Serializers[0].Ok)
	assert.Empty(t, f.Serializers[0].Zero)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	yaml := `
package: p
serializers:
  - receiver: S
    stubs:
      - error: E
        tag: bool
`

	_, err := Parse([]byte(yaml), FormatYAML)
	assert.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("package: [unclosed"), FormatYAML)
	assert.Error(t, err)
}

func TestParse_TagsMustBeStrings(t *testing.T) {
	yaml := `
package: p
serializers:
  - receiver: S
    stubs:
      - error: E
        tags: {bool: true}
`

	_, err := Parse([]byte(yaml), FormatYAML)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stubs.yaml")

	require.NoError(t, os.WriteFile(path, []byte(`
package: p
output: out/gen.go
serializers:
  - receiver: S
    stubs:
      - error: E
        tags: bool
`), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, dir, f.Dir)
	assert.Equal(t, filepath.Join(dir, "out", "gen.go"), f.OutputPath())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("stubs.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("stubs.yml"))
	assert.Equal(t, FormatTOML, FormatOf("stubs.TOML"))
	assert.Equal(t, FormatYAML, FormatOf("stubs"))
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := &File{
		Package: "p",
		Serializers: []Serializer{{
			Receiver: "S",
			Stubs:    []Stub{{Error: "E", Tags: TagList{"bool", "i8"}}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, f.Serializers[0].Stubs, back.Serializers[0].Stubs)
}
