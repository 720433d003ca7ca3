package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"stub-generator/internal/diagnostic"
	"stub-generator/internal/gen"
	"stub-generator/internal/plan"
	"stub-generator/internal/spec"
)

const targetDir = "testdata/target"

func generate(t *testing.T, src string) *gen.GeneratedFile {
	t.Helper()

	f, err := spec.Parse([]byte(src), spec.FormatYAML)
	require.NoError(t, err)

	f.Dir = targetDir

	p, diags := plan.Resolve(f)
	require.False(t, diags.HasErrors(), diags.String())

	file, err := gen.NewGenerator(gen.GeneratorConfig{}).Generate(p)
	require.NoError(t, err)

	return file
}

func TestCheck_Clean(t *testing.T) {
	file := generate(t, `
package: target
output: zz_stubs.go
serializers:
  - receiver: Target
    ok: int64
    stubs:
      - {call: reject, tags: [unit, none]}
      - {error: ErrRejected, tags: [bool, seq, struct_variant]}
      - {return: 'int64(v), nil', tags: [i8, u32]}
`)

	diags, err := Check(t.Context(), targetDir, file)
	require.NoError(t, err)
	assert.False(t, diags.HasErrors(), diags.String())
}

func TestCheck_TypeMismatchAttributedToTag(t *testing.T) {
	file := generate(t, `
package: target
output: zz_stubs.go
serializers:
  - receiver: Target
    ok: int64
    stubs:
      - {call: reject, tags: [unit, seq]}
`)

	diags, err := Check(t.Context(), targetDir, file)
	require.NoError(t, err)
	require.Len(t, diags.Errors, 1, diags.String())

	e := diags.Errors[0]
	assert.Equal(t, diagnostic.CodeTypeMismatch, e.Code)
	assert.Equal(t, "seq", e.Tag)
	assert.Equal(t, "Target", e.Serializer)
	assert.Contains(t, e.Message, "SerializeSeq")
}

func TestCheck_UnresolvedIdentifier(t *testing.T) {
	file := generate(t, `
package: target
output: zz_stubs.go
serializers:
  - receiver: "*Target"
    stubs:
      - {error: ErrMissing, tags: [str]}
      - {error: ErrRejected, tags: [bytes]}
`)

	diags, err := Check(t.Context(), targetDir, file)
	require.NoError(t, err)
	require.Len(t, diags.Errors, 1, diags.String())
	assert.Equal(t, "str", diags.Errors[0].Tag)
	assert.Equal(t, "*Target", diags.Errors[0].Serializer)
	assert.Contains(t, diags.Errors[0].Message, "ErrMissing")
}

func TestCheck_IncompleteAssertion(t *testing.T) {
	file := generate(t, `
package: target
output: zz_stubs.go
serializers:
  - receiver: "*Target"
    assert: true
    stubs:
      - {error: ErrRejected, tags: [str]}
`)

	diags, err := Check(t.Context(), targetDir, file)
	require.NoError(t, err)
	require.Len(t, diags.Errors, 1, diags.String())
	assert.Equal(t, diagnostic.CodeUnattributed, diags.Errors[0].Code)
	assert.Equal(t, "*Target", diags.Errors[0].Serializer)
	assert.Empty(t, diags.Errors[0].Tag)
}

func TestCheck_NilFile(t *testing.T) {
	_, err := Check(t.Context(), targetDir, nil)
	require.Error(t, err)
}

func TestTypeErrors(t *testing.T) {
	echo := packages.Error{Pos: "/tmp/gocommand-1/1-zz_stubs.go:9:9", Msg: "undefined: ErrMissing", Kind: packages.ListError}
	typed := packages.Error{Pos: "/src/target/zz_stubs.go:9:9", Msg: "undefined: ErrMissing", Kind: packages.TypeError}

	assert.Equal(t, []packages.Error{typed}, typeErrors([]packages.Error{echo, typed}))
	assert.Equal(t, []packages.Error{echo}, typeErrors([]packages.Error{echo}))
	assert.Empty(t, typeErrors(nil))
}

func TestPosition(t *testing.T) {
	tests := []struct {
		pos  string
		file string
		line int
	}{
		{"/a/b.go:12:3", "/a/b.go", 12},
		{"/a/b.go:7", "/a/b.go", 7},
		{`C:\a\b.go:4:1`, `C:\a\b.go`, 4},
		{"", "", 0},
		{"-", "", 0},
		{"b.go:x", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			file, line := position(tt.pos)
			assert.Equal(t, tt.file, file)
			assert.Equal(t, tt.line, line)
		})
	}
}
