package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stub-generator/internal/tag"
)

const spansSrc = `package p

var _ ser.Serializer[int64] = (*S)(nil)

var _ ser.Serializer[struct{}] = *new(V)

func (*S) SerializeBool(_ bool) (int64, error) {
	const valueType = "bool"
	return 0, E
}

func (v V) SerializeSeq(_ *int) (ser.SerializeSeq[struct{}], error) {
	const valueType = "seq"
	return nil, E
}

func (S) helper() {}

func SerializeStr() {}
`

func TestSpans(t *testing.T) {
	spans, err := Spans("p.go", []byte(spansSrc))
	require.NoError(t, err)

	assert.Equal(t, []Span{
		{Serializer: "*S", Start: 3, End: 3},
		{Serializer: "V", Start: 5, End: 5},
		{Serializer: "*S", Tag: tag.Bool, Start: 7, End: 10},
		{Serializer: "V", Tag: tag.Seq, Start: 12, End: 15},
	}, spans)

	assert.True(t, spans[2].Contains(9))
	assert.False(t, spans[2].Contains(11))
}

func TestSpans_InvalidSource(t *testing.T) {
	_, err := Spans("p.go", []byte("package p\nfunc {"))
	require.Error(t, err)
}
