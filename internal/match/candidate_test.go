package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var known = []string{"bool", "i8", "i16", "unit", "unit_struct", "unit_variant", "struct", "struct_variant"}

func TestRankCandidates_ExactAfterNormalization(t *testing.T) {
	ranked := RankCandidates("UnitStruct", known)

	require.NotEmpty(t, ranked)
	assert.Equal(t, "unit_struct", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
}

func TestRankCandidates_Typo(t *testing.T) {
	ranked := RankCandidates("boool", known)

	require.NotEmpty(t, ranked)
	assert.Equal(t, "bool", ranked[0].Name)
}

func TestRankCandidates_StableOnTies(t *testing.T) {
	a := RankCandidates("xyz", known)
	b := RankCandidates("xyz", known)

	assert.Equal(t, a, b)
}

func TestCandidateList_Above(t *testing.T) {
	ranked := RankCandidates("unit_strct", known)

	top := ranked.Above(DefaultThreshold, 3)
	require.NotEmpty(t, top)
	assert.Equal(t, "unit_struct", top.Names()[0])
	assert.LessOrEqual(t, len(top), 3)

	assert.Len(t, ranked.Above(0, 2), 2)
	assert.Empty(t, RankCandidates("qqqqqqqqqq", known).Above(DefaultThreshold, 3))
}
