package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"int64", "0"},
		{"float32", "0"},
		{"rune", "0"},
		{"string", `""`},
		{"bool", "false"},
		{"error", "nil"},
		{"any", "nil"},
		{"*Result", "nil"},
		{"[]byte", "nil"},
		{"map[string]int", "nil"},
		{"func() error", "nil"},
		{"interface{ M() }", "nil"},
		{"[4]byte", "[4]byte{}"},
		{"struct{}", "struct{}{}"},
		{"(int)", "0"},
		{"Result", "*new(Result)"},
		{"pkg.Value", "*new(pkg.Value)"},
		{"Box[int]", "*new(Box[int])"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.Equal(t, tt.want, ZeroValue(tt.typ))
		})
	}
}
