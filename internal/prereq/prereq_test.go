package prereq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtLeast(t *testing.T) {
	tests := []struct {
		got, want string
		expected  bool
	}{
		{"3.8", "3.8", true},
		{"3.8.0", "3.8", true},
		{"3.12.1", "3.8", true},
		{"3.7.9", "3.8", false},
		{"2.7.18", "3.8", false},
		{"4.0", "3.8", true},
		{"3", "3.8", false},
		{"3.8", "3.8.1", false},
		{"10.0", "9.9", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, atLeast(tt.got, tt.want), "atLeast(%q, %q)", tt.got, tt.want)
	}
}

func TestResultOk(t *testing.T) {
	assert.True(t, Result{Kind: OK}.Ok())
	assert.False(t, Result{Kind: InterpreterMissing}.Ok())
	assert.False(t, Result{Kind: InterpreterTooOld}.Ok())
	assert.False(t, Result{Kind: PackagingMissing}.Ok())
}
