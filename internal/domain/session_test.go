package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"negative clamps to zero", -5, 0},
		{"negative fraction clamps to zero", -0.4, 0},
		{"zero stays zero", 0, 0},
		{"rounds up", 61.7, 62},
		{"rounds down", 61.4, 61},
		{"whole seconds unchanged", 1500, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampDuration(tt.input))
		})
	}
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeWork.Valid())
	assert.True(t, ModeShortBreak.Valid())
	assert.True(t, ModeLongBreak.Valid())
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("nap").Valid())
}
