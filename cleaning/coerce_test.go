package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceReal(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"120.50", 120.50},
		{"1,234.50", 1234.50},
		{" 42 ", 42},
		{"-15.25", -15.25},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12.3.4", 0},
		{"NaN", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceReal(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCoerceInteger(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"4", 4},
		{"  12 ", 12},
		{"12.7", 12},
		{"-3.9", -3},
		{"1,200", 1200},
		{"", 0},
		{"four", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceInteger(tt.raw), "raw=%q", tt.raw)
	}
}

func TestCoerceText(t *testing.T) {
	assert.Equal(t, "Cash", CoerceText("Cash"))
	assert.Equal(t, "", CoerceText(""))
}
