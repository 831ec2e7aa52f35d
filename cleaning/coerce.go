package cleaning

import (
	"math"
	"strconv"
	"strings"
)

// CoerceReal parses a numeric cell, tolerating comma thousands
// separators ("1,234.50"). Unparseable input becomes 0.0 — there is no
// way to tell a failed parse from a legitimate zero downstream.
func CoerceReal(raw string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceInteger parses an integer cell, accepting float-shaped input
// by truncating toward zero. Unparseable input becomes 0.
func CoerceInteger(raw string) int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// CoerceText passes text cells through unchanged; missing cells are
// already "" by the time they get here.
func CoerceText(raw string) string {
	return raw
}
