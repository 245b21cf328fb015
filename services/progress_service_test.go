package services

import "testing"

func TestSkillProgressPercent(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{0, 0},
		{2.5, 25},
		{5, 50},
		{10, 100},
		{14, 100},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := SkillProgressPercent(tt.hours); got != tt.want {
			t.Fatalf("SkillProgressPercent(%v) = %v, want %v", tt.hours, got, tt.want)
		}
	}
}
