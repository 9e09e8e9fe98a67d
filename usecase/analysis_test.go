package usecase

import (
	"testing"

	"github.com/SAI-KARTHIK999/SkinSey/model"
)

func TestDeriveScore(t *testing.T) {
	cases := []struct {
		name       string
		conditions []model.Condition
		want       int
	}{
		{"no conditions", nil, 100},
		{"single condition", []model.Condition{{Confidence: 40}}, 60},
		{"averaged", []model.Condition{{Confidence: 80}, {Confidence: 40}}, 40},
		{"clamped low", []model.Condition{{Confidence: 250}}, 0},
		{"negative confidence clamped high", []model.Condition{{Confidence: -50}}, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveScore(tc.conditions); got != tc.want {
				t.Errorf("deriveScore = %d, want %d", got, tc.want)
			}
		})
	}
}
