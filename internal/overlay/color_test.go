package overlay

import (
	"testing"

	"github.com/danmichaelo/statusindicator/internal/model"
)

func TestPickForeground(t *testing.T) {
	const eps = 1e-9

	tests := []struct {
		sum      float64
		expected model.Foreground
	}{
		{0, model.ForegroundWhite},
		{1.2, model.ForegroundWhite}, // strict comparison: exactly 1.2 stays white
		{1.2 + eps, model.ForegroundBlack},
		{1.2 - eps, model.ForegroundWhite},
		{3, model.ForegroundBlack},
	}

	for _, test := range tests {
		result := PickForeground(test.sum)
		if result != test.expected {
			t.Errorf("PickForeground(%v) = %s, expected %s", test.sum, result, test.expected)
		}
	}
}
