package model

import "testing"

func TestForeground_Color(t *testing.T) {
	black := ForegroundBlack.Color()
	if black.Sum() != 0 {
		t.Errorf("ForegroundBlack.Color().Sum() = %v, expected 0", black.Sum())
	}

	white := ForegroundWhite.Color()
	if white.Sum() != 3 {
		t.Errorf("ForegroundWhite.Color().Sum() = %v, expected 3", white.Sum())
	}
}

func TestRenderState_Renderable(t *testing.T) {
	tests := []struct {
		errorMessage string
		expected     bool
	}{
		{"", true},
		{"trajectory has no frames", false},
	}

	for _, test := range tests {
		rs := RenderState{ErrorMessage: test.errorMessage}
		if rs.Renderable() != test.expected {
			t.Errorf("RenderState{ErrorMessage: %q}.Renderable() = %v, expected %v",
				test.errorMessage, rs.Renderable(), test.expected)
		}
	}
}
