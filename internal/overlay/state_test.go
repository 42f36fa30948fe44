package overlay

import (
	"testing"

	"github.com/danmichaelo/statusindicator/internal/model"
)

func config(timestep float64, unit model.TimeUnit) model.IndicatorConfig {
	return model.IndicatorConfig{Timestep: timestep, Unit: unit}
}

func TestDeriveState_MidTrajectory(t *testing.T) {
	// 101 frames at 0.001 ps, halfway through
	st := deriveState(50, 101, config(0.001, model.UnitPicoseconds))

	if st.ErrorMessage != "" {
		t.Fatalf("unexpected error message: %q", st.ErrorMessage)
	}
	if st.Percentage != 0.5 {
		t.Errorf("Percentage = %v, expected 0.5", st.Percentage)
	}
	if st.TimeLabel != "Time: 0.05 / 0.10 ps" {
		t.Errorf("TimeLabel = %q, expected %q", st.TimeLabel, "Time: 0.05 / 0.10 ps")
	}
}

func TestDeriveState_Errors(t *testing.T) {
	tests := []struct {
		name     string
		frame    int
		total    int
		timestep float64
		expected string
	}{
		{"no frames", 0, 0, 1.0, ErrNoFrames.Error()},
		{"single frame", 0, 1, 1.0, ErrSingleFrame.Error()},
		{"negative timestep", 10, 100, -1.0, ErrNonPositiveTimestep.Error()},
		{"zero timestep", 10, 100, 0, ErrNonPositiveTimestep.Error()},
	}

	for _, test := range tests {
		st := deriveState(test.frame, test.total, config(test.timestep, model.UnitPicoseconds))
		if st.ErrorMessage != test.expected {
			t.Errorf("%s: ErrorMessage = %q, expected %q", test.name, st.ErrorMessage, test.expected)
		}
		if st.TimeLabel != "" {
			t.Errorf("%s: TimeLabel = %q, expected empty", test.name, st.TimeLabel)
		}
	}
}

func TestDeriveState_ClampsOutOfRangeFrames(t *testing.T) {
	tests := []struct {
		frame    int
		expected float64
	}{
		{-5, 0},
		{0, 0},
		{100, 1},
		{250, 1},
	}

	for _, test := range tests {
		st := deriveState(test.frame, 101, config(1.0, model.UnitFemtoseconds))
		if st.Percentage != test.expected {
			t.Errorf("deriveState(frame=%d): Percentage = %v, expected %v",
				test.frame, st.Percentage, test.expected)
		}
	}
}

func TestDeriveState_PercentageRange(t *testing.T) {
	for total := 2; total <= 20; total++ {
		for frame := 0; frame < total; frame++ {
			st := deriveState(frame, total, config(2.5, model.UnitNanoseconds))
			if st.ErrorMessage != "" {
				t.Fatalf("deriveState(%d, %d): unexpected error %q", frame, total, st.ErrorMessage)
			}
			if st.Percentage < 0 || st.Percentage > 1 {
				t.Errorf("deriveState(%d, %d): Percentage = %v out of [0,1]", frame, total, st.Percentage)
			}
		}
	}
}
