package predict

import (
	"context"
	"testing"
)

func TestTimelineShape(t *testing.T) {
	pred := Prediction{DegradationTimeDays: 40, WeightLossPercentage: 50}
	points := Timeline(pred, 5)

	if len(points) != 14 { // 0..65 inclusive, step 5
		t.Fatalf("got %d points, want 14", len(points))
	}
	if points[0].Day != 0 || points[0].WeightLoss != 0 {
		t.Errorf("curve must start at zero: %+v", points[0])
	}
	// the observable point carries the predicted loss
	for _, pt := range points {
		if pt.Day == 40 && pt.WeightLoss != 50 {
			t.Errorf("loss at observable point: got %v, want 50", pt.WeightLoss)
		}
	}
	// monotonically non-decreasing
	for i := 1; i < len(points); i++ {
		if points[i].WeightLoss < points[i-1].WeightLoss {
			t.Errorf("curve decreased at %d: %v -> %v", points[i].Day, points[i-1].WeightLoss, points[i].WeightLoss)
		}
	}
}

func TestTimelineCappedAt95(t *testing.T) {
	pred := Prediction{DegradationTimeDays: 10, WeightLossPercentage: 90}
	for _, pt := range Timeline(pred, 5) {
		if pt.WeightLoss > 95 {
			t.Errorf("day %d exceeds cap: %v", pt.Day, pt.WeightLoss)
		}
	}
}

func TestSensitivitySweepsAllParameters(t *testing.T) {
	p := New(nil, nil)
	series := p.Sensitivity(context.Background(), baselineRequest(), DefaultSensitivityRanges())

	if len(series) != 3 {
		t.Fatalf("got %d series, want 3", len(series))
	}
	wantOrder := []string{"temperature", "humidity", "ph"}
	for i, s := range series {
		if s.Parameter != wantOrder[i] {
			t.Errorf("series %d: got %s, want %s", i, s.Parameter, wantOrder[i])
		}
		if len(s.Points) == 0 {
			t.Errorf("series %s has no points", s.Parameter)
		}
		if s.Index < 0 {
			t.Errorf("series %s: negative index %v", s.Parameter, s.Index)
		}
	}
}

func TestSensitivitySkipsUnknownParameters(t *testing.T) {
	p := New(nil, nil)
	series := p.Sensitivity(context.Background(), baselineRequest(), map[string][]float64{
		"humidity": {40, 60, 80},
		"salinity": {1, 2, 3},
	})
	if len(series) != 1 || series[0].Parameter != "humidity" {
		t.Fatalf("got %+v, want single humidity series", series)
	}
}

func TestCompareScenarios(t *testing.T) {
	scenarios := CompareScenarios()
	if len(scenarios) != 4 {
		t.Fatalf("got %d scenarios, want 4", len(scenarios))
	}
	preds := New(nil, nil).PredictBatch(context.Background(), scenarios)
	if len(preds) != 4 {
		t.Fatalf("got %d predictions, want 4", len(preds))
	}
}
