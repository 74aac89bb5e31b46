package visualization

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/visriv/betaVAE/losses"
)

func sampleReport(loss float64) losses.Report {
	return losses.Report{
		DataFidelity:     -loss + 0.5,
		KLDivergence:     0.25,
		BetaKLDivergence: 0.5,
		Loss:             loss,
	}
}

func TestLossHistory_Append(t *testing.T) {
	h := NewLossHistory()

	for step, loss := range []float64{5.0, 4.0, 3.2} {
		if err := h.Append(step, sampleReport(loss)); err != nil {
			t.Fatalf("Append(%d) error = %v", step, err)
		}
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}

	last, ok := h.Last()
	if !ok {
		t.Fatal("Last() reported empty history")
	}
	if last.Loss != 3.2 {
		t.Errorf("Last().Loss = %v, want 3.2", last.Loss)
	}
}

func TestLossHistory_AppendRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		report losses.Report
	}{
		{
			name:   "NaN loss",
			report: losses.Report{Loss: math.NaN()},
		},
		{
			name:   "infinite divergence",
			report: losses.Report{KLDivergence: math.Inf(1)},
		},
		{
			name:   "negative infinite fidelity",
			report: losses.Report{DataFidelity: math.Inf(-1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLossHistory()
			if err := h.Append(0, tt.report); err == nil {
				t.Error("Append() expected error for non-finite report, got nil")
			}
			if h.Len() != 0 {
				t.Errorf("Len() = %d after rejected append, want 0", h.Len())
			}
		})
	}
}

func TestLossHistory_Series(t *testing.T) {
	h := NewLossHistory()
	for step, loss := range []float64{5.0, 4.0} {
		if err := h.Append(step*10, sampleReport(loss)); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	points, err := h.Series(losses.KeyLoss)
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Series() length = %d, want 2", len(points))
	}
	if points[0].Step != 0 || points[0].Value != 5.0 {
		t.Errorf("Series()[0] = %+v, want {Step:0 Value:5}", points[0])
	}
	if points[1].Step != 10 || points[1].Value != 4.0 {
		t.Errorf("Series()[1] = %+v, want {Step:10 Value:4}", points[1])
	}

	kl, err := h.Series(losses.KeyKLDivergence)
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if kl[0].Value != 0.25 {
		t.Errorf("Series(kl)[0].Value = %v, want 0.25", kl[0].Value)
	}

	if _, err := h.Series("unknown"); err == nil {
		t.Error("Series() expected error for unknown key, got nil")
	}
}

func TestLossHistory_Save(t *testing.T) {
	h := NewLossHistory()
	for step, loss := range []float64{5.0, 4.1, 3.3, 2.9, 2.6} {
		if err := h.Append(step, sampleReport(loss)); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "loss.png")
	if err := h.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("Save() produced an empty file")
	}
}

func TestLossHistory_SaveEmpty(t *testing.T) {
	h := NewLossHistory()
	path := filepath.Join(t.TempDir(), "loss.png")

	if err := h.Save(path); err == nil {
		t.Error("Save() expected error for empty history, got nil")
	}
}
