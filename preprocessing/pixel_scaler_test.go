package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/core/model"
)

func TestPixelScaler_FitTransform(t *testing.T) {
	tests := []struct {
		name      string
		x         *mat.Dense
		want      []float64
		tolerance float64
		wantErr   bool
	}{
		{
			name: "byte range pixels",
			x:    mat.NewDense(2, 2, []float64{0, 255, 127.5, 51}),
			want: []float64{0, 1, 0.5, 0.2},
			// (val - 0) / 255
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name: "shifted range",
			x:    mat.NewDense(2, 2, []float64{10, 20, 15, 10}),
			// (val - 10) / 10
			want:      []float64{0, 1, 0.5, 0},
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name: "constant pixels keep scale one",
			x:    mat.NewDense(2, 2, []float64{3, 3, 3, 3}),
			// range is zero, so the scale falls back to 1
			want:      []float64{0, 0, 0, 0},
			tolerance: 1e-10,
			wantErr:   false,
		},
		{
			name:    "empty data",
			x:       &mat.Dense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaler := NewPixelScaler()
			got, err := scaler.FitTransform(tt.x)

			if (err != nil) != tt.wantErr {
				t.Errorf("FitTransform() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			r, c := got.Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					want := tt.want[i*c+j]
					if math.Abs(got.At(i, j)-want) > tt.tolerance {
						t.Errorf("FitTransform()[%d,%d] = %v, want %v", i, j, got.At(i, j), want)
					}
				}
			}
		})
	}
}

// Transform output always stays inside [0, 1] for data inside the fitted range.
func TestPixelScaler_TransformRange(t *testing.T) {
	x := mat.NewDense(3, 4, []float64{
		0, 17, 200, 255,
		33, 84, 121, 190,
		5, 250, 99, 140,
	})

	scaler := NewPixelScaler()
	got, err := scaler.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	r, c := got.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			val := got.At(i, j)
			if val < 0 || val > 1 {
				t.Errorf("FitTransform()[%d,%d] = %v, want value in [0, 1]", i, j, val)
			}
		}
	}
}

func TestPixelScaler_InverseTransform(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{0, 255, 80, 128, 34, 200})

	scaler := NewPixelScaler()
	scaled, err := scaler.FitTransform(x)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	restored, err := scaler.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	// Round trip restores the original pixel values.
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			restoredMat := restored.(*mat.Dense)
			if math.Abs(restoredMat.At(i, j)-x.At(i, j)) > 1e-10 {
				t.Errorf("round trip [%d,%d] = %v, want %v", i, j, restoredMat.At(i, j), x.At(i, j))
			}
		}
	}
}

func TestPixelScaler_NotFitted(t *testing.T) {
	scaler := NewPixelScaler()
	x := mat.NewDense(1, 2, []float64{0, 1})

	if _, err := scaler.Transform(x); err == nil {
		t.Error("Transform() expected not fitted error, got nil")
	}
	if _, err := scaler.InverseTransform(x); err == nil {
		t.Error("InverseTransform() expected not fitted error, got nil")
	}
	if scaler.IsFitted() {
		t.Error("IsFitted() = true before Fit()")
	}
}

func TestPixelScaler_DimensionMismatch(t *testing.T) {
	scaler := NewPixelScaler()
	if err := scaler.Fit(mat.NewDense(2, 4, []float64{0, 1, 2, 3, 4, 5, 6, 7})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if _, err := scaler.Transform(mat.NewDense(2, 3, nil)); err == nil {
		t.Error("Transform() expected dimension error, got nil")
	}
}

func TestPixelScaler_RejectsNaN(t *testing.T) {
	scaler := NewPixelScaler()
	x := mat.NewDense(2, 2, []float64{0, math.NaN(), 1, 2})

	if err := scaler.Fit(x); err == nil {
		t.Error("Fit() expected error for NaN input, got nil")
	}
}

// The scaler is consumable through the preprocessing interfaces alone.
func TestPixelScaler_TransformerInterface(t *testing.T) {
	var tr model.InverseTransformer = NewPixelScaler()

	X := mat.NewDense(2, 2, []float64{0, 255, 102, 51})
	scaled, err := tr.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	restored, err := tr.InverseTransform(scaled)
	if err != nil {
		t.Fatalf("InverseTransform() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(restored.At(i, j)-X.At(i, j)) > 1e-12 {
				t.Errorf("round trip at (%d,%d) = %v, want %v",
					i, j, restored.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestPixelScaler_String(t *testing.T) {
	scaler := NewPixelScaler()
	if got := scaler.String(); got != "PixelScaler()" {
		t.Errorf("String() = %q, want %q", got, "PixelScaler()")
	}

	if err := scaler.Fit(mat.NewDense(1, 4, []float64{0, 255, 80, 128})); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	want := "PixelScaler(data_min=0.0, data_max=255.0, n_features=4)"
	if got := scaler.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
