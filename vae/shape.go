package vae

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/pkg/errors"
)

// Shape describes the layout of a single input sample as channels, height
// and width. Batches flatten each sample row-major into one matrix row, so
// a batch of N samples is an N x Elements() matrix.
type Shape struct {
	Channels int
	Height   int
	Width    int
}

// Elements returns the number of scalar values in one sample.
func (s Shape) Elements() int {
	return s.Channels * s.Height * s.Width
}

// Dims returns the shape as a slice, for error reporting.
func (s Shape) Dims() []int {
	return []int{s.Channels, s.Height, s.Width}
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	if s.Channels < 1 {
		return errors.NewValidationError("shape.Channels", "must be positive", s.Channels)
	}
	if s.Height < 1 {
		return errors.NewValidationError("shape.Height", "must be positive", s.Height)
	}
	if s.Width < 1 {
		return errors.NewValidationError("shape.Width", "must be positive", s.Width)
	}
	return nil
}

// String returns the shape in (C, H, W) form.
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Channels, s.Height, s.Width)
}

// NewBatchMatrix builds the n x shape.Elements() batch matrix for n samples
// laid out row-major in values. The returned matrix takes ownership of the
// values slice.
func NewBatchMatrix(n int, shape Shape, values []float64) (*mat.Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}
	if len(values) != n*shape.Elements() {
		expected := append([]int{n}, shape.Dims()...)
		return nil, errors.NewInputShapeError("batch", expected, []int{len(values)})
	}
	return mat.NewDense(n, shape.Elements(), values), nil
}
