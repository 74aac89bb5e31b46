// Package visualization collects criterion reports across training steps
// and renders the loss curves with gonum/plot. The external training loop
// owns the iteration; this package only records and draws.
package visualization

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/visriv/betaVAE/losses"
	"github.com/visriv/betaVAE/pkg/errors"
)

// Point is one recorded value of one loss series.
type Point struct {
	Step  int
	Value float64
}

// LossHistory accumulates per-step criterion reports in append order.
type LossHistory struct {
	steps   []int
	reports []losses.Report
}

// NewLossHistory creates an empty history.
func NewLossHistory() *LossHistory {
	return &LossHistory{}
}

// Append records the report of one step. Reports carrying NaN or Inf are
// rejected, since a poisoned series breaks every later plot.
func (h *LossHistory) Append(step int, report losses.Report) error {
	values := []float64{report.DataFidelity, report.KLDivergence, report.BetaKLDivergence, report.Loss}
	if err := errors.CheckNumericalStability("loss_history", values, step); err != nil {
		return err
	}

	h.steps = append(h.steps, step)
	h.reports = append(h.reports, report)
	return nil
}

// Len returns the number of recorded steps.
func (h *LossHistory) Len() int {
	return len(h.steps)
}

// Last returns the most recently recorded report.
func (h *LossHistory) Last() (losses.Report, bool) {
	if len(h.reports) == 0 {
		return losses.Report{}, false
	}
	return h.reports[len(h.reports)-1], true
}

// Series returns the recorded values of one report key in append order.
// The key must be one of the canonical losses report keys.
func (h *LossHistory) Series(key string) ([]Point, error) {
	value, err := accessor(key)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(h.reports))
	for i, r := range h.reports {
		points[i] = Point{Step: h.steps[i], Value: value(r)}
	}
	return points, nil
}

// Save renders all four loss series as one line chart. The image format is
// inferred from the file extension (.png, .svg, .pdf).
func (h *LossHistory) Save(path string) error {
	if len(h.reports) == 0 {
		return errors.NewValueError("LossHistory.Save", "empty history")
	}

	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		losses.KeyLoss, h.xys(func(r losses.Report) float64 { return r.Loss }),
		losses.KeyDataFidelity, h.xys(func(r losses.Report) float64 { return r.DataFidelity }),
		losses.KeyKLDivergence, h.xys(func(r losses.Report) float64 { return r.KLDivergence }),
		losses.KeyBetaKLDivergence, h.xys(func(r losses.Report) float64 { return r.BetaKLDivergence }),
	)
	if err != nil {
		return errors.Wrap(err, "visualization: add loss series")
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrap(err, "visualization: save loss curves")
	}
	return nil
}

// xys projects one report field over the recorded steps.
func (h *LossHistory) xys(value func(losses.Report) float64) plotter.XYs {
	xys := make(plotter.XYs, len(h.reports))
	for i, r := range h.reports {
		xys[i].X = float64(h.steps[i])
		xys[i].Y = value(r)
	}
	return xys
}

func accessor(key string) (func(losses.Report) float64, error) {
	switch key {
	case losses.KeyDataFidelity:
		return func(r losses.Report) float64 { return r.DataFidelity }, nil
	case losses.KeyKLDivergence:
		return func(r losses.Report) float64 { return r.KLDivergence }, nil
	case losses.KeyBetaKLDivergence:
		return func(r losses.Report) float64 { return r.BetaKLDivergence }, nil
	case losses.KeyLoss:
		return func(r losses.Report) float64 { return r.Loss }, nil
	default:
		return nil, errors.NewValueError("LossHistory.Series", fmt.Sprintf("unknown report key '%s'", key))
	}
}
