package losses

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/pkg/errors"
)

// Canonical report keys. Downstream tooling consumes reports by these
// names, so they are part of the public contract.
const (
	KeyDataFidelity     = "data_fidelity"
	KeyKLDivergence     = "kl-divergence"
	KeyBetaKLDivergence = "beta_kl-divergence"
	KeyLoss             = "loss"
)

// Report holds the batch-mean loss terms of one criterion evaluation.
//
// DataFidelity is the mean Bernoulli log-likelihood (higher is better).
// KLDivergence is the mean unweighted divergence from the prior.
// BetaKLDivergence is beta times KLDivergence, and Loss is the minimization
// objective -DataFidelity + BetaKLDivergence.
type Report struct {
	DataFidelity     float64
	KLDivergence     float64
	BetaKLDivergence float64
	Loss             float64
}

// NewReport reduces per-sample fidelity and KL vectors to batch means and
// combines them under the weighting coefficient beta.
func NewReport(fidelity, kl mat.Vector, beta float64) (Report, error) {
	if beta < 0 {
		return Report{}, errors.NewValidationError("beta", "must be non-negative", beta)
	}

	n := fidelity.Len()
	if n == 0 {
		return Report{}, errors.NewValueError("NewReport", "empty vector")
	}
	if kl.Len() != n {
		return Report{}, errors.NewDimensionError("NewReport", n, kl.Len(), 0)
	}

	var fidSum, klSum float64
	for i := 0; i < n; i++ {
		fidSum += fidelity.AtVec(i)
		klSum += kl.AtVec(i)
	}

	meanFid := fidSum / float64(n)
	meanKL := klSum / float64(n)

	return Report{
		DataFidelity:     meanFid,
		KLDivergence:     meanKL,
		BetaKLDivergence: beta * meanKL,
		Loss:             -meanFid + beta*meanKL,
	}, nil
}

// Map returns the report under its canonical keys.
func (r Report) Map() map[string]float64 {
	return map[string]float64{
		KeyDataFidelity:     r.DataFidelity,
		KeyKLDivergence:     r.KLDivergence,
		KeyBetaKLDivergence: r.BetaKLDivergence,
		KeyLoss:             r.Loss,
	}
}

// String returns a single-line summary of the report.
func (r Report) String() string {
	return fmt.Sprintf("Report(data_fidelity=%.6g, kl-divergence=%.6g, beta_kl-divergence=%.6g, loss=%.6g)",
		r.DataFidelity, r.KLDivergence, r.BetaKLDivergence, r.Loss)
}

// MarshalZerologObject はzerologのイベントに損失レポートを構造化情報として追加します。
func (r Report) MarshalZerologObject(e *zerolog.Event) {
	e.Float64(KeyDataFidelity, r.DataFidelity).
		Float64(KeyKLDivergence, r.KLDivergence).
		Float64(KeyBetaKLDivergence, r.BetaKLDivergence).
		Float64(KeyLoss, r.Loss)
}
