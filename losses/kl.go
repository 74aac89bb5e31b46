package losses

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/pkg/errors"
)

// KLDivergence computes the per-sample KL divergence between the diagonal
// Gaussian posterior N(mean, std²) and the standard normal prior N(0, I):
//
//	kl[i] = 0.5 * Σ_k mean[i,k]² + std[i,k]² - log(eps + std[i,k]²) - 1
//
// std holds standard deviations, not variances. Values are non-negative up
// to the small perturbation introduced by eps, and exactly minimal when the
// posterior matches the prior. mean and std must have identical dimensions
// and at least one row and column.
func KLDivergence(mean, std mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, c := mean.Dims()
	rStd, cStd := std.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewValueError("KLDivergence", "empty matrix")
	}
	if rStd != r {
		return nil, errors.NewDimensionError("KLDivergence", r, rStd, 0)
	}
	if cStd != c {
		return nil, errors.NewDimensionError("KLDivergence", c, cStd, 1)
	}

	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		var sum float64
		for k := 0; k < c; k++ {
			mu := mean.At(i, k)
			sd := std.At(i, k)
			variance := sd * sd
			sum += mu*mu + variance - math.Log(cfg.epsilon+variance) - 1
		}
		out.SetVec(i, 0.5*sum)
	}

	return out, nil
}
