package losses

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/pkg/errors"
)

// DataFidelity computes the per-sample Bernoulli log-likelihood of the
// reconstruction XHat against the input X:
//
//	fidelity[i] = Σ_j x[i,j]*log(eps + xhat[i,j]) + (1-x[i,j])*log(eps + 1 - xhat[i,j])
//
// Values are log-likelihoods and, for inputs in [0, 1], non-positive up to
// the small perturbation introduced by eps; larger values indicate closer
// reconstructions. X and XHat must have identical dimensions and at least
// one row and column.
func DataFidelity(X, XHat mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, c := X.Dims()
	rHat, cHat := XHat.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewValueError("DataFidelity", "empty matrix")
	}
	if rHat != r {
		return nil, errors.NewDimensionError("DataFidelity", r, rHat, 0)
	}
	if cHat != c {
		return nil, errors.NewDimensionError("DataFidelity", c, cHat, 1)
	}

	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		var sum float64
		for j := 0; j < c; j++ {
			x := X.At(i, j)
			xhat := XHat.At(i, j)
			sum += x*math.Log(cfg.epsilon+xhat) + (1-x)*math.Log(cfg.epsilon+1-xhat)
		}
		out.SetVec(i, sum)
	}

	return out, nil
}
