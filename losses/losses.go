// Package losses implements the loss terms of the variational autoencoder
// objective: the Bernoulli data fidelity term, the Gaussian KL divergence
// term, and their aggregation into a per-batch report.
//
// All functions operate on row-major batches where each row is one sample.
// The fidelity and divergence functions return per-sample values; NewReport
// reduces them to batch means and applies the KL weighting coefficient.
package losses

// DefaultEpsilon is the additive constant placed inside every logarithm to
// keep the loss finite when reconstructions or variances reach zero.
const DefaultEpsilon = 1e-10

type config struct {
	epsilon float64
}

func defaultConfig() config {
	return config{epsilon: DefaultEpsilon}
}

// Option configures the loss computation.
type Option func(*config)

// WithEpsilon sets the additive constant used inside the logarithms.
// Non-positive values are ignored and the default is kept.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.epsilon = eps
		}
	}
}
