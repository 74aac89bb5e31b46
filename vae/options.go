package vae

// Option is a function that configures VAE
type Option func(*VAE)

// WithHiddenDim sets the width of the encoder and decoder hidden layers.
// Non-positive values keep the default.
func WithHiddenDim(dim int) Option {
	return func(v *VAE) {
		if dim > 0 {
			v.hiddenDim = dim
		}
	}
}

// WithEpsilon sets the numerical floor used inside the criterion logarithms.
// Non-positive values keep the default.
func WithEpsilon(eps float64) Option {
	return func(v *VAE) {
		if eps > 0 {
			v.epsilon = eps
		}
	}
}

// WithSeed sets the seed of the weight initialization and sampling sources.
func WithSeed(seed uint64) Option {
	return func(v *VAE) {
		v.seed = seed
	}
}
