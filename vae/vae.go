// Package vae implements a dense variational autoencoder and its
// disentangled beta-weighted variant.
//
// A VAE maps flattened input samples through a Gaussian encoder to the mean
// and standard deviation of the approximate posterior, draws latent points
// with the reparameterization trick, and reconstructs inputs through a
// Bernoulli decoder. BetaVAE shares the whole architecture and changes only
// how the loss terms are combined: the KL divergence is weighted by a fixed
// non-negative beta, following Higgins et al. (2016).
//
// Loss evaluation is exposed as Criterion and returns a losses.Report with
// the data fidelity term, the unweighted and weighted KL divergence, and
// the combined objective.
package vae

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/visriv/betaVAE/core/model"
	"github.com/visriv/betaVAE/losses"
	"github.com/visriv/betaVAE/pkg/errors"
)

const (
	// DefaultHiddenDim is the width of the encoder and decoder hidden layers.
	DefaultHiddenDim = 400
	// DefaultSeed seeds weight initialization and latent sampling.
	DefaultSeed uint64 = 42
)

// VAE is a dense variational autoencoder with a Gaussian encoder and a
// Bernoulli decoder. The encoder applies one tanh hidden layer followed by
// a linear mean head and a softplus standard deviation head, so the
// standard deviation is positive by construction. The decoder applies one
// tanh hidden layer followed by a sigmoid output, so reconstructions stay
// in (0, 1).
//
// NewVAE initializes the weights and marks the model fitted, so every
// constructed model is immediately usable. The zero value is not usable and
// reports NotFittedError.
type VAE struct {
	model.BaseEstimator

	inputShape Shape
	hiddenDim  int
	latentDim  int
	epsilon    float64
	seed       uint64

	// encoder weights
	encW  *mat.Dense
	encB  *mat.VecDense
	meanW *mat.Dense
	meanB *mat.VecDense
	stdW  *mat.Dense
	stdB  *mat.VecDense

	// decoder weights
	decW *mat.Dense
	decB *mat.VecDense
	outW *mat.Dense
	outB *mat.VecDense

	noise distuv.Normal
}

// NewVAE creates a variational autoencoder for inputs of the given shape
// with a latentDim-dimensional bottleneck.
func NewVAE(shape Shape, latentDim int, opts ...Option) (*VAE, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if latentDim < 1 {
		return nil, errors.NewValidationError("latentDim", "must be positive", latentDim)
	}

	v := &VAE{
		inputShape: shape,
		hiddenDim:  DefaultHiddenDim,
		latentDim:  latentDim,
		epsilon:    losses.DefaultEpsilon,
		seed:       DefaultSeed,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.initWeights()
	v.noise = distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(v.seed, v.seed)}
	v.SetFitted()
	return v, nil
}

// InputShape returns the per-sample input shape.
func (v *VAE) InputShape() Shape {
	return v.inputShape
}

// LatentDim returns the dimension of the latent bottleneck.
func (v *VAE) LatentDim() int {
	return v.latentDim
}

// HiddenDim returns the width of the hidden layers.
func (v *VAE) HiddenDim() int {
	return v.hiddenDim
}

// Encode maps a batch X of shape (n, inputDim) to the mean and standard
// deviation of the approximate posterior, both of shape (n, latentDim).
func (v *VAE) Encode(X mat.Matrix) (meanOut, stdOut mat.Matrix, err error) {
	defer errors.Recover(&err, "VAE.Encode")

	if !v.IsFitted() {
		return nil, nil, errors.NewNotFittedError("VAE", "Encode")
	}
	if err := v.checkBatch("encode", X, v.inputShape.Elements()); err != nil {
		return nil, nil, err
	}

	h := affine(X, v.encW, v.encB)
	tanhInPlace(h)

	mean := affine(h, v.meanW, v.meanB)
	std := affine(h, v.stdW, v.stdB)
	softplusInPlace(std)
	return mean, std, nil
}

// Reparameterize draws one latent point per sample as z = mean + std * eps
// with eps sampled i.i.d. from N(0, 1).
func (v *VAE) Reparameterize(mean, std mat.Matrix) (mat.Matrix, error) {
	if !v.IsFitted() {
		return nil, errors.NewNotFittedError("VAE", "Reparameterize")
	}

	n, d := mean.Dims()
	if n == 0 || d == 0 {
		return nil, errors.NewModelError("Reparameterize", "empty data", errors.ErrEmptyData)
	}
	sn, sd := std.Dims()
	if sn != n {
		return nil, errors.NewDimensionError("Reparameterize", n, sn, 0)
	}
	if sd != d {
		return nil, errors.NewDimensionError("Reparameterize", d, sd, 1)
	}

	Z := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			Z.Set(i, j, mean.At(i, j)+std.At(i, j)*v.noise.Rand())
		}
	}
	return Z, nil
}

// Decode maps a batch Z of shape (n, latentDim) back to reconstructions of
// shape (n, inputDim) with values in (0, 1).
func (v *VAE) Decode(Z mat.Matrix) (out mat.Matrix, err error) {
	defer errors.Recover(&err, "VAE.Decode")

	if !v.IsFitted() {
		return nil, errors.NewNotFittedError("VAE", "Decode")
	}
	if err := v.checkBatch("decode", Z, v.latentDim); err != nil {
		return nil, err
	}

	h := affine(Z, v.decW, v.decB)
	tanhInPlace(h)

	xHat := affine(h, v.outW, v.outB)
	sigmoidInPlace(xHat)
	return xHat, nil
}

// Forward runs Encode, Reparameterize and Decode in sequence and returns
// the reconstruction together with the posterior parameters.
func (v *VAE) Forward(X mat.Matrix) (xHat, meanOut, stdOut mat.Matrix, err error) {
	defer errors.Recover(&err, "VAE.Forward")

	mean, std, err := v.Encode(X)
	if err != nil {
		return nil, nil, nil, err
	}
	z, err := v.Reparameterize(mean, std)
	if err != nil {
		return nil, nil, nil, err
	}
	xHat, err = v.Decode(z)
	if err != nil {
		return nil, nil, nil, err
	}
	return xHat, mean, std, nil
}

// Criterion evaluates the unweighted variational objective on one batch.
// It is equivalent to the beta-weighted objective with beta = 1.
func (v *VAE) Criterion(X, xHat, mean, std mat.Matrix) (r losses.Report, err error) {
	defer errors.Recover(&err, "VAE.Criterion")
	return evaluate(X, xHat, mean, std, 1.0, v.epsilon)
}

// GetParams returns the constructor parameters of the model.
func (v *VAE) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"input_shape": v.inputShape,
		"latent_dim":  v.latentDim,
		"hidden_dim":  v.hiddenDim,
		"epsilon":     v.epsilon,
		"seed":        v.seed,
	}
}

// String returns a string representation of the model.
func (v *VAE) String() string {
	if !v.IsFitted() {
		return fmt.Sprintf("VAE(input_shape=%s, latent_dim=%d, hidden_dim=%d)",
			v.inputShape, v.latentDim, v.hiddenDim)
	}
	return fmt.Sprintf("VAE(input_shape=%s, latent_dim=%d, hidden_dim=%d, fitted=true)",
		v.inputShape, v.latentDim, v.hiddenDim)
}

// checkBatch validates the batch layout expected by the given phase.
func (v *VAE) checkBatch(phase string, X mat.Matrix, features int) error {
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return errors.NewModelError(phase, "empty data", errors.ErrEmptyData)
	}
	if d != features {
		return errors.NewInputShapeError(phase, []int{n, features}, []int{n, d})
	}
	return nil
}

// evaluate computes the loss terms shared by VAE and BetaVAE and rejects
// non-finite results before they reach the caller.
func evaluate(X, xHat, mean, std mat.Matrix, beta, epsilon float64) (losses.Report, error) {
	fidelity, err := losses.DataFidelity(X, xHat, losses.WithEpsilon(epsilon))
	if err != nil {
		return losses.Report{}, err
	}
	kl, err := losses.KLDivergence(mean, std, losses.WithEpsilon(epsilon))
	if err != nil {
		return losses.Report{}, err
	}

	report, err := losses.NewReport(fidelity, kl, beta)
	if err != nil {
		return losses.Report{}, err
	}
	if err := errors.CheckNumericalStability("criterion",
		[]float64{report.DataFidelity, report.KLDivergence, report.Loss}, 0); err != nil {
		return losses.Report{}, err
	}
	return report, nil
}

// initWeights applies Xavier/Glorot initialization to every layer and
// zeroes the biases.
func (v *VAE) initWeights() {
	src := rand.NewPCG(v.seed, v.seed)
	in := v.inputShape.Elements()

	v.encW = xavier(src, in, v.hiddenDim)
	v.encB = mat.NewVecDense(v.hiddenDim, nil)
	v.meanW = xavier(src, v.hiddenDim, v.latentDim)
	v.meanB = mat.NewVecDense(v.latentDim, nil)
	v.stdW = xavier(src, v.hiddenDim, v.latentDim)
	v.stdB = mat.NewVecDense(v.latentDim, nil)

	v.decW = xavier(src, v.latentDim, v.hiddenDim)
	v.decB = mat.NewVecDense(v.hiddenDim, nil)
	v.outW = xavier(src, v.hiddenDim, in)
	v.outB = mat.NewVecDense(in, nil)
}

// xavier draws a fanIn x fanOut weight matrix from U(-limit, limit) with
// limit = sqrt(6 / (fanIn + fanOut)).
func xavier(src rand.Source, fanIn, fanOut int) *mat.Dense {
	limit := math.Sqrt(6.0 / float64(fanIn+fanOut))
	u := distuv.Uniform{Min: -limit, Max: limit, Src: src}
	data := make([]float64, fanIn*fanOut)
	for i := range data {
		data[i] = u.Rand()
	}
	return mat.NewDense(fanIn, fanOut, data)
}

// affine computes X*W with the bias broadcast across rows.
func affine(X mat.Matrix, W *mat.Dense, b *mat.VecDense) *mat.Dense {
	n, _ := X.Dims()
	_, out := W.Dims()
	Y := mat.NewDense(n, out, nil)
	Y.Mul(X, W)
	for i := 0; i < n; i++ {
		for j := 0; j < out; j++ {
			Y.Set(i, j, Y.At(i, j)+b.AtVec(j))
		}
	}
	return Y
}

func tanhInPlace(M *mat.Dense) {
	M.Apply(func(_, _ int, x float64) float64 { return math.Tanh(x) }, M)
}

// softplusInPlace applies log(1 + exp(x)) with overflow protection.
func softplusInPlace(M *mat.Dense) {
	M.Apply(func(_, _ int, x float64) float64 { return math.Log1p(errors.StabilizeExp(x)) }, M)
}

// sigmoidInPlace applies 1 / (1 + exp(-x)) with overflow protection.
func sigmoidInPlace(M *mat.Dense) {
	M.Apply(func(_, _ int, x float64) float64 { return 1 / (1 + errors.StabilizeExp(-x)) }, M)
}
