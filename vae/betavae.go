package vae

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/core/model"
	"github.com/visriv/betaVAE/losses"
	"github.com/visriv/betaVAE/pkg/errors"
)

// BetaVAE is the disentangled variant of VAE from Higgins et al. (2016).
// It shares the full architecture with VAE and only reweights the KL term
// of the objective by a fixed non-negative beta. Beta = 1 recovers the
// plain VAE objective and beta = 0 drops the divergence term entirely.
type BetaVAE struct {
	*VAE

	beta float64
}

// NewBetaVAE creates a beta-weighted variational autoencoder. The
// hyperparameter map must carry a numeric, non-negative "beta" key; its
// absence is a construction error rather than a silent default, so a
// misconfigured model cannot score batches with an unintended weight.
func NewBetaVAE(shape Shape, latentDim int, params model.Hyperparams, opts ...Option) (*BetaVAE, error) {
	beta, ok := params.Float("beta")
	if !ok {
		if _, present := params["beta"]; !present {
			return nil, errors.NewHyperparameterError("BetaVAE", "beta", "required key is missing")
		}
		return nil, errors.NewHyperparameterError("BetaVAE", "beta",
			fmt.Sprintf("expected a number, got %T", params["beta"]))
	}
	if beta < 0 {
		return nil, errors.NewValidationError("beta", "must be non-negative", beta)
	}

	base, err := NewVAE(shape, latentDim, opts...)
	if err != nil {
		return nil, err
	}
	return &BetaVAE{VAE: base, beta: beta}, nil
}

// Beta returns the KL weighting coefficient. Beta is fixed at construction.
func (b *BetaVAE) Beta() float64 {
	return b.beta
}

// Criterion evaluates the beta-weighted variational objective
//
//	loss = -mean(data fidelity) + beta * mean(KL divergence)
//
// on one batch and reports each term separately.
func (b *BetaVAE) Criterion(X, xHat, mean, std mat.Matrix) (r losses.Report, err error) {
	defer errors.Recover(&err, "BetaVAE.Criterion")
	return evaluate(X, xHat, mean, std, b.beta, b.epsilon)
}

// GetParams returns the constructor parameters of the model, including beta.
func (b *BetaVAE) GetParams() map[string]interface{} {
	params := b.VAE.GetParams()
	params["beta"] = b.beta
	return params
}

// String returns a string representation of the model.
func (b *BetaVAE) String() string {
	if !b.IsFitted() {
		return fmt.Sprintf("BetaVAE(beta=%g, input_shape=%s, latent_dim=%d, hidden_dim=%d)",
			b.beta, b.inputShape, b.latentDim, b.hiddenDim)
	}
	return fmt.Sprintf("BetaVAE(beta=%g, input_shape=%s, latent_dim=%d, hidden_dim=%d, fitted=true)",
		b.beta, b.inputShape, b.latentDim, b.hiddenDim)
}
