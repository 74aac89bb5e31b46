// Package model provides additional interfaces and types for generative models.
// This file complements the existing interfaces in estimator.go and transformer.go
package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/visriv/betaVAE/losses"
)

// GenerativeAutoencoder combines the encoder, sampler, and decoder capabilities
// of a variational autoencoder style model.
type GenerativeAutoencoder interface {
	Encoder
	Reparameterizer
	Decoder

	// Forward runs encode, reparameterize, and decode as a single pass and
	// returns the reconstruction together with the posterior parameters.
	Forward(X mat.Matrix) (XHat, mean, std mat.Matrix, err error)
}

// CriterionEvaluator is the interface for models that can evaluate their
// training objective on a batch.
type CriterionEvaluator interface {
	// Criterion computes the loss terms for a batch of inputs and reconstructions.
	Criterion(X, XHat, mean, std mat.Matrix) (losses.Report, error)
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
