// Package betavae provides a beta-VAE loss library for Go, designed for
// evaluating variational autoencoders in backend services and research
// pipelines without a Python runtime.
//
// The library separates the loss arithmetic (losses), the model contracts
// (core/model), and a reference generative model (vae) so that the criterion
// can be reused with any encoder/decoder pair that satisfies the interfaces.
//
// # Features
//
// - Disentanglement Control: beta-weighted KL divergence (Higgins et al., 2016)
// - Bernoulli Data Fidelity: element-wise log-likelihood for [0, 1] data
// - Structured Loss Reports: data_fidelity, kl-divergence, beta_kl-divergence, loss
// - Robust Error Handling: typed errors with stack traces
// - Numerically Guarded: epsilon-stabilized logarithms, NaN/Inf detection
//
// # Installation
//
// Install betaVAE using go get:
//
//	go get github.com/visriv/betaVAE
//
// # Quick Start
//
// Here's a simple example of scoring a reconstruction batch:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "github.com/visriv/betaVAE/core/model"
//	    "github.com/visriv/betaVAE/vae"
//	)
//
//	func main() {
//	    // Create a beta-VAE for 28x28 grayscale inputs
//	    shape := vae.Shape{Channels: 1, Height: 28, Width: 28}
//	    m, err := vae.NewBetaVAE(shape, 10, model.Hyperparams{"beta": 4.0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Forward a batch and score it
//	    X := loadBatch() // *mat.Dense with one flattened image per row
//	    xHat, mean, std, err := m.Forward(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    report, err := m.Criterion(X, xHat, mean, std)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(report)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - losses: beta-VAE loss terms and the Report aggregate
//   - vae: reference VAE and BetaVAE models
//   - metrics: reconstruction quality metrics (MSE, RMSE, MAE, PSNR)
//   - preprocessing: pixel scaling utilities
//   - visualization: training loss curve recording and plotting
//   - core/model: core interfaces and base types
//
// # Loss Report
//
// Criterion returns a Report with four canonical terms. The loss follows the
// beta-VAE objective:
//
//	loss = -mean(data_fidelity) + beta * mean(kl-divergence)
//
// With beta = 1 the objective reduces to the standard VAE evidence lower
// bound. Larger beta values trade reconstruction quality for a more
// factorized latent representation.
//
// # Numerical Stability
//
// All logarithms are stabilized with a small epsilon so that saturated
// reconstructions and collapsed posteriors produce finite losses. Criterion
// results are checked for NaN and Inf before they are returned, so a
// diverging training run surfaces as a typed error instead of a silent NaN.
//
// # Contributing
//
// Contributions are welcome! Please see our GitHub repository:
// https://github.com/visriv/betaVAE
package betavae
