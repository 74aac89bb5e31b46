// Package log defines standard attribute keys for variational autoencoder operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in betaVAE. Using these standard keys enables better
// log analysis, monitoring, and debugging of encode/decode and loss evaluation
// workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Loss and Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "VAE", "BetaVAE", "PixelScaler"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	// This is useful for tracking multiple instances of the same model type.
	// Examples: "vae-001", "scaler-abc123", UUID strings
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "encode", "decode", "reparameterize", "criterion",
	// "fit", "transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "vae", "losses", "preprocessing", "metrics"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	// Examples: "training", "inference", "evaluation", "preprocessing"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the batch.
	// This is crucial for understanding the scale of data being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the batch.
	// For image batches this is channels*height*width after flattening.
	FeaturesKey = "data.features"

	// LatentDimKey indicates the dimensionality of the latent space.
	// Important for tracking encoder output shapes and KL term scale.
	LatentDimKey = "data.latent_dim"

	// ShapeKey records the per-sample shape as a structured value.
	// Examples: "[1 28 28]", "[3 64 64]"
	ShapeKey = "data.shape"

	// BatchSizeKey indicates the size of processing batches.
	// Relevant for streaming or mini-batch processing scenarios.
	BatchSizeKey = "data.batch_size"
)

// Loss and Performance Metrics
// These attributes capture loss terms, timing, and evaluation results.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	// This is essential for performance monitoring and optimization.
	DurationMsKey = "perf.duration_ms"

	// DurationSecondsKey records the execution time in seconds for longer operations.
	// Useful for evaluation runs over many batches.
	DurationSecondsKey = "perf.duration_seconds"

	// LossKey records the total loss value during evaluation.
	// Lower values typically indicate better reconstruction and regularization.
	LossKey = "metrics.loss"

	// DataFidelityKey records the data fidelity term of the loss.
	// This is a log-likelihood, so higher values mean closer reconstructions.
	DataFidelityKey = "metrics.data_fidelity"

	// KLDivergenceKey records the unweighted KL divergence term of the loss.
	// Values are non-negative up to floating point error.
	KLDivergenceKey = "metrics.kl_divergence"

	// BetaKLDivergenceKey records the beta-weighted KL divergence term.
	// This is beta times the value logged under KLDivergenceKey.
	BetaKLDivergenceKey = "metrics.beta_kl_divergence"

	// PSNRKey records peak signal-to-noise ratio for reconstruction quality.
	// Higher values indicate closer reconstructions, in decibels.
	PSNRKey = "metrics.psnr"

	// IterationKey records the current iteration number during iterative processes.
	// Useful for correlating loss values across evaluation loops.
	IterationKey = "training.iteration"

	// EpochKey records the current epoch number during training.
	// Standard in neural networks and iterative learning algorithms.
	EpochKey = "training.epoch"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "MISSING_HYPERPARAMETER"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "HyperparameterError", "DimensionError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check input data shape", "Provide a 'beta' hyperparameter"
	SuggestionKey = "error.suggestion"
)

// Hyperparameters and Configuration
// These attributes capture model configuration and hyperparameters.
const (
	// HyperParamsKey contains model hyperparameters as a structured object.
	// Useful for tracking model configuration and reproducibility.
	HyperParamsKey = "model.hyperparams"

	// BetaKey records the KL weighting coefficient of a beta-VAE.
	// beta == 1 recovers the standard VAE objective.
	BetaKey = "hyperparams.beta"

	// RandomSeedKey records the random seed for reproducibility.
	// Essential for debugging and ensuring reproducible sampling.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit            = "fit"
	OperationTransform      = "transform"
	OperationFitTransform   = "fit_transform"
	OperationEncode         = "encode"
	OperationDecode         = "decode"
	OperationReparameterize = "reparameterize"
	OperationCriterion      = "criterion"

	// Standard phases
	PhaseTraining      = "training"
	PhaseEvaluation    = "evaluation"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	// Standard error codes
	ErrorNotFitted             = "NOT_FITTED"
	ErrorDimensionMismatch     = "DIMENSION_MISMATCH"
	ErrorEmptyData             = "EMPTY_DATA"
	ErrorInvalidInput          = "INVALID_INPUT"
	ErrorMissingHyperparameter = "MISSING_HYPERPARAMETER"
	ErrorNumericalInstability  = "NUMERICAL_INSTABILITY"
)
