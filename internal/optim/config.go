package optim

import (
	"github.com/rs/zerolog"

	"github.com/dnet-ml/dnet/internal/autodiff"
	"github.com/dnet-ml/dnet/internal/data"
	"github.com/dnet-ml/dnet/internal/nn"
)

// Config holds the construction parameters common to all algorithms.
type Config struct {
	// Layers is the network topology, read-only after construction.
	Layers []nn.FC

	// Loss is the training objective; the gradient provider differentiates
	// the composition of the forward pass with this loss.
	Loss nn.Loss

	// Accuracy is the reporting metric evaluated over the full dataset once
	// per epoch. It has no differentiability requirement.
	Accuracy nn.Metric

	// Epochs is the number of full passes over the dataset. Must be positive.
	Epochs int

	// LR is the learning rate. Must be positive.
	LR float64

	// BatchSize is the mini-batch width in examples (default: 32).
	BatchSize int

	// Beta is the Momentum smoothing factor in [0, 1). Zero selects the
	// default of 0.9. Ignored by SGD.
	Beta float64

	// Seed feeds weight initialization. The zero seed is itself a fixed
	// seed: two runs with equal Seed, topology, and input width start from
	// bit-identical parameters.
	Seed uint64

	// Grad overrides the gradient provider. When nil, an analytic
	// backpropagation provider is compiled from Layers and Loss.
	Grad autodiff.Provider

	// Logger receives one event per completed epoch. Nil disables logging.
	Logger *zerolog.Logger
}

// ConfigError reports an invalid hyperparameter. It is raised at
// construction, before any training work begins.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "optim: invalid " + e.Field + ": " + e.Reason
}

// validate applies defaults and rejects invalid hyperparameters.
func (cfg *Config) validate() error {
	if len(cfg.Layers) == 0 {
		return &ConfigError{Field: "Layers", Reason: "at least one layer is required"}
	}
	if cfg.Loss == nil {
		return &ConfigError{Field: "Loss", Reason: "a loss function is required"}
	}
	if cfg.Accuracy == nil {
		return &ConfigError{Field: "Accuracy", Reason: "an accuracy metric is required"}
	}
	if cfg.Epochs <= 0 {
		return &ConfigError{Field: "Epochs", Reason: "must be positive"}
	}
	if cfg.LR <= 0 {
		return &ConfigError{Field: "LR", Reason: "must be positive"}
	}
	if cfg.BatchSize < 0 {
		return &ConfigError{Field: "BatchSize", Reason: "must be positive"}
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 32
	}
	if cfg.Beta < 0 || cfg.Beta >= 1 {
		return &ConfigError{Field: "Beta", Reason: "must be in [0, 1)"}
	}
	if cfg.Beta == 0 {
		cfg.Beta = 0.9
	}
	return nil
}

// newCore validates cfg and builds the shared evaluation core.
func newCore(cfg Config) (*core, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	grad := cfg.Grad
	if grad == nil {
		grad = autodiff.NewBackprop(cfg.Layers, cfg.Loss)
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &core{
		layers:   cfg.Layers,
		loss:     cfg.Loss,
		metric:   cfg.Accuracy,
		epochs:   cfg.Epochs,
		lr:       cfg.LR,
		beta:     cfg.Beta,
		seed:     cfg.Seed,
		iterator: data.NewBatchIterator(cfg.BatchSize),
		grad:     grad,
		logger:   logger,
	}, nil
}
