package tree

import (
	"github.com/YuminosukeSato/gpacast/pkg/log"
)

const (
	// DefaultMaxDepth is the depth at which nodes stop splitting.
	DefaultMaxDepth = 10

	// DefaultMinSamples is the sample count at or below which a node
	// becomes a leaf.
	DefaultMinSamples = 2

	// FallbackPrediction is returned when a traversal reaches an internal
	// node whose child is missing.
	FallbackPrediction = 2.5
)

type config struct {
	maxDepth     int
	minSamples   int
	featureNames []string
	logger       log.Logger
}

func defaultConfig() config {
	return config{
		maxDepth:   DefaultMaxDepth,
		minSamples: DefaultMinSamples,
		logger:     log.Nop(),
	}
}

// Option is a function that configures Fit.
type Option func(*config)

// WithMaxDepth sets the maximum depth of the tree.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithMinSamples sets the sample count at or below which a node is not split.
func WithMinSamples(n int) Option {
	return func(c *config) {
		c.minSamples = n
	}
}

// WithFeatureNames sets names used by String and in log records.
func WithFeatureNames(names []string) Option {
	return func(c *config) {
		c.featureNames = append([]string(nil), names...)
	}
}

// WithLogger sets the logger used during training.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
