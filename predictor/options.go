package predictor

import (
	"github.com/YuminosukeSato/gpacast/pkg/log"
	"github.com/YuminosukeSato/gpacast/tree"
)

type config struct {
	samples    []tree.Sample
	hasSamples bool
	treeOpts   []tree.Option
	logger     log.Logger
}

// Option is a function that configures New.
type Option func(*config)

// WithSamples trains on samples instead of the built-in dataset. Every
// sample must carry one value per student.Feature.
func WithSamples(samples []tree.Sample) Option {
	return func(c *config) {
		c.samples = samples
		c.hasSamples = true
	}
}

// WithTreeOptions passes options through to tree.Fit.
func WithTreeOptions(opts ...tree.Option) Option {
	return func(c *config) {
		c.treeOpts = append(c.treeOpts, opts...)
	}
}

// WithLogger sets the logger for training and prediction records.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
