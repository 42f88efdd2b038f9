// Package log defines standard attribute keys for prediction operations.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so training and prediction logs can be filtered the same
// way regardless of the backend.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "RegressionTree".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "ml.component"

	// PhaseKey is the lifecycle phase: "training" or "inference".
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
)

// Tree structure.
const (
	// DepthKey is the depth of the trained tree.
	DepthKey = "tree.depth"

	// LeavesKey is the number of leaves of the trained tree.
	LeavesKey = "tree.leaves"

	// MaxDepthKey and MinSamplesKey echo the stopping rules used for training.
	MaxDepthKey   = "tree.max_depth"
	MinSamplesKey = "tree.min_samples"
)

// Performance metrics.
const (
	DurationMsKey = "perf.duration_ms"
	R2ScoreKey    = "metrics.r2_score"
	RMSEKey       = "metrics.rmse"
)

// Prediction context.
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"

	// GPAKey is the predicted GPA.
	GPAKey = "preds.gpa"

	// ConfidenceKey is the heuristic confidence percentage.
	ConfidenceKey = "preds.confidence"

	// RiskKey is the derived risk tier.
	RiskKey = "preds.risk"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining  = "training"
	PhaseInference = "inference"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
)
