// Package model defines the interfaces shared by trained models.
//
// There is no fitted flag: a model value exists only once training has
// succeeded, so holding one means it can predict.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Predictor predicts a single target from one feature vector.
type Predictor interface {
	// Predict returns the prediction for x.
	Predict(x []float64) (float64, error)
}

// BatchPredictor predicts one target per row of X.
type BatchPredictor interface {
	PredictBatch(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines interfaces for regression models.
type Regressor interface {
	Predictor
	BatchPredictor
	Scorer
}
