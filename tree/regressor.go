// Package tree implements a greedy CART-style regression tree.
//
// Fit grows a binary tree by recursively choosing the single-feature split
// with the largest reduction in population variance of the targets. Predict
// walks the tree and returns the mean target of the reached leaf.
package tree

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gpacast/core/model"
	"github.com/YuminosukeSato/gpacast/core/parallel"
	"github.com/YuminosukeSato/gpacast/metrics"
	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/pkg/log"
)

var _ model.Regressor = (*Regressor)(nil)

// Sample is one labelled training row.
type Sample struct {
	Features []float64
	Target   float64
}

// Regressor is a trained regression tree. It is never modified after Fit
// returns and is safe for concurrent use.
type Regressor struct {
	root         Node
	nFeatures    int
	nSamples     int
	maxDepth     int
	minSamples   int
	featureNames []string
	importances  []float64
}

// 並列予測に切り替える行数の閾値
const parallelThreshold = 256

// Fit は訓練データから回帰木を構築する
//
// パラメータ:
//   - samples: 訓練データ（全ての行で特徴量の数が同じであること）
//   - opts: WithMaxDepth, WithMinSamples など
//
// 戻り値:
//   - *Regressor: 学習済みモデル
//   - error: 空データ、次元不一致、非有限値、構築中のパニック
//
// 使用例:
//
//	reg, err := tree.Fit(samples, tree.WithMaxDepth(10))
//	gpa, err := reg.Predict(features)
func Fit(samples []Sample, opts ...Option) (reg *Regressor, err error) {
	defer errors.Recover(&err, "tree.Fit")

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxDepth < 0 {
		return nil, errors.NewValidationError("maxDepth", "must not be negative", cfg.maxDepth)
	}
	if cfg.minSamples < 1 {
		return nil, errors.NewValidationError("minSamples", "must be at least 1", cfg.minSamples)
	}

	if len(samples) == 0 {
		return nil, errors.NewModelError("tree.Fit", "empty data", errors.ErrEmptyData)
	}
	nFeatures := len(samples[0].Features)
	if nFeatures == 0 {
		return nil, errors.NewModelError("tree.Fit", "samples have no features", errors.ErrEmptyData)
	}
	if cfg.featureNames != nil && len(cfg.featureNames) != nFeatures {
		return nil, errors.NewDimensionError("tree.Fit: feature names", nFeatures, len(cfg.featureNames), 1)
	}

	x := make([][]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		if len(s.Features) != nFeatures {
			return nil, errors.NewDimensionError("tree.Fit", nFeatures, len(s.Features), 1)
		}
		if err := errors.CheckNumericalStability("features", s.Features, i); err != nil {
			return nil, err
		}
		if err := errors.CheckScalar("target", s.Target, i); err != nil {
			return nil, err
		}
		x[i] = append([]float64(nil), s.Features...)
		y[i] = s.Target
	}

	logger := cfg.logger.With(log.ModelNameKey, "RegressionTree", log.OperationKey, log.OperationFit)
	start := time.Now()

	b := &builder{
		x:          x,
		y:          y,
		nFeatures:  nFeatures,
		maxDepth:   cfg.maxDepth,
		minSamples: cfg.minSamples,
		importance: make([]float64, nFeatures),
	}
	rows := make([]int, len(samples))
	for i := range rows {
		rows[i] = i
	}
	root := b.build(rows, 0)

	if total := floats.Sum(b.importance); total > 0 {
		floats.Scale(1/total, b.importance)
	}

	reg = &Regressor{
		root:         root,
		nFeatures:    nFeatures,
		nSamples:     len(samples),
		maxDepth:     cfg.maxDepth,
		minSamples:   cfg.minSamples,
		featureNames: cfg.featureNames,
		importances:  b.importance,
	}

	logger.Debug("Regression tree grown",
		log.SamplesKey, reg.nSamples,
		log.FeaturesKey, nFeatures,
		log.DepthKey, reg.Depth(),
		log.LeavesKey, reg.NLeaves(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return reg, nil
}

// FromRoot wraps a hand-built tree. It is meant for inspection and tests;
// the tree is used as given, including missing children.
func FromRoot(root Node, nFeatures int) *Regressor {
	return &Regressor{
		root:       root,
		nFeatures:  nFeatures,
		nSamples:   sampleCount(root),
		maxDepth:   DefaultMaxDepth,
		minSamples: DefaultMinSamples,
	}
}

func sampleCount(n Node) int {
	if n == nil {
		return 0
	}
	return n.Samples()
}

// Predict は1件の特徴量ベクトルに対する予測値を返す
func (r *Regressor) Predict(x []float64) (float64, error) {
	if r == nil || r.root == nil {
		return 0, errors.NewNotFittedError("RegressionTree", "Predict")
	}
	if len(x) != r.nFeatures {
		return 0, errors.NewDimensionError("RegressionTree.Predict", r.nFeatures, len(x), 1)
	}
	return traverse(r.root, x), nil
}

// traverse walks from n to a leaf. A missing child (including a typed nil)
// or a split on a feature outside x yields FallbackPrediction.
func traverse(n Node, x []float64) float64 {
	for {
		switch node := n.(type) {
		case *Leaf:
			if node == nil {
				return FallbackPrediction
			}
			return node.Prediction
		case *Internal:
			if node == nil || node.Feature < 0 || node.Feature >= len(x) {
				return FallbackPrediction
			}
			if x[node.Feature] <= node.Threshold {
				n = node.Left
			} else {
				n = node.Right
			}
		default:
			return FallbackPrediction
		}
	}
}

// PredictBatch は行列の各行に対する予測値を返す
func (r *Regressor) PredictBatch(X mat.Matrix) (*mat.VecDense, error) {
	if r == nil || r.root == nil {
		return nil, errors.NewNotFittedError("RegressionTree", "PredictBatch")
	}
	rows, cols := X.Dims()
	if rows == 0 {
		return nil, errors.NewModelError("RegressionTree.PredictBatch", "empty data", errors.ErrEmptyData)
	}
	if cols != r.nFeatures {
		return nil, errors.NewDimensionError("RegressionTree.PredictBatch", r.nFeatures, cols, 1)
	}

	out := mat.NewVecDense(rows, nil)
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(start, end int) {
		x := make([]float64, cols)
		for i := start; i < end; i++ {
			mat.Row(x, i, X)
			out.SetVec(i, traverse(r.root, x))
		}
	})
	return out, nil
}

// Score はモデルの決定係数（R²）を計算する
func (r *Regressor) Score(X, y mat.Matrix) (float64, error) {
	pred, err := r.PredictBatch(X)
	if err != nil {
		return 0, err
	}
	rows, cols := y.Dims()
	if cols != 1 {
		return 0, errors.NewValueError("RegressionTree.Score", "y must be a column vector")
	}
	if rows != pred.Len() {
		return 0, errors.NewDimensionError("RegressionTree.Score", pred.Len(), rows, 0)
	}
	yTrue := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yTrue.SetVec(i, y.At(i, 0))
	}
	return metrics.R2Score(yTrue, pred)
}

// Root returns the root node.
func (r *Regressor) Root() Node { return r.root }

// NFeatures returns the feature count seen during Fit.
func (r *Regressor) NFeatures() int { return r.nFeatures }

// NSamples returns the number of training rows.
func (r *Regressor) NSamples() int { return r.nSamples }

// FeatureImportances returns, per feature, the sample-weighted variance
// reduction of all splits on that feature, normalized to sum to 1. All
// values are zero when the tree is a single leaf.
func (r *Regressor) FeatureImportances() []float64 {
	out := make([]float64, r.nFeatures)
	copy(out, r.importances)
	return out
}
