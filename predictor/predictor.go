// Package predictor trains the GPA regression tree once and answers
// predictions for student records.
//
// A Predictor whose training failed is still usable as a value: every
// prediction on it fails with a NotFittedError.
package predictor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gpacast/dataset"
	"github.com/YuminosukeSato/gpacast/explain"
	"github.com/YuminosukeSato/gpacast/metrics"
	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/pkg/log"
	"github.com/YuminosukeSato/gpacast/student"
	"github.com/YuminosukeSato/gpacast/tree"
)

// Result is the outcome of one prediction.
type Result struct {
	PredictedGPA     float64           `json:"predictedGPA"`
	Confidence       float64           `json:"confidence"`
	RiskLevel        explain.RiskLevel `json:"riskLevel"`
	Recommendation   string            `json:"recommendation"`
	KeyFactors       []explain.Factor  `json:"keyFactors"`
	ImprovementAreas []string          `json:"improvementAreas"`
}

// Predictor holds the trained model. It is read-only after New returns and
// safe for concurrent use.
type Predictor struct {
	model       *tree.Regressor
	trainErr    error
	diagnostics *metrics.Report
	logger      log.Logger
}

// New trains the regression tree synchronously. Training errors, including
// panics, are logged and kept; New never fails.
//
// 使用例:
//
//	p := predictor.New(predictor.WithLogger(logger))
//	res, err := p.Predict(record)
func New(opts ...Option) *Predictor {
	cfg := config{logger: log.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSamples {
		cfg.samples = dataset.Samples()
	}

	p := &Predictor{logger: cfg.logger.With(log.ComponentKey, "predictor")}

	err := errors.SafeExecute("predictor.New", func() error {
		treeOpts := append([]tree.Option{
			tree.WithFeatureNames(student.Names()),
			tree.WithLogger(p.logger),
		}, cfg.treeOpts...)

		model, err := tree.Fit(cfg.samples, treeOpts...)
		if err != nil {
			return err
		}
		p.model = model
		return nil
	})
	if err != nil {
		p.model = nil
		p.trainErr = err
		p.logger.Error("Model training failed", err, log.PhaseKey, log.PhaseTraining)
		return p
	}

	p.diagnose(cfg.samples)
	return p
}

// diagnose logs the in-sample fit of the trained tree.
func (p *Predictor) diagnose(samples []tree.Sample) {
	X := mat.NewDense(len(samples), p.model.NFeatures(), nil)
	y := mat.NewVecDense(len(samples), nil)
	for i, s := range samples {
		X.SetRow(i, s.Features)
		y.SetVec(i, s.Target)
	}

	fields := []any{
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, p.model.NSamples(),
		log.DepthKey, p.model.Depth(),
		log.LeavesKey, p.model.NLeaves(),
	}

	pred, err := p.model.PredictBatch(X)
	if err == nil {
		var report metrics.Report
		report, err = metrics.Evaluate(y, pred)
		if err == nil {
			p.diagnostics = &report
			fields = append(fields, log.R2ScoreKey, report.R2, log.RMSEKey, report.RMSE)
		}
	}
	if err != nil {
		p.logger.Warn("In-sample evaluation unavailable", append(fields, log.ErrAttrKey, err)...)
	}
	p.logger.Info("Model trained", fields...)
}

// Model returns the trained tree, or nil when training failed.
func (p *Predictor) Model() *tree.Regressor { return p.model }

// TrainErr returns the error that made training fail, if any.
func (p *Predictor) TrainErr() error { return p.trainErr }

// Diagnostics returns the in-sample metrics computed after training. It is
// nil when training failed or the metrics are undefined, for example when
// every target is equal.
func (p *Predictor) Diagnostics() *metrics.Report { return p.diagnostics }

// Predict builds the feature vector of r and predicts its GPA.
func (p *Predictor) Predict(r student.Record) (*Result, error) {
	return p.predict(r.Vector(), r)
}

// PredictVector predicts the GPA of an already assembled feature vector.
func (p *Predictor) PredictVector(v student.Vector) (*Result, error) {
	return p.predict(v, student.FromVector(v))
}

func (p *Predictor) predict(v student.Vector, r student.Record) (*Result, error) {
	if p == nil || p.model == nil {
		return nil, errors.NewNotFittedError("Predictor", "Predict")
	}

	// 範囲外の値も拒否せずに予測へ回す
	for _, w := range v.OutOfRange() {
		errors.Warn(w)
	}

	gpa, err := p.model.Predict(v.Slice())
	if err != nil {
		return nil, errors.Wrap(err, "predictor: tree prediction")
	}

	confidence := explain.Confidence(v)
	res := &Result{
		PredictedGPA:     gpa,
		Confidence:       confidence,
		RiskLevel:        explain.Risk(gpa),
		Recommendation:   explain.Recommend(gpa, confidence),
		KeyFactors:       explain.Importance(v),
		ImprovementAreas: explain.ImprovementAreas(r),
	}

	p.logger.Debug("Prediction completed",
		log.PhaseKey, log.PhaseInference,
		log.GPAKey, res.PredictedGPA,
		log.ConfidenceKey, res.Confidence,
		log.RiskKey, string(res.RiskLevel),
	)
	return res, nil
}
