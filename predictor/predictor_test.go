package predictor

import (
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/YuminosukeSato/gpacast/dataset"
	"github.com/YuminosukeSato/gpacast/explain"
	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/pkg/log"
	"github.com/YuminosukeSato/gpacast/student"
	"github.com/YuminosukeSato/gpacast/tree"
)

func TestNew_TrainsOnBuiltInDataset(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	p := New(WithLogger(logger))

	if p.TrainErr() != nil {
		t.Fatalf("training failed: %v", p.TrainErr())
	}
	if p.Model() == nil {
		t.Fatal("Model() is nil after successful training")
	}
	if !logger.ContainsMessage("Model trained") {
		t.Error("expected training summary log")
	}
	if !logger.ContainsField(log.LeavesKey, float64(12)) {
		t.Errorf("expected %s=12 in training log", log.LeavesKey)
	}

	d := p.Diagnostics()
	if d == nil {
		t.Fatal("Diagnostics() is nil")
	}
	if d.Samples != dataset.Len() {
		t.Errorf("diagnostics samples = %d, want %d", d.Samples, dataset.Len())
	}
	if math.Abs(d.R2-0.9944929551) > 1e-6 {
		t.Errorf("R2 = %.10f, want about 0.9944929551", d.R2)
	}
	if math.Abs(d.MSE-0.0023075) > 1e-9 {
		t.Errorf("MSE = %g, want 0.0023075", d.MSE)
	}
}

func TestPredict_TrainingSample(t *testing.T) {
	p := New()
	res, err := p.PredictVector(dataset.Vector(0))
	if err != nil {
		t.Fatalf("PredictVector failed: %v", err)
	}

	if math.Abs(res.PredictedGPA-3.815) > 1e-9 {
		t.Errorf("PredictedGPA = %.6f, want 3.815", res.PredictedGPA)
	}
	if math.Abs(res.PredictedGPA-dataset.Target(0)) >= 0.05 {
		t.Errorf("PredictedGPA %.4f too far from recorded %.2f", res.PredictedGPA, dataset.Target(0))
	}
	if res.RiskLevel != explain.RiskLow {
		t.Errorf("RiskLevel = %s, want low", res.RiskLevel)
	}
	if res.Confidence < explain.MinConfidence || res.Confidence > explain.MaxConfidence {
		t.Errorf("Confidence %g outside bounds", res.Confidence)
	}
	if !strings.HasPrefix(res.Recommendation, "Excellent academic trajectory") {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
	if len(res.KeyFactors) != explain.MaxFactors {
		t.Errorf("len(KeyFactors) = %d, want %d", len(res.KeyFactors), explain.MaxFactors)
	}
	if res.KeyFactors[0].Factor != "High School GPA" {
		t.Errorf("top factor = %s", res.KeyFactors[0].Factor)
	}
	if len(res.ImprovementAreas) != 0 {
		t.Errorf("ImprovementAreas = %v, want none", res.ImprovementAreas)
	}
}

func TestPredict_RecordAndVectorAgree(t *testing.T) {
	p := New()
	for i := 0; i < dataset.Len(); i++ {
		v := dataset.Vector(i)
		a, err := p.PredictVector(v)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		b, err := p.Predict(student.FromVector(v))
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if a.PredictedGPA != b.PredictedGPA || a.Confidence != b.Confidence {
			t.Errorf("row %d: vector %v, record %v", i, a, b)
		}
	}
}

func TestPredict_TrainingFailed(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		errType func(error) bool
	}{
		{
			name:    "empty samples",
			opts:    []Option{WithSamples(nil)},
			errType: func(err error) bool { return errors.Is(err, errors.ErrEmptyData) },
		},
		{
			name: "wrong feature count",
			opts: []Option{WithSamples([]tree.Sample{{Features: []float64{1, 2}, Target: 3}})},
			errType: func(err error) bool {
				var de *errors.DimensionError
				return errors.As(err, &de)
			},
		},
		{
			name: "invalid tree option",
			opts: []Option{WithTreeOptions(tree.WithMaxDepth(-1))},
			errType: func(err error) bool {
				var ve *errors.ValidationError
				return errors.As(err, &ve)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := log.NewTestLogger(log.LevelDebug)
			p := New(append(tt.opts, WithLogger(logger))...)

			if p.Model() != nil {
				t.Error("Model() should be nil")
			}
			if !tt.errType(p.TrainErr()) {
				t.Errorf("unexpected TrainErr: %v", p.TrainErr())
			}
			if !logger.ContainsMessage("Model training failed") {
				t.Error("expected training failure log")
			}

			_, err := p.Predict(student.FromVector(dataset.Vector(0)))
			var nf *errors.NotFittedError
			if !errors.As(err, &nf) {
				t.Fatalf("expected NotFittedError, got %v", err)
			}
			if !strings.Contains(err.Error(), "model not trained") {
				t.Errorf("error %q lacks 'model not trained'", err.Error())
			}
		})
	}
}

func TestPredict_NilPredictor(t *testing.T) {
	var p *Predictor
	_, err := p.PredictVector(student.Vector{})
	var nf *errors.NotFittedError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
}

func TestPredict_OutOfRangeWarns(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(func(error) {})

	p := New()
	v := dataset.Vector(0)
	v[student.AttendancePercentage] = 130
	if _, err := p.PredictVector(v); err != nil {
		t.Fatalf("out-of-range input rejected: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	var oor *errors.OutOfRangeWarning
	if !errors.As(warnings[0], &oor) || oor.Feature != "Attendance %" {
		t.Errorf("unexpected warning: %v", warnings[0])
	}
}

func TestPredict_Concurrent(t *testing.T) {
	p := New()
	want, err := p.PredictVector(dataset.Vector(3))
	if err != nil {
		t.Fatalf("PredictVector failed: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				got, err := p.PredictVector(dataset.Vector(3))
				if err != nil || got.PredictedGPA != want.PredictedGPA {
					t.Errorf("concurrent prediction = %v, %v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestResult_JSON(t *testing.T) {
	p := New()
	res, err := p.PredictVector(dataset.Vector(11))
	if err != nil {
		t.Fatalf("PredictVector failed: %v", err)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"predictedGPA", "confidence", "riskLevel", "recommendation", "keyFactors", "improvementAreas"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if decoded["riskLevel"] != "high" {
		t.Errorf("riskLevel = %v, want high", decoded["riskLevel"])
	}
}
