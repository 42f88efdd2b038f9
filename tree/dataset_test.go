package tree_test

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/gpacast/dataset"
	"github.com/YuminosukeSato/gpacast/student"
	"github.com/YuminosukeSato/gpacast/tree"
)

// 組み込みの訓練データに対する回帰木の形状を固定する
func TestFit_TrainingTable(t *testing.T) {
	reg, err := tree.Fit(dataset.Samples(), tree.WithFeatureNames(student.Names()))
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	root, ok := reg.Root().(*tree.Internal)
	if !ok {
		t.Fatalf("root is %T, want *tree.Internal", reg.Root())
	}
	if root.Feature != int(student.EntranceExamScore) || root.Threshold != 71 {
		t.Errorf("root split = %s <= %g, want Entrance Exam Score <= 71",
			reg.FeatureName(root.Feature), root.Threshold)
	}
	if root.NSamples != dataset.Len() {
		t.Errorf("root samples = %d, want %d", root.NSamples, dataset.Len())
	}
	if reg.Depth() != 4 {
		t.Errorf("Depth() = %d, want 4", reg.Depth())
	}
	if reg.NLeaves() != 12 {
		t.Errorf("NLeaves() = %d, want 12", reg.NLeaves())
	}

	tests := []struct {
		row  int
		want float64
	}{
		{0, 3.815},
		{2, 3.95},
		{17, 2.35},
	}
	for _, tt := range tests {
		got, err := reg.Predict(dataset.Vector(tt.row).Slice())
		if err != nil {
			t.Fatalf("Predict(row %d) failed: %v", tt.row, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Predict(row %d) = %.6f, want %.6f", tt.row, got, tt.want)
		}
	}

	X, y := dataset.Matrix()
	score, err := reg.Score(X, y)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.Abs(score-0.9944929551) > 1e-6 {
		t.Errorf("Score = %.10f, want about 0.9944929551", score)
	}
}
