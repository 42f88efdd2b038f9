package dataset

import (
	"testing"

	"github.com/YuminosukeSato/gpacast/student"
)

func TestSamples(t *testing.T) {
	samples := Samples()
	if len(samples) != Len() || Len() != 20 {
		t.Fatalf("len(Samples()) = %d, Len() = %d, want 20", len(samples), Len())
	}
	for i, s := range samples {
		if len(s.Features) != student.NumFeatures {
			t.Errorf("row %d has %d features, want %d", i, len(s.Features), student.NumFeatures)
		}
		if s.Target < 0 || s.Target > 4 {
			t.Errorf("row %d target %g outside [0, 4]", i, s.Target)
		}
		v, err := student.VectorFromSlice(s.Features)
		if err != nil {
			t.Fatalf("row %d: %v", i, err)
		}
		if w := v.OutOfRange(); len(w) != 0 {
			t.Errorf("row %d has out-of-range values: %v", i, w[0])
		}
	}
	if samples[0].Target != 3.85 {
		t.Errorf("row 0 target = %g, want 3.85", samples[0].Target)
	}
}

func TestSamples_FreshCopy(t *testing.T) {
	a := Samples()
	a[0].Features[0] = -1
	a[0].Target = -1

	b := Samples()
	if b[0].Features[0] != 3.8 || b[0].Target != 3.85 {
		t.Errorf("mutating a copy changed the table: %v, %g", b[0].Features[0], b[0].Target)
	}
	if Vector(0).At(student.HighSchoolGPA) != 3.8 {
		t.Error("Vector(0) changed")
	}
}

func TestMatrix(t *testing.T) {
	X, y := Matrix()
	r, c := X.Dims()
	if r != Len() || c != student.NumFeatures {
		t.Fatalf("X is %dx%d, want %dx%d", r, c, Len(), student.NumFeatures)
	}
	yr, yc := y.Dims()
	if yr != Len() || yc != 1 {
		t.Fatalf("y is %dx%d, want %dx1", yr, yc, Len())
	}
	for i := 0; i < Len(); i++ {
		if y.At(i, 0) != Target(i) {
			t.Errorf("y[%d] = %g, want %g", i, y.At(i, 0), Target(i))
		}
		if X.At(i, int(student.StudyHours)) != Vector(i).At(student.StudyHours) {
			t.Errorf("X[%d] study hours mismatch", i)
		}
	}
}
