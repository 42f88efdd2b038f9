package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "tree.Fit",
			kind:    "empty data",
			err:     ErrEmptyData,
			wantMsg: "gpacast: tree.Fit: empty data: empty data",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "gpacast: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
			if tt.err != nil && !Is(err, tt.err) {
				t.Error("Wrapped error should be reachable with Is")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("tree.Predict", 25, 3, 1)

	want := "gpacast: tree.Predict: dimension mismatch on axis 1 (features). Expected 25, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 25 || dimErr.Got != 3 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Predictor", "Predict")

	want := "gpacast: Predictor: model not trained. Training must succeed before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("maxDepth", "must be positive", -1)

	want := "gpacast: validation failed for parameter 'maxDepth': must be positive (got: -1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestZerologMarshalers(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().EmbedObject(&DimensionError{Op: "Predict", Expected: 25, Got: 24, Axis: 1}).Msg("bad input")
	logger.Warn().EmbedObject(NewOutOfRangeWarning("Attendance %", 120, 0, 100)).Msg("range")

	out := buf.String()
	for _, want := range []string{`"type":"DimensionError"`, `"axis_name":"features"`, `"type":"OutOfRangeWarning"`, `"value":120`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestWarn_UsesZerologFunc(t *testing.T) {
	var got []error
	SetZerologWarnFunc(func(w error) { got = append(got, w) })
	defer SetZerologWarnFunc(nil)

	Warn(NewOutOfRangeWarning("Study Hours", 20, 0, 12))

	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}
	if !strings.Contains(got[0].Error(), "Study Hours = 20") {
		t.Errorf("unexpected warning text: %v", got[0])
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d, got %d", "Fit", 20, 0)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in Fit: expected 20, got 0") {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("targets", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("finite values should pass, got %v", err)
	}

	err := CheckNumericalStability("targets", []float64{1, math.NaN()}, 7)
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %v", err)
	}
	if numErr.Index != 7 {
		t.Errorf("Index = %d, want 7", numErr.Index)
	}

	if err := CheckScalar("target", math.Inf(1), 2); err == nil {
		t.Error("Inf should be rejected")
	}
}

func TestClipAndSafeDivide(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0, 65, 95, 65},
		{80, 65, 95, 80},
		{120, 65, 95, 95},
	}
	for _, tt := range tests {
		if got := ClipValue(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("ClipValue(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}

	if got := SafeDivide(1, 0); got != 0 {
		t.Errorf("SafeDivide(1, 0) = %v, want 0", got)
	}
	if got := SafeDivide(3, 2); got != 1.5 {
		t.Errorf("SafeDivide(3, 2) = %v, want 1.5", got)
	}
}
