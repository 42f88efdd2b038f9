// Package dataset holds the compiled-in training table used to grow the GPA
// regression tree.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gpacast/student"
	"github.com/YuminosukeSato/gpacast/tree"
)

type row struct {
	features student.Vector
	gpa      float64
}

// 特徴量の順序は student.Feature と一致する
var rows = []row{
	// High performers
	{student.Vector{3.8, 90, 85, 90, 85, 80, 85, 0, 90, 5, 90, 4, 6, 2, 2, 4, 4, 0, 4, 1, 1, 4, 4, 4, 4}, 3.85},
	{student.Vector{3.7, 88, 80, 85, 80, 75, 80, 1, 85, 4, 85, 4, 5, 3, 3, 3, 3, 0, 4, 0, 1, 4, 3, 4, 3}, 3.62},
	{student.Vector{3.9, 95, 90, 95, 90, 85, 90, 0, 95, 5, 95, 5, 7, 2, 2, 4, 5, 0, 5, 1, 1, 5, 4, 5, 5}, 3.95},
	{student.Vector{3.6, 85, 78, 82, 78, 75, 78, 1, 80, 4, 80, 3, 5, 3, 3, 3, 3, 1, 3, 0, 0, 3, 3, 3, 3}, 3.45},

	// Medium performers
	{student.Vector{3.2, 75, 70, 75, 70, 65, 70, 2, 70, 3, 70, 3, 4, 3, 3, 3, 3, 1, 3, 0, 0, 3, 3, 3, 3}, 3.05},
	{student.Vector{3.0, 70, 65, 70, 65, 60, 65, 3, 65, 3, 65, 2, 3, 4, 4, 2, 2, 1, 2, 0, 0, 2, 2, 2, 2}, 2.80},
	{student.Vector{3.3, 78, 72, 78, 72, 68, 72, 1, 75, 3, 75, 3, 4, 3, 3, 3, 3, 0, 3, 0, 0, 3, 3, 3, 3}, 3.15},
	{student.Vector{2.9, 68, 62, 68, 62, 58, 62, 4, 60, 2, 60, 2, 3, 4, 4, 2, 2, 1, 2, 0, 0, 2, 2, 2, 2}, 2.65},

	// Low performers
	{student.Vector{2.5, 60, 50, 55, 50, 45, 50, 5, 50, 2, 50, 2, 2, 5, 5, 2, 1, 1, 1, 0, 0, 1, 2, 1, 1}, 2.20},
	{student.Vector{2.3, 55, 45, 50, 45, 40, 45, 6, 45, 1, 45, 1, 1, 5, 5, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1}, 1.95},
	{student.Vector{2.7, 65, 55, 60, 55, 50, 55, 3, 55, 2, 55, 2, 2, 4, 4, 2, 2, 1, 2, 0, 0, 2, 2, 2, 2}, 2.45},
	{student.Vector{2.1, 50, 40, 45, 40, 35, 40, 7, 40, 1, 40, 1, 1, 5, 5, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1}, 1.80},

	// Mixed profiles
	{student.Vector{3.4, 82, 76, 80, 76, 72, 76, 1, 78, 4, 78, 3, 5, 2, 3, 4, 4, 0, 4, 1, 0, 4, 4, 4, 4}, 3.40},
	{student.Vector{3.1, 73, 67, 72, 67, 63, 67, 2, 68, 3, 68, 3, 4, 3, 3, 3, 3, 1, 3, 0, 0, 3, 3, 3, 3}, 2.95},
	{student.Vector{2.8, 63, 57, 62, 57, 53, 57, 4, 58, 2, 58, 2, 3, 4, 4, 2, 2, 1, 2, 0, 0, 2, 2, 2, 2}, 2.55},
	{student.Vector{2.4, 58, 48, 53, 48, 43, 48, 6, 48, 1, 48, 1, 2, 5, 5, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1}, 2.05},
	{student.Vector{3.5, 84, 80, 88, 82, 78, 74, 0, 88, 4, 86, 4, 5, 3, 2, 3, 3, 0, 5, 1, 1, 5, 4, 4, 4}, 3.55},
	{student.Vector{2.6, 62, 58, 60, 55, 52, 60, 4, 62, 2, 60, 2, 2, 3, 4, 2, 2, 1, 2, 0, 0, 1, 2, 2, 2}, 2.35},
	{student.Vector{3.0, 72, 68, 74, 70, 66, 72, 2, 82, 3, 74, 3, 4, 4, 3, 3, 2, 1, 3, 1, 0, 3, 3, 3, 3}, 3.00},
	{student.Vector{3.7, 91, 88, 84, 86, 82, 88, 0, 92, 5, 92, 4, 6, 2, 2, 5, 4, 0, 4, 0, 1, 4, 4, 5, 4}, 3.78},
}

// Len returns the number of training rows.
func Len() int { return len(rows) }

// Samples returns a fresh copy of the training table.
func Samples() []tree.Sample {
	out := make([]tree.Sample, len(rows))
	for i, r := range rows {
		out[i] = tree.Sample{Features: r.features.Slice(), Target: r.gpa}
	}
	return out
}

// Vector returns the feature vector of training row i.
func Vector(i int) student.Vector {
	return rows[i].features
}

// Target returns the recorded GPA of training row i.
func Target(i int) float64 {
	return rows[i].gpa
}

// Matrix returns the training table as an n×25 feature matrix and an n×1
// target matrix.
func Matrix() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(len(rows), student.NumFeatures, nil)
	y := mat.NewDense(len(rows), 1, nil)
	for i, r := range rows {
		X.SetRow(i, r.features[:])
		y.Set(i, 0, r.gpa)
	}
	return X, y
}
