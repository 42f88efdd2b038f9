package explain

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gpacast/pkg/errors"
	"github.com/YuminosukeSato/gpacast/student"
)

// Confidence bounds, in percent.
const (
	MinConfidence = 65.0
	MaxConfidence = 95.0
)

// Group weights of the confidence score.
const (
	academicWeight   = 0.4
	engagementWeight = 0.3
	otherWeight      = 0.1
)

var confidenceWeights = func() []float64 {
	w := make([]float64, student.NumFeatures)
	for _, f := range student.Features() {
		w[f] = otherWeight
	}
	for f := student.HighSchoolGPA; f <= student.EnglishGrade; f++ {
		w[f] = academicWeight
	}
	for _, f := range []student.Feature{
		student.AttendancePercentage,
		student.LabParticipation,
		student.AssignmentPerformance,
		student.SemesterTrend,
		student.StudyHours,
	} {
		w[f] = engagementWeight
	}
	return w
}()

// Confidence は各特徴量をスケールで正規化し、グループ重みで加重平均した値を
// パーセントに換算して [65, 95] に収める。NaN になる入力は下限を返す。
// 木の構造とは無関係なヒューリスティック。
func Confidence(v student.Vector) float64 {
	normalized := make([]float64, student.NumFeatures)
	for _, f := range student.Features() {
		normalized[f] = v.Normalized(f)
	}
	score := stat.Mean(normalized, confidenceWeights) * 100
	if math.IsNaN(score) {
		return MinConfidence
	}
	return errors.ClipValue(score, MinConfidence, MaxConfidence)
}
