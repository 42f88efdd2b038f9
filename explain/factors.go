// Package explain turns a feature vector and a predicted GPA into the
// human-readable parts of a prediction: key factors, a recommendation, a
// risk tier, improvement areas and a confidence score.
//
// None of these are derived from the tree. They are fixed heuristics over
// the input values.
package explain

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/YuminosukeSato/gpacast/student"
)

// MaxFactors is the number of key factors returned by Importance.
const MaxFactors = 6

// 符号付きの特徴量重み（student.Feature の順）
var weights = [student.NumFeatures]float64{
	0.15, 0.12, 0.10, 0.12, 0.11, 0.10, 0.08, -0.08, 0.09, 0.07, 0.08, 0.06,
	0.05, 0.03, -0.04, 0.04, 0.04, -0.03, 0.07, 0.05, 0.06, 0.05, 0.04, 0.05,
	0.04,
}

// Weight returns the signed display weight of feature f.
func Weight(f student.Feature) float64 {
	return weights[f]
}

// Factor is one entry of the key-factor list.
type Factor struct {
	Feature     student.Feature `json:"-"`
	Factor      string          `json:"factor"`
	Impact      float64         `json:"impact"`
	Description string          `json:"description"`
}

// Importance scores every feature as (value / scale) * weight * 10 and
// returns the MaxFactors entries with the largest absolute impact. Equal
// magnitudes keep feature order.
func Importance(v student.Vector) []Factor {
	factors := make([]Factor, 0, student.NumFeatures)
	for _, f := range student.Features() {
		factors = append(factors, Factor{
			Feature:     f,
			Factor:      f.String(),
			Impact:      v.Normalized(f) * weights[f] * 10,
			Description: Describe(f, v.At(f)),
		})
	}

	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Impact) > math.Abs(factors[j].Impact)
	})
	return factors[:MaxFactors]
}

// Describe returns a one-line description of value for feature f.
func Describe(f student.Feature, value float64) string {
	v := formatValue(value)
	switch f {
	case student.HighSchoolGPA:
		return fmt.Sprintf("Previous GPA of %.1f indicates %s academic foundation",
			value, tier(value, 3.5, 3.0, "strong", "moderate", "weak"))
	case student.ProgrammingGrade:
		return fmt.Sprintf("%s%% in programming shows %s coding skills",
			v, tier(value, 80, 70, "excellent", "good", "needs improvement"))
	case student.AttendancePercentage:
		return fmt.Sprintf("%s%% attendance demonstrates %s engagement",
			v, tier(value, 85, 75, "excellent", "good", "poor"))
	case student.StudyHours:
		return fmt.Sprintf("%s hours/day shows %s study commitment",
			v, tier(value, 5, 3, "dedicated", "moderate", "insufficient"))
	case student.Backlogs:
		var s string
		switch {
		case value == 0:
			s = "shows good progress"
		case value <= 2:
			s = "indicates some struggles"
		default:
			s = "suggests significant challenges"
		}
		return fmt.Sprintf("%s pending subjects %s", v, s)
	case student.MathGrade:
		return fmt.Sprintf("%s%% in mathematics indicates %s analytical foundation",
			v, tier(value, 80, 70, "strong", "adequate", "weak"))
	default:
		return "Current level: " + v
	}
}

func tier(value, high, mid float64, hi, md, lo string) string {
	switch {
	case value >= high:
		return hi
	case value >= mid:
		return md
	default:
		return lo
	}
}

// formatValue prints the shortest decimal form: 85 rather than 85.000000.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
