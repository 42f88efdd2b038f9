package explain

import (
	"github.com/YuminosukeSato/gpacast/student"
)

// RiskLevel is the academic risk tier derived from a predicted GPA.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Risk thresholds on the predicted GPA.
const (
	LowRiskGPA    = 3.3
	MediumRiskGPA = 2.7
)

// Risk returns low for gpa >= 3.3, medium for gpa >= 2.7, otherwise high.
func Risk(gpa float64) RiskLevel {
	switch {
	case gpa >= LowRiskGPA:
		return RiskLow
	case gpa >= MediumRiskGPA:
		return RiskMedium
	default:
		return RiskHigh
	}
}

const (
	recommendExcellent = "Excellent academic trajectory! Continue current study habits and consider advanced projects."
	recommendGood      = "Good performance expected. Focus on consistency and explore leadership opportunities."
	recommendAverage   = "Average performance predicted. Consider improving study techniques and seeking additional support in challenging subjects."
	recommendConcern   = "Performance concerns identified. Immediate intervention recommended: increase study hours, attend tutoring sessions, and improve attendance."
)

// Recommend picks the advice text for a predicted GPA. High predictions are
// further split on confidence above 80.
func Recommend(gpa, confidence float64) string {
	switch {
	case gpa >= 3.5:
		if confidence > 80 {
			return recommendExcellent
		}
		return recommendGood
	case gpa >= MediumRiskGPA:
		return recommendAverage
	default:
		return recommendConcern
	}
}

// MaxImprovementAreas is the number of improvement areas kept.
const MaxImprovementAreas = 6

// 判定順はそのまま出力順になる
var checklist = []struct {
	applies func(student.Record) bool
	text    string
}{
	{func(r student.Record) bool { return r.AttendancePercentage < 80 }, "Improve class attendance"},
	{func(r student.Record) bool { return r.StudyHours < 4 }, "Increase daily study time"},
	{func(r student.Record) bool { return r.ProgrammingGrade < 75 }, "Strengthen programming fundamentals"},
	{func(r student.Record) bool { return r.MathGrade < 75 }, "Focus on mathematical concepts"},
	{func(r student.Record) bool { return r.Backlogs > 2 }, "Clear pending subjects"},
	{func(r student.Record) bool { return r.AssignmentPerformance < 75 }, "Improve assignment quality"},
	{func(r student.Record) bool { return r.LabParticipation < 3 }, "Increase lab participation"},
	{func(r student.Record) bool { return r.StressLevel > 3 }, "Manage stress and mental health"},
	{func(r student.Record) bool { return r.ProgrammingSkillLevel < 3 }, "Develop practical coding skills"},
	{func(r student.Record) bool { return r.GithubActivity < 3 }, "Build coding portfolio"},
}

// ImprovementAreas returns the checklist items that apply to r, in
// checklist order, at most MaxImprovementAreas of them. The result is
// never nil.
func ImprovementAreas(r student.Record) []string {
	areas := []string{}
	for _, item := range checklist {
		if len(areas) == MaxImprovementAreas {
			break
		}
		if item.applies(r) {
			areas = append(areas, item.text)
		}
	}
	return areas
}
