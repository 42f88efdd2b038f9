package student

import (
	"github.com/YuminosukeSato/gpacast/pkg/errors"
)

// Record holds the attributes collected for one student. All fields are
// required; ranges are documented per Feature and are not enforced.
type Record struct {
	HighSchoolGPA           float64 `json:"highSchoolGPA" yaml:"highSchoolGPA"`
	EntranceExamScore       float64 `json:"entranceExamScore" yaml:"entranceExamScore"`
	MathGrade               float64 `json:"mathGrade" yaml:"mathGrade"`
	ProgrammingGrade        float64 `json:"programmingGrade" yaml:"programmingGrade"`
	DataStructuresGrade     float64 `json:"dataStructuresGrade" yaml:"dataStructuresGrade"`
	AlgorithmsGrade         float64 `json:"algorithmsGrade" yaml:"algorithmsGrade"`
	EnglishGrade            float64 `json:"englishGrade" yaml:"englishGrade"`
	Backlogs                float64 `json:"backlogs" yaml:"backlogs"`
	AttendancePercentage    float64 `json:"attendancePercentage" yaml:"attendancePercentage"`
	LabParticipation        float64 `json:"labParticipation" yaml:"labParticipation"`
	AssignmentPerformance   float64 `json:"assignmentPerformance" yaml:"assignmentPerformance"`
	SemesterTrend           float64 `json:"semesterTrend" yaml:"semesterTrend"`
	StudyHours              float64 `json:"studyHours" yaml:"studyHours"`
	ExtracurricularActivity float64 `json:"extracurricularActivity" yaml:"extracurricularActivity"`
	StressLevel             float64 `json:"stressLevel" yaml:"stressLevel"`
	ParentalEducation       float64 `json:"parentalEducation" yaml:"parentalEducation"`
	FinancialSupport        float64 `json:"financialSupport" yaml:"financialSupport"`
	PartTimeJob             float64 `json:"partTimeJob" yaml:"partTimeJob"`
	ProgrammingSkillLevel   float64 `json:"programmingSkillLevel" yaml:"programmingSkillLevel"`
	HackathonParticipation  float64 `json:"hackathonParticipation" yaml:"hackathonParticipation"`
	InternshipExperience    float64 `json:"internshipExperience" yaml:"internshipExperience"`
	GithubActivity          float64 `json:"githubActivity" yaml:"githubActivity"`
	PeerInfluence           float64 `json:"peerInfluence" yaml:"peerInfluence"`
	FacultyFeedback         float64 `json:"facultyFeedback" yaml:"facultyFeedback"`
	LearningResources       float64 `json:"learningResources" yaml:"learningResources"`
}

// Vector is an encoded Record in Feature order. It is a value type, so a
// vector handed to a caller cannot be changed behind its back.
type Vector [NumFeatures]float64

// Vector encodes the record. Values are copied as-is.
func (r Record) Vector() Vector {
	return Vector{
		r.HighSchoolGPA,
		r.EntranceExamScore,
		r.MathGrade,
		r.ProgrammingGrade,
		r.DataStructuresGrade,
		r.AlgorithmsGrade,
		r.EnglishGrade,
		r.Backlogs,
		r.AttendancePercentage,
		r.LabParticipation,
		r.AssignmentPerformance,
		r.SemesterTrend,
		r.StudyHours,
		r.ExtracurricularActivity,
		r.StressLevel,
		r.ParentalEducation,
		r.FinancialSupport,
		r.PartTimeJob,
		r.ProgrammingSkillLevel,
		r.HackathonParticipation,
		r.InternshipExperience,
		r.GithubActivity,
		r.PeerInfluence,
		r.FacultyFeedback,
		r.LearningResources,
	}
}

// FromVector decodes a vector back into a Record.
func FromVector(v Vector) Record {
	return Record{
		HighSchoolGPA:           v[HighSchoolGPA],
		EntranceExamScore:       v[EntranceExamScore],
		MathGrade:               v[MathGrade],
		ProgrammingGrade:        v[ProgrammingGrade],
		DataStructuresGrade:     v[DataStructuresGrade],
		AlgorithmsGrade:         v[AlgorithmsGrade],
		EnglishGrade:            v[EnglishGrade],
		Backlogs:                v[Backlogs],
		AttendancePercentage:    v[AttendancePercentage],
		LabParticipation:        v[LabParticipation],
		AssignmentPerformance:   v[AssignmentPerformance],
		SemesterTrend:           v[SemesterTrend],
		StudyHours:              v[StudyHours],
		ExtracurricularActivity: v[ExtracurricularActivity],
		StressLevel:             v[StressLevel],
		ParentalEducation:       v[ParentalEducation],
		FinancialSupport:        v[FinancialSupport],
		PartTimeJob:             v[PartTimeJob],
		ProgrammingSkillLevel:   v[ProgrammingSkillLevel],
		HackathonParticipation:  v[HackathonParticipation],
		InternshipExperience:    v[InternshipExperience],
		GithubActivity:          v[GithubActivity],
		PeerInfluence:           v[PeerInfluence],
		FacultyFeedback:         v[FacultyFeedback],
		LearningResources:       v[LearningResources],
	}
}

// VectorFromSlice copies x into a Vector. x must have NumFeatures values.
func VectorFromSlice(x []float64) (Vector, error) {
	var v Vector
	if len(x) != NumFeatures {
		return v, errors.NewDimensionError("student.VectorFromSlice", NumFeatures, len(x), 1)
	}
	copy(v[:], x)
	return v, nil
}

// Slice returns a copy of the vector as a slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, NumFeatures)
	copy(out, v[:])
	return out
}

// At returns the value of feature f.
func (v Vector) At(f Feature) float64 {
	return v[f]
}

// Normalized returns the value of f divided by the feature's scale.
func (v Vector) Normalized(f Feature) float64 {
	return v[f] / f.Scale()
}

// OutOfRange returns one warning per feature whose value lies outside the
// documented range. The values remain usable for prediction.
func (v Vector) OutOfRange() []*errors.OutOfRangeWarning {
	var warnings []*errors.OutOfRangeWarning
	for _, f := range Features() {
		min, max := f.Range()
		if x := v[f]; x < min || x > max {
			warnings = append(warnings, errors.NewOutOfRangeWarning(f.String(), x, min, max))
		}
	}
	return warnings
}
