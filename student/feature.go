// Package student maps a student's attribute record onto the fixed-order
// feature vector shared by the training table and inference.
package student

// Feature indexes one position of the feature vector. The order is fixed and
// must match the training data exactly.
type Feature int

// Feature order.
const (
	HighSchoolGPA Feature = iota
	EntranceExamScore
	MathGrade
	ProgrammingGrade
	DataStructuresGrade
	AlgorithmsGrade
	EnglishGrade
	Backlogs
	AttendancePercentage
	LabParticipation
	AssignmentPerformance
	SemesterTrend
	StudyHours
	ExtracurricularActivity
	StressLevel
	ParentalEducation
	FinancialSupport
	PartTimeJob
	ProgrammingSkillLevel
	HackathonParticipation
	InternshipExperience
	GithubActivity
	PeerInfluence
	FacultyFeedback
	LearningResources

	// NumFeatures is the length of a feature vector.
	NumFeatures = int(iota)
)

// Kind groups features by their value scale.
type Kind int

const (
	// GPAScale values lie in [0, 4].
	GPAScale Kind = iota
	// Percentage values lie in [0, 100].
	Percentage
	// Count values are non-negative integers, expected in [0, 10].
	Count
	// Ordinal values are ratings in [1, 5].
	Ordinal
	// Hours values are hours per day in [0, 12].
	Hours
	// Flag values are 0 or 1.
	Flag
)

type featureInfo struct {
	key  string // Record の json/yaml タグ
	name string
	kind Kind
}

var features = [NumFeatures]featureInfo{
	HighSchoolGPA:           {"highSchoolGPA", "High School GPA", GPAScale},
	EntranceExamScore:       {"entranceExamScore", "Entrance Exam Score", Percentage},
	MathGrade:               {"mathGrade", "Math Grade", Percentage},
	ProgrammingGrade:        {"programmingGrade", "Programming Grade", Percentage},
	DataStructuresGrade:     {"dataStructuresGrade", "Data Structures Grade", Percentage},
	AlgorithmsGrade:         {"algorithmsGrade", "Algorithms Grade", Percentage},
	EnglishGrade:            {"englishGrade", "English Grade", Percentage},
	Backlogs:                {"backlogs", "Backlogs", Count},
	AttendancePercentage:    {"attendancePercentage", "Attendance %", Percentage},
	LabParticipation:        {"labParticipation", "Lab Participation", Ordinal},
	AssignmentPerformance:   {"assignmentPerformance", "Assignment Performance", Percentage},
	SemesterTrend:           {"semesterTrend", "Semester Trend", Ordinal},
	StudyHours:              {"studyHours", "Study Hours", Hours},
	ExtracurricularActivity: {"extracurricularActivity", "Extracurricular Activity", Ordinal},
	StressLevel:             {"stressLevel", "Stress Level", Ordinal},
	ParentalEducation:       {"parentalEducation", "Parental Education", Ordinal},
	FinancialSupport:        {"financialSupport", "Financial Support", Ordinal},
	PartTimeJob:             {"partTimeJob", "Part-time Job", Flag},
	ProgrammingSkillLevel:   {"programmingSkillLevel", "Programming Skill", Ordinal},
	HackathonParticipation:  {"hackathonParticipation", "Hackathon Participation", Flag},
	InternshipExperience:    {"internshipExperience", "Internship Experience", Flag},
	GithubActivity:          {"githubActivity", "GitHub Activity", Ordinal},
	PeerInfluence:           {"peerInfluence", "Peer Influence", Ordinal},
	FacultyFeedback:         {"facultyFeedback", "Faculty Feedback", Ordinal},
	LearningResources:       {"learningResources", "Learning Resources", Ordinal},
}

// Features returns all features in vector order.
func Features() []Feature {
	out := make([]Feature, NumFeatures)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}

// Names returns the display names in vector order.
func Names() []string {
	out := make([]string, NumFeatures)
	for i, f := range features {
		out[i] = f.name
	}
	return out
}

// Valid reports whether f is a known feature index.
func (f Feature) Valid() bool {
	return f >= 0 && int(f) < NumFeatures
}

// String returns the display name of the feature.
func (f Feature) String() string {
	if !f.Valid() {
		return "Unknown"
	}
	return features[f].name
}

// Key returns the record key of the feature as used in JSON and YAML input.
func (f Feature) Key() string {
	if !f.Valid() {
		return ""
	}
	return features[f].key
}

// Kind returns the value scale of the feature.
func (f Feature) Kind() Kind {
	return features[f].kind
}

// Range returns the documented value range of the feature.
func (f Feature) Range() (min, max float64) {
	switch f.Kind() {
	case GPAScale:
		return 0, 4
	case Percentage:
		return 0, 100
	case Count:
		return 0, 10
	case Ordinal:
		return 1, 5
	case Hours:
		return 0, 12
	default:
		return 0, 1
	}
}

// Scale returns the divisor that maps a raw value of the feature into
// roughly [0, 1].
func (f Feature) Scale() float64 {
	_, max := f.Range()
	return max
}
