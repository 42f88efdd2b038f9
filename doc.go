// Package gpacast predicts a student's GPA from about 25 academic,
// behavioural and background attributes.
//
// A small regression tree is trained at startup on a fixed, compiled-in
// table of 20 student records. A prediction returns the tree's GPA estimate
// together with a confidence score, a risk tier, a recommendation, the six
// most influential factors and up to six improvement areas.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gpacast/predictor"
//	    "github.com/YuminosukeSato/gpacast/student"
//	)
//
//	func main() {
//	    p := predictor.New()
//	    if err := p.TrainErr(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := p.Predict(student.Record{
//	        HighSchoolGPA:        3.4,
//	        EntranceExamScore:    82,
//	        AttendancePercentage: 88,
//	        StudyHours:           4,
//	        // ...
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("GPA %.2f, risk %s\n", res.PredictedGPA, res.RiskLevel)
//	}
//
// # Packages
//
//   - student: attribute record, feature order and value ranges
//   - dataset: the built-in training table
//   - tree: greedy variance-reduction regression tree (Fit, Predict, Walk)
//   - explain: key factors, recommendation, risk, improvement areas, confidence
//   - predictor: trains once and assembles prediction results
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - report: text output and key-factor charts
//   - core/model: estimator interfaces
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: structured errors and logging
//
// The gpacast command in cmd/gpacast wraps the predictor for the shell.
package gpacast
