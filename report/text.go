package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/YuminosukeSato/gpacast/metrics"
	"github.com/YuminosukeSato/gpacast/predictor"
)

// Text writes res in a human-readable layout.
func Text(w io.Writer, res *predictor.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Predicted GPA:\t%.2f\n", res.PredictedGPA)
	fmt.Fprintf(tw, "Confidence:\t%.1f%%\n", res.Confidence)
	fmt.Fprintf(tw, "Risk level:\t%s\n", res.RiskLevel)
	fmt.Fprintf(tw, "Recommendation:\t%s\n", res.Recommendation)

	fmt.Fprintln(tw, "\nKey factors:")
	for _, f := range res.KeyFactors {
		fmt.Fprintf(tw, "  %s\t%+.3f\t%s\n", f.Factor, f.Impact, f.Description)
	}

	if len(res.ImprovementAreas) > 0 {
		fmt.Fprintln(tw, "\nImprovement areas:")
		for _, a := range res.ImprovementAreas {
			fmt.Fprintf(tw, "  - %s\n", a)
		}
	}
	return tw.Flush()
}

// Importances writes the non-zero feature importances, largest first.
func Importances(w io.Writer, names []string, importances []float64) error {
	idx := make([]int, 0, len(importances))
	for i, v := range importances {
		if v > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return importances[idx[a]] > importances[idx[b]]
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Feature importances:")
	for _, i := range idx {
		name := fmt.Sprintf("x[%d]", i)
		if i < len(names) {
			name = names[i]
		}
		fmt.Fprintf(tw, "  %s\t%.4f\n", name, importances[i])
	}
	return tw.Flush()
}

// Metrics writes an evaluation report.
func Metrics(w io.Writer, r metrics.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Samples:\t%d\n", r.Samples)
	fmt.Fprintf(tw, "MSE:\t%.6f\n", r.MSE)
	fmt.Fprintf(tw, "RMSE:\t%.6f\n", r.RMSE)
	fmt.Fprintf(tw, "MAE:\t%.6f\n", r.MAE)
	fmt.Fprintf(tw, "R2:\t%.6f\n", r.R2)
	return tw.Flush()
}
