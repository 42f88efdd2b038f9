// Package report renders prediction results as text and as charts.
package report

import (
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gpacast/explain"
	"github.com/YuminosukeSato/gpacast/pkg/errors"
)

var (
	positiveColor = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	negativeColor = color.RGBA{R: 205, G: 92, B: 92, A: 255}
)

// gonum/plot が書き出せる拡張子
var chartFormats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".jpg": true, ".jpeg": true,
	".eps": true, ".tif": true, ".tiff": true,
}

// Chart size.
const (
	ChartWidth  = 8 * vg.Inch
	ChartHeight = 4 * vg.Inch
)

// FactorChart draws the signed impacts of factors as a bar chart and saves
// it to path. The image format follows the file extension. Positive and
// negative impacts are drawn in different colours.
func FactorChart(factors []explain.Factor, path string) error {
	if len(factors) == 0 {
		return errors.NewModelError("report.FactorChart", "no factors", errors.ErrEmptyData)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !chartFormats[ext] {
		return errors.Wrapf(errors.ErrUnsupportedFormat, "report.FactorChart: chart extension %q", ext)
	}

	p := plot.New()
	p.Title.Text = "Key factors"
	p.Y.Label.Text = "Impact"
	p.Add(plotter.NewGrid())

	positive := make(plotter.Values, len(factors))
	negative := make(plotter.Values, len(factors))
	names := make([]string, len(factors))
	for i, f := range factors {
		names[i] = f.Factor
		if f.Impact >= 0 {
			positive[i] = f.Impact
		} else {
			negative[i] = f.Impact
		}
	}

	width := vg.Points(24)
	for _, series := range []struct {
		values plotter.Values
		color  color.Color
	}{
		{positive, positiveColor},
		{negative, negativeColor},
	} {
		bars, err := plotter.NewBarChart(series.values, width)
		if err != nil {
			return errors.Wrap(err, "report.FactorChart: bar chart")
		}
		bars.Color = series.color
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(names...)

	if err := p.Save(ChartWidth, ChartHeight, path); err != nil {
		return errors.Wrapf(err, "report.FactorChart: save %s", path)
	}
	return nil
}
