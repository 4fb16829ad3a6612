package analysis

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveImportancePlot writes a bar chart of the ranked feature importances.
func (r *Result) SaveImportancePlot(path string) error {
	ranked := r.RankedImportances()
	vals := make(plotter.Values, len(ranked))
	names := make([]string, len(ranked))
	for i, fi := range ranked {
		vals[i] = fi.Importance
		names[i] = fi.Feature
	}

	p := plot.New()
	p.Title.Text = "Random Forest Feature Importances"
	p.Y.Label.Text = "Mean decrease in impurity"

	bars, err := plotter.NewBarChart(vals, vg.Points(18))
	if err != nil {
		return fmt.Errorf("analysis: bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.9

	if err := p.Save(9*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("analysis: save %s: %w", path, err)
	}
	return nil
}

// SaveScoreHistogram writes a histogram of the continuous target.
func SaveScoreHistogram(path string, scores []float64) error {
	p := plot.New()
	p.Title.Text = "Adoption Score Distribution"
	p.X.Label.Text = "adoption_score"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(scores), 20)
	if err != nil {
		return fmt.Errorf("analysis: histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(7*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("analysis: save %s: %w", path, err)
	}
	return nil
}
