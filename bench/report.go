package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders the per-operation latencies of every measured index
// as a grouped bar chart and saves it as a PNG at path.
func WritePlot(results []Result, path string) error {
	if len(results) == 0 {
		return fmt.Errorf("report: no results to plot")
	}

	// Column order follows first appearance in the results.
	var ops []string
	opIdx := map[string]int{}
	var names []string
	nameIdx := map[string]int{}
	for _, r := range results {
		if _, ok := opIdx[r.Operation]; !ok {
			opIdx[r.Operation] = len(ops)
			ops = append(ops, r.Operation)
		}
		if _, ok := nameIdx[r.Name]; !ok {
			nameIdx[r.Name] = len(names)
			names = append(names, r.Name)
		}
	}

	series := make([]plotter.Values, len(names))
	for i := range series {
		series[i] = make(plotter.Values, len(ops))
	}
	for _, r := range results {
		series[nameIdx[r.Name]][opIdx[r.Operation]] = float64(r.LatencyNs)
	}

	p := plot.New()
	p.Title.Text = "Per-operation latency"
	p.Y.Label.Text = "ns/op"

	barWidth := vg.Points(18)
	for i, name := range names {
		bar, err := plotter.NewBarChart(series[i], barWidth)
		if err != nil {
			return fmt.Errorf("report: bar chart for %s: %w", name, err)
		}
		bar.LineStyle.Width = 0
		bar.Color = plotutil.Color(i)
		bar.Offset = barWidth * vg.Length(i-len(names)/2)
		p.Add(bar)
		p.Legend.Add(name, bar)
	}
	p.Legend.Top = true
	p.NominalX(ops...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
