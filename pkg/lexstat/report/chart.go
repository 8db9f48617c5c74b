// Package report renders frequency statistics as charts: top-k bar
// charts per granularity and log-log rank-frequency plots for Zipf-law
// inspection. It only consumes core outputs.
package report

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cognicore/lexstat/pkg/lexstat/freq"
	"github.com/cognicore/lexstat/pkg/lexstat/zipf"
)

// TopKBar builds a bar chart of ranked (unit, count) pairs. A nil plot
// is returned for an empty selection; callers skip that panel.
func TopKBar(title string, entries []freq.Entry) (*plot.Plot, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	values := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		labels[i] = e.Unit
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "count"
	p.X.Tick.Label.Rotation = -1.2
	p.X.Tick.Label.XAlign = draw.XLeft
	p.X.Tick.Label.YAlign = draw.YCenter

	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return nil, fmt.Errorf("build bar chart %q: %w", title, err)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(labels...)

	return p, nil
}

// RankFreqLogLog builds a log-log scatter of a rank-frequency series.
// A nil plot is returned for an empty series; callers skip that panel.
func RankFreqLogLog(title string, s zipf.Series) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, nil
	}

	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = s.Rank[i]
		pts[i].Y = s.Freq[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "frequency"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("build rank-frequency plot %q: %w", title, err)
	}
	scatter.Radius = vg.Points(1.5)
	p.Add(scatter)

	return p, nil
}

// WriteGrid composes plots into a rows×cols PNG grid. Nil cells stay
// blank. The grid must contain at least one plot.
func WriteGrid(path string, plots [][]*plot.Plot) error {
	rows := len(plots)
	if rows == 0 {
		return fmt.Errorf("write chart %s: no panels", path)
	}
	cols := len(plots[0])

	any := false
	for _, row := range plots {
		for _, p := range row {
			if p != nil {
				any = true
			}
		}
	}
	if !any {
		return fmt.Errorf("write chart %s: all panels empty", path)
	}

	img := vgimg.New(vg.Points(float64(cols)*360), vg.Points(float64(rows)*280))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Points(12), PadY: vg.Points(12),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}

	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return f.Close()
}
