package summary

import (
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// AsciiPlot renders per-sample counts as a terminal graph for a quick look
// without leaving the shell.
func (s Stats) AsciiPlot() string {
	if len(s.Counts) == 0 {
		return ""
	}
	return asciigraph.Plot(floatCounts(s.Counts),
		asciigraph.Height(10),
		asciigraph.Caption("variants per sample (sample order as in VCF header)"))
}

// SavePlot writes a bar chart of per-sample variant counts. The output
// format follows the file extension (.png, .pdf, .svg).
func (s Stats) SavePlot(outfile string) error {
	p := plot.New()
	p.Title.Text = "Variants per sample"
	p.Y.Label.Text = "Non-ref genotypes"

	bars, err := plotter.NewBarChart(plotter.Values(floatCounts(s.Counts)), vg.Points(20))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(s.Samples...)

	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, outfile)
}
