package protein_stats

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"rnalab_go/tools/translate"
)

var errNoData = errors.New("no proteins to plot")

// MassHistogramSVG bins protein masses into an SVG histogram.
func MassHistogramSVG(masses []float64, bins int) (string, error) {
	if len(masses) == 0 {
		return "", errNoData
	}
	p := plot.New()
	p.Title.Text = "Protein Mass Distribution"
	p.X.Label.Text = "Mass (Da)"
	p.Y.Label.Text = "Protein Count"

	hist, err := plotter.NewHist(plotter.Values(masses), bins)
	if err != nil {
		return "", err
	}
	hist.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	p.Add(hist)

	return renderSVG(p)
}

// LongestHits returns up to n hits ordered by descending protein length.
func LongestHits(hits []translate.Hit, n int) []translate.Hit {
	sorted := append([]translate.Hit(nil), hits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Protein.Len() > sorted[j].Protein.Len()
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// ProfileSVG draws the running hydrophobicity of each protein along its
// residues, one line per protein.
func ProfileSVG(hits []translate.Hit) (string, error) {
	if len(hits) == 0 {
		return "", errNoData
	}
	p := plot.New()
	p.Title.Text = "Cumulative Hydrophobicity"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Hydrophobicity (kcal/mol)"
	p.Add(plotter.NewGrid())

	for i, h := range hits {
		profile := h.Protein.Profile()
		pts := make(plotter.XYs, len(profile))
		for j, v := range profile {
			pts[j].X = float64(j + 1)
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s %s:%d-%d", h.SeqID, h.FrameLabel(), h.Start, h.End), line)
	}
	p.Legend.Top = true

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	_, err = writer.WriteTo(&buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
