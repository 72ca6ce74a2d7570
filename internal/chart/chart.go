// Package chart turns fill-mask predictions into horizontal bar charts.
package chart

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mlmcompare/pkg/types"
)

// Chart is the plotted form of one prediction list. Bars are stored in draw
// order: the first entry sits at the bottom, so Labels[len-1] is the
// highest-scoring token.
type Chart struct {
	Title  string
	Labels []string
	Scores []float64
}

// FromPredictions reverses preds (descending score) into draw order.
func FromPredictions(title string, preds []types.Prediction) Chart {
	c := Chart{
		Title:  title,
		Labels: make([]string, len(preds)),
		Scores: make([]float64, len(preds)),
	}
	for i, p := range preds {
		j := len(preds) - 1 - i
		c.Labels[j] = p.TokenStr
		c.Scores[j] = p.Score
	}
	return c
}

// Len is the number of bars.
func (c Chart) Len() int { return len(c.Labels) }

// Top returns the label drawn at the top of the chart.
func (c Chart) Top() (string, float64, bool) {
	if len(c.Labels) == 0 {
		return "", 0, false
	}
	n := len(c.Labels) - 1
	return c.Labels[n], c.Scores[n], true
}

// Data converts the chart to its API payload.
func (c Chart) Data() types.ChartData {
	return types.ChartData{
		Title:  c.Title,
		Labels: append([]string(nil), c.Labels...),
		Scores: append([]float64(nil), c.Scores...),
	}
}

// Renderer writes charts as standalone HTML documents.
type Renderer struct {
	// AssetsHost overrides where the echarts script is loaded from.
	AssetsHost string
	Width      string
	Height     string
}

// HTML renders c as a horizontal bar chart: scores on x, tokens on y.
func (r Renderer) HTML(c Chart) ([]byte, error) {
	initOpts := opts.Initialization{
		PageTitle: c.Title,
		Width:     r.Width,
		Height:    r.Height,
	}
	if initOpts.Width == "" {
		initOpts.Width = "100%"
	}
	if initOpts.Height == "" {
		initOpts.Height = fmt.Sprintf("%dpx", 80+40*c.Len())
	}
	if r.AssetsHost != "" {
		initOpts.AssetsHost = r.AssetsHost
	}

	items := make([]opts.BarData, len(c.Scores))
	for i, s := range c.Scores {
		items[i] = opts.BarData{Value: s}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "score"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
	)
	bar.SetXAxis(c.Labels).AddSeries("score", items).XYReversal()

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", c.Title, err)
	}
	return buf.Bytes(), nil
}
