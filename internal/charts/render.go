package charts

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/lox/bikeusage/internal/metrics"
)

// Renderer rasterises specs to PNG. It holds no state between calls.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// PNG renders spec and returns the encoded image.
func (r *Renderer) PNG(spec Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, spec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes spec as a PNG to w. A spec with nothing to draw yields an
// empty framed panel rather than an error.
func (r *Renderer) Render(w io.Writer, spec Spec) error {
	start := time.Now()
	defer func() {
		metrics.ChartRenderLatency.WithLabelValues(spec.Name).Observe(time.Since(start).Seconds())
	}()

	if !spec.HasData() {
		return renderEmpty(w, spec)
	}

	var err error
	switch spec.Kind {
	case KindBar, KindGroupedBar:
		err = renderBars(w, spec)
	case KindLine:
		err = renderLine(w, spec)
	default:
		return fmt.Errorf("render %s: unknown chart kind %q", spec.Name, spec.Kind)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", spec.Name, err)
	}
	return nil
}

func renderBars(w io.Writer, spec Spec) error {
	var bars []chart.Value
	switch spec.Kind {
	case KindGroupedBar:
		colors := viridis(len(spec.Series))
		for ci, cat := range spec.Categories {
			for si, s := range spec.Series {
				bars = append(bars, chart.Value{
					Label: cat + " " + s.Name,
					Value: s.Values[ci],
					Style: chart.Style{FillColor: colors[si], StrokeColor: colors[si]},
				})
			}
		}
	default:
		colors := viridis(len(spec.Categories))
		for ci, cat := range spec.Categories {
			bars = append(bars, chart.Value{
				Label: cat,
				Value: spec.Series[0].Values[ci],
				Style: chart.Style{FillColor: colors[ci], StrokeColor: colors[ci]},
			})
		}
	}

	barWidth := (spec.Width - 160) / (2 * len(bars))
	if barWidth > 120 {
		barWidth = 120
	}
	if barWidth < 8 {
		barWidth = 8
	}

	bc := chart.BarChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 50, Right: 20, Bottom: 40}},
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: spec.MaxValue() * 1.1},
			ValueFormatter: countFormatter,
		},
		Bars: bars,
	}
	bc.Elements = []chart.Renderable{axisLabels(spec)}
	return bc.Render(chart.PNG, w)
}

func renderLine(w io.Writer, spec Spec) error {
	xs := make([]float64, len(spec.Categories))
	ticks := make([]chart.Tick, len(spec.Categories))
	for i, c := range spec.Categories {
		x, err := strconv.ParseFloat(c, 64)
		if err != nil {
			x = float64(i + 1)
		}
		xs[i] = x
		ticks[i] = chart.Tick{Value: x, Label: c}
	}

	colors := viridis(len(spec.Series))
	series := make([]chart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
			Style: chart.Style{
				StrokeColor: colors[i],
				StrokeWidth: 2,
				DotColor:    colors[i],
				DotWidth:    4,
			},
		})
	}

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: xs[0] - 0.5, Max: xs[len(xs)-1] + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:           spec.YLabel,
			Range:          &chart.ContinuousRange{Min: 0, Max: spec.MaxValue() * 1.1},
			ValueFormatter: countFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

// axisLabels draws the axis titles that BarChart has no slot for: the X
// label centred under the plot and the Y label rotated along its left edge.
func axisLabels(spec Spec) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		if f := defaults.GetFont(); f != nil {
			r.SetFont(f)
		} else if f, err := chart.GetDefaultFont(); err == nil {
			r.SetFont(f)
		}
		r.SetFontColor(drawing.ColorBlack)
		r.SetFontSize(11)

		xb := r.MeasureText(spec.XLabel)
		r.Text(spec.XLabel, canvas.Left+(canvas.Width()-xb.Width())/2, spec.Height-8)

		yb := r.MeasureText(spec.YLabel)
		r.SetTextRotation(3 * math.Pi / 2)
		r.Text(spec.YLabel, 18, canvas.Top+(canvas.Height()+yb.Width())/2)
		r.ClearTextRotation()
	}
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatInt(int64(math.Round(f)), 10)
	}
	return fmt.Sprint(v)
}
