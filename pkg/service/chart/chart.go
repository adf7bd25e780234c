package chart

import (
	"bytes"
	"io"
	"math"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/interfaces"
	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmptyChart is returned when a chart has nothing to draw
var ErrEmptyChart = goerr.New("chart has no data to draw")

const (
	defaultWidth  = 800
	defaultHeight = 500

	singlePointHalfWidth = 0.2
)

// palette is used for pie slices, which carry no series colour
var palette = []string{
	"#2E91E5", "#E15F99", "#1CA71C", "#FB0D0D", "#DA16FF", "#222A2A",
	"#B68100", "#750D86", "#EB663B", "#511CFB", "#00A08B", "#FB00D1",
}

// Renderer draws dashboard charts as SVG or PNG images
type Renderer struct {
	width  int
	height int
}

var _ interfaces.ChartRenderer = &Renderer{}

type Option func(*Renderer)

func WithSize(width, height int) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

// Render draws c in format to w. Nothing is written to w when drawing fails.
func (r *Renderer) Render(c *model.Chart, format types.ImageFormat, w io.Writer) error {
	if c == nil || c.IsEmpty() {
		return goerr.Wrap(ErrEmptyChart, "failed to render chart")
	}

	var provider gochart.RendererProvider
	switch format {
	case types.ImageFormatSVG:
		provider = gochart.SVG
	case types.ImageFormatPNG:
		provider = gochart.PNG
	default:
		return goerr.New("unsupported image format", goerr.V("format", format))
	}

	var graph renderable
	switch c.Kind {
	case types.ChartKindBar, types.ChartKindGroupedBar:
		graph = r.barChart(c)
	case types.ChartKindLine:
		graph = r.lineChart(c)
	case types.ChartKindPie:
		pie, err := r.pieChart(c)
		if err != nil {
			return err
		}
		graph = pie
	default:
		return goerr.New("unsupported chart kind", goerr.V("kind", c.Kind), goerr.V("chart", c.ID))
	}

	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return goerr.Wrap(err, "failed to draw chart", goerr.V("chart", c.ID), goerr.V("format", format))
	}
	if _, err := io.Copy(w, &buf); err != nil {
		return goerr.Wrap(err, "failed to write chart image", goerr.V("chart", c.ID))
	}
	return nil
}

// barChart draws every series as bars. Series of a grouped chart are interleaved per label.
func (r *Renderer) barChart(c *model.Chart) *gochart.BarChart {
	grouped := len(c.Series) > 1
	var bars []gochart.Value
	maxValue := 0.0

	labels := seriesLabels(c)
	for _, label := range labels {
		for _, s := range c.Series {
			p, ok := findPoint(s.Points, label)
			if !ok {
				continue
			}
			name := p.Label
			if grouped {
				name = p.Label + " (" + s.Name + ")"
			}
			color := colorOf(s.Color, 0)
			bars = append(bars, gochart.Value{
				Label: name,
				Value: p.Value,
				Style: gochart.Style{FillColor: color, StrokeColor: color},
			})
			maxValue = math.Max(maxValue, p.Value)
		}
	}

	return &gochart.BarChart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth(r.width, len(bars)),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.Style{TextRotationDegrees: 45.0},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: upperBound(maxValue)},
		},
		Bars: bars,
	}
}

func (r *Renderer) lineChart(c *model.Chart) *gochart.Chart {
	labels := seriesLabels(c)
	ticks := make([]gochart.Tick, len(labels))
	for i, label := range labels {
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	maxValue := 0.0
	series := make([]gochart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for i, label := range labels {
			p, ok := findPoint(s.Points, label)
			if !ok {
				continue
			}
			xs = append(xs, float64(i))
			ys = append(ys, p.Value)
			maxValue = math.Max(maxValue, p.Value)
		}
		if len(xs) == 0 {
			continue
		}
		// go-chart needs two x values; a lone point is drawn as a short flat segment
		if len(xs) == 1 {
			xs = []float64{xs[0] - singlePointHalfWidth, xs[0] + singlePointHalfWidth}
			ys = []float64{ys[0], ys[0]}
		}
		color := colorOf(s.Color, 0)
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}

	ch := &gochart.Chart{
		Title:      c.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  c.XLabel,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(labels)) - 0.5},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: upperBound(maxValue)},
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	return ch
}

func (r *Renderer) pieChart(c *model.Chart) (*gochart.PieChart, error) {
	var values []gochart.Value
	total := 0.0
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Value <= 0 {
				continue
			}
			color := colorOf("", len(values))
			values = append(values, gochart.Value{
				Label: p.Label,
				Value: p.Value,
				Style: gochart.Style{FillColor: color, StrokeColor: drawing.ColorWhite},
			})
			total += p.Value
		}
	}
	if total == 0 {
		return nil, goerr.Wrap(ErrEmptyChart, "pie chart has no positive value", goerr.V("chart", c.ID))
	}

	return &gochart.PieChart{
		Title:  c.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}, nil
}

// seriesLabels returns every label of the chart in first-seen order
func seriesLabels(c *model.Chart) []string {
	var labels []string
	seen := make(map[string]struct{})
	for _, s := range c.Series {
		for _, p := range s.Points {
			if _, ok := seen[p.Label]; ok {
				continue
			}
			seen[p.Label] = struct{}{}
			labels = append(labels, p.Label)
		}
	}
	return labels
}

func findPoint(points []model.ChartPoint, label string) (model.ChartPoint, bool) {
	for _, p := range points {
		if p.Label == label {
			return p, true
		}
	}
	return model.ChartPoint{}, false
}

// colorOf parses a "#RRGGBB" colour, falling back to the palette entry at index
func colorOf(hex string, index int) drawing.Color {
	if hex == "" {
		hex = palette[index%len(palette)]
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// upperBound keeps the value axis non-degenerate when every value is zero
func upperBound(maxValue float64) float64 {
	if maxValue <= 0 {
		return 1
	}
	return maxValue * 1.1
}

func barWidth(width, bars int) int {
	if bars == 0 {
		return 0
	}
	w := (width - 80) / (bars * 2)
	return max(8, min(w, 80))
}
