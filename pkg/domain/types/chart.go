package types

import "github.com/m-mizutani/goerr/v2"

// ChartID identifies one of the four overview charts
type ChartID string

const (
	ChartRiskCount      ChartID = "risk-count"
	ChartGrossVsNet     ChartID = "gross-vs-net"
	ChartRiskCountShare ChartID = "risk-count-share"
	ChartNetRiskShare   ChartID = "net-risk-share"
)

// AllCharts returns the overview charts in layout order
func AllCharts() []ChartID {
	return []ChartID{
		ChartRiskCount,
		ChartGrossVsNet,
		ChartRiskCountShare,
		ChartNetRiskShare,
	}
}

// IsValid checks if the chart is known
func (c ChartID) IsValid() bool {
	switch c {
	case ChartRiskCount,
		ChartGrossVsNet,
		ChartRiskCountShare,
		ChartNetRiskShare:
		return true
	default:
		return false
	}
}

// String returns the string representation of the chart
func (c ChartID) String() string {
	return string(c)
}

// ParseChartID parses a string into a ChartID
func ParseChartID(s string) (ChartID, error) {
	id := ChartID(s)
	if !id.IsValid() {
		return "", goerr.New("invalid chart", goerr.V("chart", s))
	}
	return id, nil
}

// ChartKind is the geometry a chart is drawn with
type ChartKind string

const (
	ChartKindBar        ChartKind = "bar"
	ChartKindGroupedBar ChartKind = "grouped-bar"
	ChartKindLine       ChartKind = "line"
	ChartKindPie        ChartKind = "pie"
)

// ImageFormat is the encoding of a rendered chart
type ImageFormat string

const (
	ImageFormatSVG ImageFormat = "svg"
	ImageFormatPNG ImageFormat = "png"
)

// ContentType returns the MIME type of the format
func (f ImageFormat) ContentType() string {
	switch f {
	case ImageFormatSVG:
		return "image/svg+xml"
	case ImageFormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// ParseImageFormat parses a file extension into an ImageFormat
func ParseImageFormat(s string) (ImageFormat, error) {
	switch f := ImageFormat(s); f {
	case ImageFormatSVG, ImageFormatPNG:
		return f, nil
	default:
		return "", goerr.New("invalid image format", goerr.V("format", s))
	}
}
