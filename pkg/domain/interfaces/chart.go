package interfaces

import (
	"io"

	"github.com/secmon-lab/raca/pkg/domain/model"
	"github.com/secmon-lab/raca/pkg/domain/types"
)

// ChartRenderer draws a chart payload as an image
type ChartRenderer interface {
	Render(chart *model.Chart, format types.ImageFormat, w io.Writer) error
}
