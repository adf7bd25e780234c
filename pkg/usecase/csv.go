package usecase

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/raca/pkg/domain/model"
)

// TableHeader is the header row of the exported risk table
var TableHeader = []string{
	"Risk description",
	"Risk ID",
	"Risk Owner",
	"Risk(Title)",
	"Risk Category 1",
	"Risk Category 2",
	"Risk Category 3",
	"Gross Risk",
	"Net Risk",
	"Business Unit",
}

// WriteTableCSV writes the risk table rows as CSV with a header row. Missing scores are
// written as empty cells.
func WriteTableCSV(w io.Writer, rows []model.TableRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	for _, row := range rows {
		record := []string{
			row.RiskDescription,
			row.RiskID,
			row.RiskOwner,
			row.RiskTitle,
			row.RiskTypes,
			row.Risk,
			row.Level3,
			formatScore(row.GrossRisk),
			formatScore(row.NetRisk),
			row.BusinessUnit,
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("risk_id", row.RiskID))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}

func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
