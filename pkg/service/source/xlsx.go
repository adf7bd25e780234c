package source

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/tealeg/xlsx/v2"
)

func readXLSX(data []byte, sheetName string) ([][]string, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open spreadsheet")
	}

	sheet, err := getSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rows = append(rows, rowToStrings(row))
	}
	return rows, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, goerr.Wrap(ErrSheetNotFound, "failed to select sheet", goerr.V("sheet", name))
		}
		return sheet, nil
	}

	if len(f.Sheets) == 0 {
		return nil, goerr.Wrap(ErrSheetNotFound, "spreadsheet has no sheet")
	}
	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	if row == nil {
		return nil
	}
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		if cell != nil {
			cells[j] = cell.String()
		}
	}
	return cells
}
