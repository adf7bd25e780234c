package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/service/source"
	"github.com/tealeg/xlsx/v2"
)

func createTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		gt.NoError(t, err).Required()
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "raca.xlsx")
	gt.NoError(t, f.Save(path)).Required()
	return path
}

func TestLoad_XLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"RACA": {
			{"Risk ID", "I", "L", "I", "L"},
			{"DP-P01-R01", "4", "5", "2", "2"},
			{"AP-P01-R01", "3", "3", "1", "1"},
		},
	})

	table, err := source.New().Load(context.Background(), path)
	gt.NoError(t, err).Required()
	gt.Value(t, table.Headers).Equal([]string{"Risk ID", "I", "L", "I", "L"})
	gt.Array(t, table.Rows).Length(2)
	gt.Value(t, table.Rows[0]).Equal([]string{"DP-P01-R01", "4", "5", "2", "2"})
}

func TestLoad_XLSXSheetName(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{
		"Cover": {{"Title"}},
		"RACA":  {{"Risk ID"}, {"CP-P01-R01"}},
	})

	table, err := source.New(source.WithSheet("RACA")).Load(context.Background(), "file://"+path)
	gt.NoError(t, err).Required()
	gt.Value(t, table.Headers).Equal([]string{"Risk ID"})
	gt.Value(t, table.Rows).Equal([][]string{{"CP-P01-R01"}})

	_, err = source.New(source.WithSheet("Missing")).Load(context.Background(), path)
	gt.Error(t, err).Is(source.ErrSheetNotFound)
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raca.csv")
	data := "\xEF\xBB\xBFRisk ID,Risk(Title),I,L\nDP-P01-R01,\"Loss, of data\",4,5\nAP-P01-R01,Short\n"
	gt.NoError(t, os.WriteFile(path, []byte(data), 0600)).Required()

	table, err := source.New().Load(context.Background(), path)
	gt.NoError(t, err).Required()
	gt.Value(t, table.Headers).Equal([]string{"Risk ID", "Risk(Title)", "I", "L"})
	gt.Array(t, table.Rows).Length(2)
	gt.Value(t, table.Rows[0][1]).Equal("Loss, of data")
	gt.Value(t, table.Rows[1]).Equal([]string{"AP-P01-R01", "Short"})
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	svc := source.New()

	_, err := svc.Load(ctx, filepath.Join(t.TempDir(), "missing.xlsx"))
	gt.Value(t, err).NotNil()

	_, err = svc.Load(ctx, "https://example.com/raca.xlsx")
	gt.Error(t, err).Is(source.ErrUnsupportedScheme)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	gt.NoError(t, os.WriteFile(empty, nil, 0600)).Required()
	_, err = svc.Load(ctx, empty)
	gt.Error(t, err).Is(source.ErrEmptySheet)

	txt := filepath.Join(t.TempDir(), "raca.txt")
	gt.NoError(t, os.WriteFile(txt, []byte("a,b"), 0600)).Required()
	_, err = svc.Load(ctx, txt)
	gt.Error(t, err).Is(source.ErrUnsupportedFormat)

	_, err = svc.Load(ctx, "gs://bucket-only")
	gt.Error(t, err).Is(source.ErrInvalidGCSURI)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    source.Format
		wantErr bool
	}{
		{"raca.xlsx", source.FormatXLSX, false},
		{"RACA.XLSX", source.FormatXLSX, false},
		{"raca.xlsm", source.FormatXLSX, false},
		{"raca.csv", source.FormatCSV, false},
		{"raca.xls", "", true},
		{"raca", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.DetectFormat(tt.name)
			if tt.wantErr {
				gt.Error(t, err).Is(source.ErrUnsupportedFormat)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestSplitGCSURI(t *testing.T) {
	bucket, object, err := source.SplitGCSURI("gs://risk-bucket/2024/raca.xlsx")
	gt.NoError(t, err).Required()
	gt.Value(t, bucket).Equal("risk-bucket")
	gt.Value(t, object).Equal("2024/raca.xlsx")

	for _, uri := range []string{"gs://", "gs://bucket", "gs://bucket/", "gs:///object"} {
		_, _, err := source.SplitGCSURI(uri)
		gt.Error(t, err).Is(source.ErrInvalidGCSURI)
	}
}

func TestObjectName(t *testing.T) {
	gt.Value(t, source.ObjectName("gs://bucket/dir/raca.xlsx")).Equal("raca.xlsx")
	gt.Value(t, source.ObjectName("file:///tmp/raca.csv")).Equal("raca.csv")
	gt.Value(t, source.ObjectName("data/raca.csv")).Equal("raca.csv")
}

func TestLoad_GCS(t *testing.T) {
	uri := os.Getenv("TEST_GCS_DATASET_URI")
	if uri == "" {
		t.Skip("TEST_GCS_DATASET_URI not set")
	}

	svc := source.New()
	defer svc.Close(context.Background())

	table, err := svc.Load(context.Background(), uri)
	gt.NoError(t, err).Required()
	gt.Number(t, len(table.Headers)).GreaterOrEqual(1)
}
