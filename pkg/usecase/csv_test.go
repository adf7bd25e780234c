package usecase_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/raca/pkg/usecase"
)

func TestWriteTableCSV(t *testing.T) {
	ds := sampleDataset(t)

	var buf bytes.Buffer
	gt.NoError(t, usecase.WriteTableCSV(&buf, usecase.Table(ds, "Accounts Payable"))).Required()

	records, err := csv.NewReader(&buf).ReadAll()
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(3)
	gt.Value(t, records[0]).Equal(usecase.TableHeader)

	gt.Value(t, records[1][1]).Equal("AP-P02-R01")
	gt.Value(t, records[1][7]).Equal("25")
	gt.Value(t, records[1][8]).Equal("9")
	gt.Value(t, records[1][9]).Equal("Accounts Payable")

	// missing net impact leaves the net risk cell empty
	gt.Value(t, records[2][1]).Equal("AP-P02-R02")
	gt.Value(t, records[2][7]).Equal("9")
	gt.Value(t, records[2][8]).Equal("")
}

func TestWriteTableCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, usecase.WriteTableCSV(&buf, nil)).Required()

	records, err := csv.NewReader(&buf).ReadAll()
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(1)
}
