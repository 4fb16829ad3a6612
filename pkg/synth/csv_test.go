package synth

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeaderAndOrder(t *testing.T) {
	ds, err := Generate(smallConfig(10))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)

	want := append([]string{ColRecordID}, Columns()...)
	require.Equal(t, want, records[0])

	for i, rec := range records[1:] {
		require.Equal(t, strconv.Itoa(i), rec[0], "record_id must be the 0-based row index")
		require.Len(t, rec, 22)
	}
}

func TestWriteCSVMissingCellsEmpty(t *testing.T) {
	cfg := smallConfig(3000)
	cfg.MissingRate = 0.2 // make missing cells plentiful
	ds, err := Generate(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	require.Contains(t, buf.String(), ",,", "missing values must render as empty cells")

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	eligible := map[string]bool{}
	for _, c := range MissingEligibleColumns() {
		eligible[c] = true
	}
	header := records[0]
	for _, rec := range records[1:] {
		for j, cell := range rec {
			if cell == "" {
				require.True(t, eligible[header[j]], "unexpected empty cell in column %s", header[j])
			}
		}
	}
}

func TestWriteCSVFixedDecimals(t *testing.T) {
	ds, err := Generate(smallConfig(50))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ds))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	decimals := func(s string) int {
		i := strings.IndexByte(s, '.')
		require.NotEqual(t, -1, i, "expected decimal point in %q", s)
		return len(s) - i - 1
	}
	header := records[0]
	col := map[string]int{}
	for j, name := range header {
		col[name] = j
	}
	for _, rec := range records[1:] {
		if v := rec[col[ColPurchase]]; v != "" {
			require.Equal(t, 3, decimals(v))
		}
		if v := rec[col[ColTransaction]]; v != "" {
			require.Equal(t, 2, decimals(v))
		}
		if v := rec[col[ColScore]]; v != "" {
			require.Equal(t, 4, decimals(v))
		}
	}
}
