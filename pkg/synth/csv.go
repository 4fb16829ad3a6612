package synth

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteCSV serializes the dataset as UTF-8 comma-delimited text: a header of
// record_id plus the 21 data columns, then one row per record in index order.
// Missing values render as empty cells. Output is byte-stable for a given
// dataset.
func WriteCSV(w io.Writer, d *Dataset) error {
	cw := csv.NewWriter(w)

	header := append([]string{ColRecordID}, Columns()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("synth: write header: %w", err)
	}

	rec := make([]string, len(header))
	for i := 0; i < d.Rows(); i++ {
		rec[0] = strconv.Itoa(i)
		rec[1] = strconv.Itoa(d.AgeCode[i])
		rec[2] = strconv.Itoa(d.CityCode[i])
		rec[3] = strconv.Itoa(d.IncomeCode[i])
		rec[4] = strconv.Itoa(d.EduCode[i])
		rec[5] = d.AgeLabel[i]
		rec[6] = d.CityLabel[i]
		rec[7] = d.IncomeLabel[i]
		rec[8] = d.EduLabel[i]
		rec[9] = strconv.Itoa(d.HouseholdSize[i])
		rec[10] = formatCell(d.PurchaseFreq[i], 3)
		rec[11] = formatCell(d.TransactionValue[i], 2)
		rec[12] = formatCell(d.DigitalLiteracy[i], 4)
		rec[13] = formatCell(d.Awareness[i], 4)
		rec[14] = formatCell(d.PriceSensitivity[i], 4)
		rec[15] = formatCell(d.Availability[i], 4)
		rec[16] = formatCell(d.AgeScaled[i], 4)
		rec[17] = formatCell(d.TierScaled[i], 4)
		rec[18] = formatCell(d.IncomeScaled[i], 4)
		rec[19] = formatCell(d.Quality[i], 4)
		rec[20] = formatCell(d.AdoptionScore[i], 4)
		rec[21] = strconv.Itoa(d.AdoptionBinary[i])
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("synth: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the dataset to path, creating or truncating it.
func WriteCSVFile(path string, d *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("synth: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, d); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatCell renders a float with fixed decimals; NaN is the missing cell.
func formatCell(v float64, places int) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}
