package drawio

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

// csvColumns is draw_number, six numbers and bonus; the date column is optional.
const csvColumns = 2 + drawstats.NumbersPerDraw

// ReadCSV reads rows of draw_number,n1,...,n6,bonus[,date]. A leading header
// row is skipped when its first field is not a number.
func ReadCSV(r io.Reader) ([]drawstats.Draw, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	draws := []drawstats.Draw{}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "csv line %d", line)
		}
		if line == 1 && isHeader(record) {
			continue
		}

		d, err := drawFromRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "csv line %d", line)
		}
		draws = append(draws, d)
	}
	return draws, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[0]))
	return err != nil
}

func drawFromRecord(record []string) (drawstats.Draw, error) {
	if len(record) != csvColumns && len(record) != csvColumns+1 {
		return drawstats.Draw{}, errors.Errorf("expected %d or %d fields, got %d", csvColumns, csvColumns+1, len(record))
	}

	ints := make([]int, csvColumns)
	for i := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(record[i]))
		if err != nil {
			return drawstats.Draw{}, errors.Wrapf(err, "field %d", i+1)
		}
		ints[i] = v
	}

	d := drawstats.Draw{
		Index:   ints[0],
		Numbers: ints[1 : 1+drawstats.NumbersPerDraw],
		Bonus:   ints[csvColumns-1],
	}
	if len(record) > csvColumns {
		date, err := parseDate(record[csvColumns])
		if err != nil {
			return drawstats.Draw{}, errors.Wrap(err, "date")
		}
		d.Date = date
	}
	return d, nil
}
