package drawio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

// ReadJSONL reads one lottery API result object per line:
//
//	{"returnValue":"success","drwNo":1,"drwNoDate":"2002-12-07","drwtNo1":10,...,"drwtNo6":40,"bnusNo":16}
//
// Lines whose returnValue is "fail" are skipped; blank lines are ignored.
func ReadJSONL(r io.Reader) ([]drawstats.Draw, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	draws := []drawstats.Draw{}
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 {
			continue
		}
		if !gjson.ValidBytes(b) {
			return nil, errors.Errorf("jsonl line %d: invalid json", line)
		}

		result := gjson.ParseBytes(b)
		if result.Get("returnValue").String() == "fail" {
			continue
		}

		d, err := drawFromResult(result)
		if err != nil {
			return nil, errors.Wrapf(err, "jsonl line %d", line)
		}
		draws = append(draws, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read jsonl")
	}
	return draws, nil
}

func drawFromResult(result gjson.Result) (drawstats.Draw, error) {
	fields := make([]string, 0, csvColumns)
	fields = append(fields, "drwNo")
	for i := 1; i <= drawstats.NumbersPerDraw; i++ {
		fields = append(fields, "drwtNo"+strconv.Itoa(i))
	}
	fields = append(fields, "bnusNo")

	values := gjson.GetMany(result.Raw, fields...)
	ints := make([]int, len(values))
	for i, v := range values {
		if v.Type != gjson.Number {
			return drawstats.Draw{}, errors.Errorf("field %s: expected a number", fields[i])
		}
		ints[i] = int(v.Int())
	}

	date, err := parseDate(result.Get("drwNoDate").String())
	if err != nil {
		return drawstats.Draw{}, errors.Wrap(err, "field drwNoDate")
	}

	return drawstats.Draw{
		Index:   ints[0],
		Numbers: ints[1 : 1+drawstats.NumbersPerDraw],
		Bonus:   ints[csvColumns-1],
		Date:    date,
	}, nil
}
