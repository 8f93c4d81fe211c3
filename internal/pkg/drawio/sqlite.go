package drawio

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

const legacyQuery = `SELECT draw_number, num1, num2, num3, num4, num5, num6, bonus, draw_date
FROM lotto_results ORDER BY draw_number`

// ReadSQLite reads the lotto_results table of a legacy SQLite database.
func ReadSQLite(ctx context.Context, path string) ([]drawstats.Draw, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, legacyQuery)
	if err != nil {
		return nil, errors.Wrap(err, "query lotto_results")
	}
	defer rows.Close()

	draws := []drawstats.Draw{}
	for rows.Next() {
		var (
			d       drawstats.Draw
			numbers = make([]int, drawstats.NumbersPerDraw)
			date    sql.NullString
		)
		err := rows.Scan(&d.Index, &numbers[0], &numbers[1], &numbers[2], &numbers[3], &numbers[4], &numbers[5], &d.Bonus, &date)
		if err != nil {
			return nil, errors.Wrap(err, "scan lotto_results row")
		}
		d.Numbers = numbers
		if d.Date, err = parseDate(date.String); err != nil {
			return nil, errors.Wrapf(err, "draw %d date", d.Index)
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate lotto_results")
	}
	return draws, nil
}
