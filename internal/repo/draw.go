package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/uptrace/bun"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/repo/selector"
)

const upsertChunkSize = 500

type Draw struct {
	db *bun.DB

	sel selector.S[model.Draw]
}

func NewDraw(db *bun.DB) *Draw {
	return &Draw{
		db:  db,
		sel: selector.New[model.Draw](db),
	}
}

// GetAll returns every draw ordered by draw number ascending.
func (r *Draw) GetAll(ctx context.Context) ([]*model.Draw, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("draw_number ASC")
	})
}

// GetRecent returns the trailing n draws ordered by draw number ascending.
func (r *Draw) GetRecent(ctx context.Context, n int) ([]*model.Draw, error) {
	draws, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("draw_number DESC").Limit(n)
	})
	if err != nil {
		return nil, err
	}

	return lo.Reverse(draws), nil
}

// GetByRange returns the draws whose number lies in [start, end], ascending.
func (r *Draw) GetByRange(ctx context.Context, start, end int) ([]*model.Draw, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("draw_number >= ?", start).
			Where("draw_number <= ?", end).
			Order("draw_number ASC")
	})
}

func (r *Draw) GetByIndex(ctx context.Context, index int) (*model.Draw, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("draw_number = ?", index)
	})
}

// GetLatestIndex returns 0 when the store is empty.
func (r *Draw) GetLatestIndex(ctx context.Context) (int, error) {
	var latest sql.NullInt64
	err := r.db.NewSelect().
		Model((*model.Draw)(nil)).
		ColumnExpr("MAX(draw_number)").
		Scan(ctx, &latest)
	if err != nil {
		return 0, err
	}

	return int(latest.Int64), nil
}

func (r *Draw) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*model.Draw)(nil)).Count(ctx)
}

// BatchUpsert inserts draws, replacing the rows of draw numbers already
// present, in a single transaction.
func (r *Draw) BatchUpsert(ctx context.Context, draws []*model.Draw) (int, error) {
	affected := 0
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, chunk := range lo.Chunk(draws, upsertChunkSize) {
			res, err := tx.NewInsert().
				Model(&chunk).
				On("CONFLICT (draw_number) DO UPDATE").
				Set("num1 = EXCLUDED.num1").
				Set("num2 = EXCLUDED.num2").
				Set("num3 = EXCLUDED.num3").
				Set("num4 = EXCLUDED.num4").
				Set("num5 = EXCLUDED.num5").
				Set("num6 = EXCLUDED.num6").
				Set("bonus = EXCLUDED.bonus").
				Set("draw_date = EXCLUDED.draw_date").
				Exec(ctx)
			if err != nil {
				return errors.Wrapf(err, "upsert draws %d-%d", chunk[0].DrawNumber, chunk[len(chunk)-1].DrawNumber)
			}
			n, _ := res.RowsAffected()
			affected += int(n)
		}
		return nil
	})

	return affected, err
}
