package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/repo/selector"
)

// Snapshot stores the publication history of static stats snapshots.
type Snapshot struct {
	db  *bun.DB
	sel selector.S[model.Snapshot]
}

func NewSnapshot(db *bun.DB) *Snapshot {
	return &Snapshot{
		db:  db,
		sel: selector.New[model.Snapshot](db),
	}
}

// GetLatest returns the most recently published snapshot, or
// apierr.ErrNotFound before the first publication.
func (s *Snapshot) GetLatest(ctx context.Context) (*model.Snapshot, error) {
	return s.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("snapshot_id DESC").Limit(1)
	})
}

func (s *Snapshot) SaveSnapshot(ctx context.Context, snapshot *model.Snapshot) (*model.Snapshot, error) {
	if _, err := s.db.NewInsert().Model(snapshot).Returning("*").Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "insert snapshot "+snapshot.ULID)
	}
	return snapshot, nil
}
