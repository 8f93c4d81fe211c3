package testentry

import (
	"context"
	"sort"
	"sync"

	"github.com/lotto-stats/backend/internal/model"
	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

// Draw is a valid draw whose numbers depend on index only.
func Draw(index int) drawstats.Draw {
	base := (index * 7) % 39
	return drawstats.Draw{
		Index:   index,
		Numbers: []int{base + 1, base + 2, base + 4, base + 5, base + 6, base + 7},
		Bonus:   base + 3,
	}
}

// Draws returns Draw(1) to Draw(n).
func Draws(n int) []drawstats.Draw {
	draws := make([]drawstats.Draw, n)
	for i := range draws {
		draws[i] = Draw(i + 1)
	}
	return draws
}

// MemorySource keeps draws in memory, ordered by index.
type MemorySource struct {
	mu   sync.RWMutex
	rows []*model.Draw
}

func NewMemorySource(draws []drawstats.Draw) *MemorySource {
	rows := make([]*model.Draw, len(draws))
	for i, d := range draws {
		rows[i] = model.DrawFrom(d)
	}
	s := &MemorySource{}
	if _, err := s.BatchUpsert(context.Background(), rows); err != nil {
		panic(err)
	}
	return s
}

func (s *MemorySource) GetAll(context.Context) ([]*model.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Draw{}, s.rows...), nil
}

func (s *MemorySource) GetRecent(_ context.Context, n int) ([]*model.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n >= len(s.rows) {
		return append([]*model.Draw{}, s.rows...), nil
	}
	return append([]*model.Draw{}, s.rows[len(s.rows)-n:]...), nil
}

func (s *MemorySource) GetByRange(_ context.Context, start, end int) ([]*model.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := []*model.Draw{}
	for _, r := range s.rows {
		if r.DrawNumber >= start && r.DrawNumber <= end {
			rows = append(rows, r)
		}
	}
	return rows, nil
}

func (s *MemorySource) GetByIndex(_ context.Context, index int) (*model.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if r.DrawNumber == index {
			return r, nil
		}
	}
	return nil, apierr.ErrNotFound
}

func (s *MemorySource) GetLatestIndex(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.rows) == 0 {
		return 0, nil
	}
	return s.rows[len(s.rows)-1].DrawNumber, nil
}

func (s *MemorySource) Count(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), nil
}

// BatchUpsert replaces draws sharing an index and keeps the rows sorted.
func (s *MemorySource) BatchUpsert(_ context.Context, draws []*model.Draw) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byIndex := make(map[int]*model.Draw, len(s.rows)+len(draws))
	for _, r := range s.rows {
		byIndex[r.DrawNumber] = r
	}
	for _, d := range draws {
		byIndex[d.DrawNumber] = d
	}

	s.rows = make([]*model.Draw, 0, len(byIndex))
	for _, r := range byIndex {
		s.rows = append(s.rows, r)
	}
	sort.Slice(s.rows, func(i, j int) bool {
		return s.rows[i].DrawNumber < s.rows[j].DrawNumber
	})
	return len(draws), nil
}
