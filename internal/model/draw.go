package model

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

type Draw struct {
	bun.BaseModel `bun:"lotto_draws"`

	DrawNumber int        `bun:"draw_number,pk" json:"draw_number"`
	Num1       int        `bun:"num1,notnull" json:"num1"`
	Num2       int        `bun:"num2,notnull" json:"num2"`
	Num3       int        `bun:"num3,notnull" json:"num3"`
	Num4       int        `bun:"num4,notnull" json:"num4"`
	Num5       int        `bun:"num5,notnull" json:"num5"`
	Num6       int        `bun:"num6,notnull" json:"num6"`
	Bonus      int        `bun:"bonus,notnull" json:"bonus"`
	DrawDate   *time.Time `bun:"draw_date,type:date" json:"draw_date"`
	CreatedAt  time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

func (d *Draw) Numbers() []int {
	return []int{d.Num1, d.Num2, d.Num3, d.Num4, d.Num5, d.Num6}
}

func (d *Draw) ToDraw() drawstats.Draw {
	return drawstats.Draw{
		Index:   d.DrawNumber,
		Numbers: d.Numbers(),
		Bonus:   d.Bonus,
		Date:    d.DrawDate,
	}
}

// DrawFrom stores the primary numbers sorted ascending. d must be valid.
func DrawFrom(d drawstats.Draw) *Draw {
	n := d.Sorted()
	return &Draw{
		DrawNumber: d.Index,
		Num1:       n[0],
		Num2:       n[1],
		Num3:       n[2],
		Num4:       n[3],
		Num5:       n[4],
		Num6:       n[5],
		Bonus:      d.Bonus,
		DrawDate:   d.Date,
	}
}

func ToDraws(rows []*Draw) []drawstats.Draw {
	draws := make([]drawstats.Draw, len(rows))
	for i, r := range rows {
		draws[i] = r.ToDraw()
	}
	return draws
}
