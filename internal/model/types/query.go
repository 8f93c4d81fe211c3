package types

// AnalysisTypes lists the analyses served by /api/analysis/:type.
var AnalysisTypes = []string{
	"ac", "sum", "odd_even", "high_low", "consecutive", "patterns", "last_digits",
	"combinations", "summary", "frequency", "bonus_frequency", "gaps",
}

type StatsQuery struct {
	Refresh bool `query:"refresh"`
}

type RecentQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=10000"`
}

// DrawsQuery selects draws by inclusive index range when Start and End are
// both set, or else by trailing count.
type DrawsQuery struct {
	Start int `query:"start" validate:"omitempty,min=1"`
	End   int `query:"end" validate:"omitempty,min=1,gtefield=Start"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=10000"`
}

// AnalysisQuery overrides the configured aggregation defaults for one
// request. Zero fields keep the default.
type AnalysisQuery struct {
	Limit               int    `query:"limit" validate:"omitempty,min=1,max=10000"`
	Cutoff              int    `query:"cutoff" validate:"omitempty,lottonumber"`
	BucketWidth         int    `query:"bucketWidth" validate:"omitempty,min=1,max=255"`
	DigitSumBucketWidth int    `query:"digitSumBucketWidth" validate:"omitempty,min=1,max=54"`
	TopK                int    `query:"topK" validate:"omitempty,min=1,max=126"`
	OptimalAC           string `query:"optimalAc" validate:"omitempty,max=16"`
}

type DrawIndexParam struct {
	Index int `validate:"required,min=1"`
}

type AnalysisTypeParam struct {
	Type string `validate:"required,caseinsensitiveoneof=ac sum odd_even high_low consecutive patterns last_digits combinations summary frequency bonus_frequency gaps"`
}
