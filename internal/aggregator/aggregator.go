package aggregator

import (
	"corte-report-go/internal/dataset"
	"corte-report-go/internal/types"
)

// Summarize totals the counter columns of a validated dataset and derives the
// four headline ratios. A ratio with a zero denominator is reported as 0.
func Summarize(ds dataset.Dataset) types.KPISummary {
	ds = ds.WithNumeric(types.CounterColumns...)

	k := types.KPISummary{
		TotalRecorrido:     int64(ds.Sum(types.ColRecorrido)),
		TotalContacted:     int64(ds.Sum(types.ColContacted)),
		TotalEffective:     int64(ds.Sum(types.ColEffective)),
		TotalInvalid:       int64(ds.Sum(types.ColInvalid)),
		TotalNotContacted:  int64(ds.Sum(types.ColNotContacted)),
		TotalSales:         int64(ds.Sum(types.ColSales)),
		TotalNotApplicable: int64(ds.Sum(types.ColNotApplicable)),
	}
	k.Contactability = rate(k.TotalContacted, k.TotalRecorrido)
	k.Effectiveness = rate(k.TotalEffective, k.TotalContacted)
	k.Conversion = rate(k.TotalSales, k.TotalEffective)
	k.Penetration = rate(k.TotalSales, k.TotalRecorrido)
	return k
}

func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
