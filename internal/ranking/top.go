// Package ranking orders agents of a cut report by sales and effectiveness.
package ranking

import (
	"sort"

	"corte-report-go/internal/dataset"
	"corte-report-go/internal/types"
)

// DefaultN is the size of the top list when the caller does not choose one.
const DefaultN = 5

// displayColumns is the preferred column order of the top list.
var displayColumns = []string{
	types.ColUser,
	types.ColRecorrido,
	types.ColContacted,
	types.ColEffective,
	types.ColSales,
	types.ColEffectivenessRate,
	types.ColConversionRate,
}

// TopList is the ranked head of a dataset. Columns lists the display columns
// that the source data can actually fill, in display order.
type TopList struct {
	Columns []string            `json:"columns"`
	Entries []types.RankedEntry `json:"entries"`
}

func (t TopList) Empty() bool { return len(t.Entries) == 0 }

// Top ranks every row by sales (descending) and breaks ties by
// effectiveness (descending), with undefined effectiveness ranking last.
// Rows that tie on both keys keep their source order. At most n entries are
// returned; n <= 0 means DefaultN.
func Top(ds dataset.Dataset, n int) TopList {
	if n <= 0 {
		n = DefaultN
	}
	ds = ds.WithNumeric(types.ColRecorrido, types.ColContacted, types.ColEffective, types.ColSales)

	entries := make([]types.RankedEntry, ds.Len())
	for r := range entries {
		e := types.RankedEntry{
			User:      ds.Text(r, types.ColUser),
			Recorrido: ds.Number(r, types.ColRecorrido),
			Contacted: ds.Number(r, types.ColContacted),
			Effective: ds.Number(r, types.ColEffective),
			Sales:     ds.Number(r, types.ColSales),
		}
		e.Effectiveness = types.NewRatio(e.Effective, e.Contacted)
		e.Conversion = types.NewRatio(e.Sales, e.Effective)
		entries[r] = e
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return higherRatio(a.Effectiveness, b.Effectiveness)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return TopList{Columns: presentColumns(ds), Entries: entries}
}

// higherRatio orders defined ratios above undefined ones.
func higherRatio(a, b types.Ratio) bool {
	switch {
	case a.Valid && b.Valid:
		return a.Value > b.Value
	case a.Valid:
		return true
	default:
		return false
	}
}

func presentColumns(ds dataset.Dataset) []string {
	var out []string
	for _, c := range displayColumns {
		switch c {
		case types.ColEffectivenessRate, types.ColConversionRate:
			// derived per row, always available
			out = append(out, c)
		default:
			if ds.Has(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
