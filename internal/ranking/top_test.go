package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corte-report-go/internal/dataset"
	"corte-report-go/internal/types"
)

func table(rows ...[]string) dataset.Dataset {
	return dataset.New(dataset.Table{
		Header: []string{"Usuario", "Registros Recorrido", "Contactados", "Contacto Efectivo", "Venta"},
		Rows:   rows,
	})
}

func users(top TopList) []string {
	var out []string
	for _, e := range top.Entries {
		out = append(out, e.User)
	}
	return out
}

func TestTop_SalesThenEffectiveness(t *testing.T) {
	top := Top(table(
		[]string{"Ana", "10", "10", "5", "3"},
		[]string{"Luis", "10", "10", "9", "3"},
		[]string{"Eva", "10", "10", "1", "8"},
		[]string{"Raul", "10", "10", "10", "1"},
	), 5)
	assert.Equal(t, []string{"Eva", "Luis", "Ana", "Raul"}, users(top))
}

func TestTop_UndefinedEffectivenessRanksLast(t *testing.T) {
	top := Top(table(
		[]string{"B", "10", "0", "0", "4"},
		[]string{"A", "10", "10", "9", "4"},
	), 5)
	require.Len(t, top.Entries, 2)
	assert.Equal(t, "A", top.Entries[0].User)
	assert.InDelta(t, 0.9, top.Entries[0].Effectiveness.Value, 1e-12)
	assert.False(t, top.Entries[1].Effectiveness.Valid)
	assert.False(t, top.Entries[1].Conversion.Valid)
}

func TestTop_FullTiesKeepSourceOrder(t *testing.T) {
	top := Top(table(
		[]string{"uno", "1", "2", "1", "1"},
		[]string{"dos", "1", "2", "1", "1"},
		[]string{"tres", "1", "0", "0", "1"},
		[]string{"cuatro", "1", "0", "0", "1"},
	), 5)
	assert.Equal(t, []string{"uno", "dos", "tres", "cuatro"}, users(top))
}

func TestTop_BoundsAndDefault(t *testing.T) {
	var rows [][]string
	for _, u := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		rows = append(rows, []string{u, "1", "1", "1", "1"})
	}
	ds := table(rows...)
	assert.Len(t, Top(ds, 3).Entries, 3)
	assert.Len(t, Top(ds, 0).Entries, DefaultN)
	assert.Len(t, Top(ds, 50).Entries, 7)
	assert.True(t, Top(table(), 5).Empty())
}

func TestTop_PerRecordRatios(t *testing.T) {
	top := Top(table(
		[]string{"Ana", "20", "10", "2", "3"},
		[]string{"Luis", "x", "4", "0", "0"},
	), 5)
	require.Len(t, top.Entries, 2)

	ana := top.Entries[0]
	assert.Equal(t, types.RankedEntry{
		User:          "Ana",
		Recorrido:     20,
		Contacted:     10,
		Effective:     2,
		Sales:         3,
		Effectiveness: types.Ratio{Value: 0.2, Valid: true},
		Conversion:    types.Ratio{Value: 1.5, Valid: true},
	}, ana)

	luis := top.Entries[1]
	assert.Equal(t, 0.0, luis.Recorrido)
	assert.Equal(t, types.Ratio{Value: 0, Valid: true}, luis.Effectiveness, "zero rate is defined")
	assert.False(t, luis.Conversion.Valid)
}

func TestTop_ColumnsFollowData(t *testing.T) {
	full := Top(table([]string{"a", "1", "1", "1", "1"}), 5)
	assert.Equal(t, []string{
		types.ColUser, types.ColRecorrido, types.ColContacted, types.ColEffective,
		types.ColSales, types.ColEffectivenessRate, types.ColConversionRate,
	}, full.Columns)

	partial := Top(dataset.New(dataset.Table{
		Header: []string{"Venta", "Usuario", "Contactados", "Contacto Efectivo"},
		Rows:   [][]string{{"2", "a", "1", "1"}},
	}), 5)
	assert.Equal(t, []string{
		types.ColUser, types.ColContacted, types.ColEffective, types.ColSales,
		types.ColEffectivenessRate, types.ColConversionRate,
	}, partial.Columns)
}

func TestTop_DoesNotMutateInput(t *testing.T) {
	ds := table([]string{"a", "1", "x", "1", "1"})
	_ = Top(ds, 5)
	assert.Equal(t, "x", ds.Text(0, types.ColContacted))
	assert.Equal(t, []string{"Usuario", "Registros Recorrido", "Contactados", "Contacto Efectivo", "Venta"}, ds.Columns())
}
