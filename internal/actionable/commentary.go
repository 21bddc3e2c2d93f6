package actionable

import (
	"fmt"

	"corte-report-go/internal/types"
)

const (
	noComparisonData    = "No hay datos para análisis comparativo del Top."
	noEffectivenessData = "Ningún agente del Top tiene contactos registrados; no es posible comparar efectividad."
)

// Compare contrasts the sales leader of a ranked list with its most
// effective agent. The list must already be sorted by sales, so the leader is
// its first entry. The most effective agent is the first one holding the
// highest defined effectiveness.
func Compare(top []types.RankedEntry) []string {
	if len(top) == 0 {
		return []string{noComparisonData}
	}

	leader := top[0]
	msgs := []string{
		fmt.Sprintf("%s lidera en ventas con %d cierres.", leader.User, int64(leader.Sales)),
	}

	best, ok := mostEffective(top)
	if !ok {
		return append(msgs, noEffectivenessData)
	}
	msgs = append(msgs, fmt.Sprintf("%s presenta la mayor efectividad (%s) en contactos.", best.User, best.Effectiveness.Percent(0)))

	if leader.User == best.User {
		msgs = append(msgs, fmt.Sprintf("Se confirma un desempeño integral: %s lidera tanto en volumen como en eficiencia.", leader.User))
	} else {
		msgs = append(msgs, fmt.Sprintf("Hallazgo: %s domina el volumen de cierres, mientras %s destaca por la eficiencia. Conviene compartir prácticas de ambos.", leader.User, best.User))
	}
	return msgs
}

func mostEffective(top []types.RankedEntry) (types.RankedEntry, bool) {
	var best types.RankedEntry
	found := false
	for _, e := range top {
		if !e.Effectiveness.Valid {
			continue
		}
		if !found || e.Effectiveness.Value > best.Effectiveness.Value {
			best, found = e, true
		}
	}
	return best, found
}
