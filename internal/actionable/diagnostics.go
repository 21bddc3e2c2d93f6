package actionable

import (
	"fmt"

	"corte-report-go/internal/types"
)

// Diagnostic thresholds. Contactability and conversion are "low" strictly
// below their threshold; effectiveness is "solid" at or above its own.
const (
	LowContactability  = 0.35
	SolidEffectiveness = 0.85
	LowConversion      = 0.10
)

// Diagnose turns the headline KPIs into four assessment sentences, always in
// the order contactability, effectiveness, conversion, penetration.
func Diagnose(k types.KPISummary) []string {
	msgs := make([]string, 0, 4)

	if k.Contactability < LowContactability {
		msgs = append(msgs, fmt.Sprintf("La contactabilidad es baja (%s). Urge mejorar horarios, marcación multicanal y calidad de bases.", types.Percent(k.Contactability, 0)))
	} else {
		msgs = append(msgs, fmt.Sprintf("Buena contactabilidad (%s). Mantener estrategia y ampliar ventanas horarias.", types.Percent(k.Contactability, 0)))
	}

	if k.Effectiveness >= SolidEffectiveness {
		msgs = append(msgs, fmt.Sprintf("La efectividad sobre contactados es sólida (%s). El discurso funciona.", types.Percent(k.Effectiveness, 0)))
	} else {
		msgs = append(msgs, fmt.Sprintf("La efectividad es mejorable (%s). Revisar objeciones y guion.", types.Percent(k.Effectiveness, 0)))
	}

	if k.Conversion < LowConversion {
		msgs = append(msgs, fmt.Sprintf("La conversión sobre contactos efectivos es baja (%s). Ajustar oferta, cross-sell y cierres.", types.Percent(k.Conversion, 1)))
	} else {
		msgs = append(msgs, fmt.Sprintf("Conversión saludable (%s). Replicar mejores prácticas.", types.Percent(k.Conversion, 1)))
	}

	msgs = append(msgs, fmt.Sprintf("Penetración global: %s sobre la base recorrida.", types.Percent(k.Penetration, 1)))
	return msgs
}
