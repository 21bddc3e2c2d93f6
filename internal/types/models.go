package types

// Canonical column names of a cut report.
const (
	ColSuper             = "SUPER"
	ColUser              = "Usuario"
	ColRecorrido         = "Registros Recorrido"
	ColSpinRate          = "Spin Rate"
	ColContacted         = "Contactados"
	ColEffective         = "Contacto Efectivo"
	ColInvalid           = "Contacto No Valido"
	ColNotContacted      = "No Contactados"
	ColSales             = "Venta"
	ColNotApplicable     = "No Aplica"
	ColContactabilityPct = "% Contactabilidad"
	ColEffectivePct      = "%C/Efectivo"
	ColConversion        = "Conversión"
	ColPenetration       = "Penetración"

	// per-record ratio columns produced by the ranker
	ColEffectivenessRate = "%Efectividad"
	ColConversionRate    = "%Conversión"
)

// CounterColumns are the seven count fields summed into the KPI totals.
var CounterColumns = []string{
	ColRecorrido,
	ColContacted,
	ColEffective,
	ColInvalid,
	ColNotContacted,
	ColSales,
	ColNotApplicable,
}

// RequiredColumns must all be present after normalization and inference.
var RequiredColumns = append([]string{ColUser}, CounterColumns...)

// KPISummary holds dataset-wide totals and derived ratios. Ratios default to
// zero when their denominator is zero and are not capped at 1.
type KPISummary struct {
	TotalRecorrido     int64 `json:"tot_recorridos"`
	TotalContacted     int64 `json:"tot_contactados"`
	TotalEffective     int64 `json:"tot_efectivos"`
	TotalInvalid       int64 `json:"tot_no_validos"`
	TotalNotContacted  int64 `json:"tot_no_contactados"`
	TotalSales         int64 `json:"tot_ventas"`
	TotalNotApplicable int64 `json:"tot_no_aplica"`

	Contactability float64 `json:"contactabilidad"`
	Effectiveness  float64 `json:"efectividad"`
	Conversion     float64 `json:"conversion"`
	Penetration    float64 `json:"penetracion"`
}

// RankedEntry is one row of the top-N list.
type RankedEntry struct {
	User          string  `json:"usuario"`
	Recorrido     float64 `json:"registros_recorrido"`
	Contacted     float64 `json:"contactados"`
	Effective     float64 `json:"contacto_efectivo"`
	Sales         float64 `json:"venta"`
	Effectiveness Ratio   `json:"efectividad"`
	Conversion    Ratio   `json:"conversion"`
}
