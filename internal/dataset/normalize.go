package dataset

import (
	"strings"

	"corte-report-go/internal/types"
)

// aliases maps lowercased, unaccented header spellings to canonical names.
// "no contatados" is a misspelling found in real exports.
var aliases = map[string]string{
	"super":                types.ColSuper,
	"usuario":              types.ColUser,
	"registros recorrido":  types.ColRecorrido,
	"registros recorridos": types.ColRecorrido,
	"spin rate":            types.ColSpinRate,
	"contactados":          types.ColContacted,
	"contacto efectivo":    types.ColEffective,
	"contacto no valido":   types.ColInvalid,
	"no contatados":        types.ColNotContacted,
	"no contactados":       types.ColNotContacted,
	"venta":                types.ColSales,
	"no aplica":            types.ColNotApplicable,
	"% contactabilidad":    types.ColContactabilityPct,
	"%c/efectivo":          types.ColEffectivePct,
	"conversion":           types.ColConversion,
	"penetracion":          types.ColPenetration,
}

var (
	newlineCollapser = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")
	accentFolder     = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n")
)

// NormalizeHeader maps a raw header to its canonical name. Unknown headers
// come back trimmed with newlines collapsed, otherwise untouched.
func NormalizeHeader(raw string) string {
	clean := newlineCollapser.Replace(strings.TrimSpace(raw))
	key := accentFolder.Replace(strings.ToLower(clean))
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return clean
}

// NormalizeHeaders applies NormalizeHeader to every header, keeping order.
func NormalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
