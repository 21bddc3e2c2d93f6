package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"corte-report-go/internal/types"
)

// SchemaError lists the required columns that are missing together with the
// columns that were actually found.
type SchemaError struct {
	Missing []string
	Present []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s (columns present: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Present, ", "))
}

// Validation is the outcome of Validate. Exactly one side is meaningful:
// when OK reports true Dataset holds the prepared snapshot, otherwise
// Missing names the absent required columns.
type Validation struct {
	Dataset Dataset
	Missing []string
	Present []string
}

func (v Validation) OK() bool { return len(v.Missing) == 0 }

// Err returns a *SchemaError for a failed validation and nil otherwise.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return &SchemaError{Missing: v.Missing, Present: v.Present}
}

// Validate prepares a dataset for KPI computation. It coerces the recorrido
// and contacted columns, derives No Contactados as their difference when it
// is absent, then checks that every required column exists. The derived
// value is not clamped and may be negative.
func Validate(ds Dataset) Validation {
	out := ds.WithNumeric(types.ColRecorrido, types.ColContacted)

	if !out.Has(types.ColNotContacted) && out.Has(types.ColRecorrido) && out.Has(types.ColContacted) {
		base := out
		out = base.WithColumn(types.ColNotContacted, func(r int) Value {
			n := base.Number(r, types.ColRecorrido) - base.Number(r, types.ColContacted)
			return Value{Text: strconv.FormatFloat(n, 'f', -1, 64), Number: n, Numeric: true}
		})
	}

	var missing []string
	for _, c := range types.RequiredColumns {
		if !out.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return Validation{Missing: missing, Present: out.Columns()}
	}
	return Validation{Dataset: out, Present: out.Columns()}
}
