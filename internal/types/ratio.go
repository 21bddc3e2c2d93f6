package types

import (
	"encoding/json"
	"fmt"
)

// Ratio is a per-record rate that may be undefined when its denominator is
// zero. Undefined means "no data", which is not the same as a zero rate.
type Ratio struct {
	Value float64
	Valid bool
}

// NewRatio returns num/den, or an undefined Ratio when den is zero.
func NewRatio(num, den float64) Ratio {
	if den == 0 {
		return Ratio{}
	}
	return Ratio{Value: num / den, Valid: true}
}

// Percent renders the ratio as a percentage with the given decimals, or
// "N/D" when undefined.
func (r Ratio) Percent(decimals int) string {
	if !r.Valid {
		return "N/D"
	}
	return Percent(r.Value, decimals)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = Ratio{}
		return nil
	}
	if err := json.Unmarshal(b, &r.Value); err != nil {
		return err
	}
	r.Valid = true
	return nil
}

// Percent formats a fraction as a percentage, e.g. Percent(0.125, 1) == "12.5%".
func Percent(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}
