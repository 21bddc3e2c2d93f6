package processor

import (
	"path/filepath"
	"time"

	"corte-report-go/internal/actionable"
	"corte-report-go/internal/aggregator"
	"corte-report-go/internal/dataset"
	"corte-report-go/internal/ranking"
	"corte-report-go/internal/types"
)

// Report is everything the document renderer needs for one cut report.
type Report struct {
	Source      string           `json:"source"`
	Sheet       string           `json:"sheet,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
	Rows        int              `json:"rows"`
	TopN        int              `json:"top_n"`
	KPI         types.KPISummary `json:"kpi"`
	Diagnostics []string         `json:"diagnostics"`
	Top         ranking.TopList  `json:"top"`
	Commentary  []string         `json:"commentary"`
}

type Options struct {
	// TopN bounds the ranked list; 0 means ranking.DefaultN.
	TopN int
	// Now stamps the report; nil means time.Now.
	Now func() time.Time
}

// Process runs the whole analysis on a raw table: header normalization,
// schema validation, KPI totals, diagnostics, ranking and commentary. It does
// no I/O. A *dataset.SchemaError is returned when required columns are
// missing.
func Process(t dataset.Table, sourcePath string, opts Options) (Report, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	n := opts.TopN
	if n <= 0 {
		n = ranking.DefaultN
	}

	v := dataset.Validate(dataset.New(t))
	if !v.OK() {
		return Report{}, v.Err()
	}
	ds := v.Dataset

	kpi := aggregator.Summarize(ds)
	top := ranking.Top(ds, n)
	return Report{
		Source:      filepath.Base(sourcePath),
		Sheet:       t.Sheet,
		GeneratedAt: now(),
		Rows:        ds.Len(),
		TopN:        n,
		KPI:         kpi,
		Diagnostics: actionable.Diagnose(kpi),
		Top:         top,
		Commentary:  actionable.Compare(top.Entries),
	}, nil
}
