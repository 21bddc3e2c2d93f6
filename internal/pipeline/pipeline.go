// Package pipeline runs one report generation end to end: load the source
// spreadsheet, process it and write the document next to it.
package pipeline

import (
	"time"

	"corte-report-go/internal/dataset"
	"corte-report-go/internal/logger"
	"corte-report-go/internal/processor"
	"corte-report-go/internal/report"
)

// Notifier is the surface that tells the user how a generation ended.
type Notifier interface {
	Success(outputPath string)
	Failure(err error)
}

type Options struct {
	Load      dataset.LoadOptions
	TopN      int
	OutputDir string
	Format    string
	Meta      report.Meta
	Now       func() time.Time
}

type Result struct {
	// Started is false when no source file was supplied.
	Started    bool
	OutputPath string
	Report     processor.Report
}

type Runner struct {
	log    *logger.Logger
	notify Notifier
}

func New(log *logger.Logger, notify Notifier) *Runner {
	if notify == nil {
		notify = LogNotifier{Log: log}
	}
	return &Runner{log: log.Component("pipeline"), notify: notify}
}

// Run generates the report for sourcePath. An empty path is a no-op. Any
// error aborts before the output file is created.
func (r *Runner) Run(sourcePath string, opts Options) (Result, error) {
	if sourcePath == "" {
		r.log.Info("no source file selected, nothing to do")
		return Result{}, nil
	}
	log := r.log.WithSource(sourcePath)
	start := time.Now()

	ext, err := report.Extension(opts.Format)
	if err != nil {
		return r.fail(err)
	}

	table, err := dataset.Load(sourcePath, opts.Load)
	if err != nil {
		return r.fail(err)
	}
	log.WithField("sheet", table.Sheet).WithField("rows", len(table.Rows)).Info("source loaded")

	rep, err := processor.Process(table, sourcePath, processor.Options{TopN: opts.TopN, Now: opts.Now})
	if err != nil {
		return r.fail(err)
	}

	out := report.OutputPath(sourcePath, opts.OutputDir, rep.GeneratedAt, ext)
	if err := report.Save(out, report.Build(rep, opts.Meta), opts.Format); err != nil {
		return r.fail(err)
	}
	log.WithField("output", out).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("report generated")

	r.notify.Success(out)
	return Result{Started: true, OutputPath: out, Report: rep}, nil
}

func (r *Runner) fail(err error) (Result, error) {
	r.log.WithError(err).Error("report generation failed")
	r.notify.Failure(err)
	return Result{Started: true}, err
}

// LogNotifier reports outcomes through the structured logger.
type LogNotifier struct {
	Log *logger.Logger
}

func (n LogNotifier) Success(outputPath string) {
	n.Log.WithField("output", outputPath).Info("report ready")
}

func (n LogNotifier) Failure(err error) {
	n.Log.WithError(err).Warn("report not generated")
}
