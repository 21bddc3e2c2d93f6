package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"corte-report-go/internal/dataset"
	"corte-report-go/internal/pipeline"
	"corte-report-go/internal/processor"
	"corte-report-go/internal/report"
)

var (
	genSheet  string
	genTopN   int
	genOutDir string
	genFormat string
	genStdout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate the executive report for a cut spreadsheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var source string
		if len(args) == 1 {
			source = args[0]
		}
		opts, err := generateOptions(cmd)
		if err != nil {
			return err
		}

		if genStdout {
			return printReport(cmd.OutOrStdout(), source, opts)
		}

		runner := pipeline.New(log, consoleNotifier{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()})
		res, err := runner.Run(source, opts)
		if err != nil {
			return errReported
		}
		if !res.Started {
			fmt.Fprintln(cmd.ErrOrStderr(), "⚠ Primero seleccione un archivo de corte.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genSheet, "sheet", "", "sheet name to read (default: first sheet)")
	generateCmd.Flags().IntVarP(&genTopN, "top", "n", 5, "number of agents in the top list")
	generateCmd.Flags().StringVarP(&genOutDir, "out-dir", "o", "", "output directory (default: next to the source file)")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "docx", "report format: docx | md")
	generateCmd.Flags().BoolVar(&genStdout, "stdout", false, "print the report as Markdown instead of writing a file")
}

// generateOptions merges config with flags; flags win when set explicitly.
func generateOptions(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{
		Load:      dataset.LoadOptions{Sheet: cfg.Sheet},
		TopN:      cfg.TopN,
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Meta:      report.Meta{Author: cfg.Author},
	}
	f := cmd.Flags()
	if f.Changed("sheet") {
		opts.Load.Sheet = genSheet
	}
	if f.Changed("top") {
		if genTopN <= 0 {
			return pipeline.Options{}, fmt.Errorf("invalid --top %d: must be positive", genTopN)
		}
		opts.TopN = genTopN
	}
	if f.Changed("out-dir") {
		opts.OutputDir = genOutDir
	}
	if f.Changed("format") {
		opts.Format = genFormat
	}
	return opts, nil
}

func printReport(w io.Writer, source string, opts pipeline.Options) error {
	if source == "" {
		return errors.New("a source file is required with --stdout")
	}
	table, err := dataset.Load(source, opts.Load)
	if err != nil {
		return err
	}
	rep, err := processor.Process(table, source, processor.Options{TopN: opts.TopN})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, report.Markdown(report.Build(rep, opts.Meta)))
	return err
}

type consoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n consoleNotifier) Success(outputPath string) {
	fmt.Fprintf(n.out, "✓ Reporte generado correctamente: %s\n", outputPath)
}

func (n consoleNotifier) Failure(err error) {
	var schemaErr *dataset.SchemaError
	if errors.As(err, &schemaErr) {
		fmt.Fprintf(n.errOut, "✗ Faltan columnas obligatorias: %v\n  Columnas presentes: %v\n", schemaErr.Missing, schemaErr.Present)
		return
	}
	fmt.Fprintln(n.errOut, "✗ Ocurrió un error al generar el reporte:", err)
}
