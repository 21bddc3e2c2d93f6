package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"corte-report-go/internal/config"
	"corte-report-go/internal/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
)

// errReported marks failures the notifier has already shown to the user.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:           "corte",
	Short:         "Executive analysis of call-center cut reports",
	Long:          "Reads a cut report spreadsheet, computes contact, effectiveness, conversion and penetration KPIs, ranks the top agents and writes a narrative Word report.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		// stdout may carry a Markdown report
		log = logger.NewTo(os.Stderr)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "✗ Error:", err)
		}
		os.Exit(1)
	}
}
