package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/davidbz/energysim/internal/config"
	"github.com/davidbz/energysim/internal/domain"
	"github.com/davidbz/energysim/internal/reading"
)

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

var (
	importSource  string
	importHeating string
	importFile    string
)

var importCmd = &cobra.Command{
	Use:   "import power|gas",
	Short: "Price a meter reading export and print the monthly report",
	Long: `Price a CSV export of cumulative meter readings and print the
accumulated monthly report as JSON.

Examples:
  energysim import power --source dynamic
  energysim import gas --source battery --heating heatpump --file gas.csv`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.EnergyPower), string(domain.EnergyGas)},
	RunE:      runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importSource, "source", "", "contract: fixed, dynamic or battery")
	importCmd.Flags().StringVar(&importHeating, "heating", "", "gas heating: boiler or heatpump")
	importCmd.Flags().StringVar(&importFile, "file", "", "CSV export (defaults to FILES_POWER_CSV / FILES_GAS_CSV)")
}

func runImport(cmd *cobra.Command, args []string) error {
	energy, err := domain.ParseEnergyType(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	params, err := domain.ParseImportParams(energy, importSource, importHeating)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	container, err := buildContainer()
	if err != nil {
		return err
	}

	err = container.Invoke(func(imports *domain.ImportService, files *config.FilesConfig, cfg *config.ImportConfig) error {
		path := importFile
		if path == "" {
			path = files.PowerCSV
			if energy == domain.EnergyGas {
				path = files.GasCSV
			}
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open readings: %w", err)
		}
		defer f.Close()

		ctx := cmd.Context()
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}

		report, err := runImportStream(ctx, imports, params, f)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", dig.RootCause(err))
	}
	return nil
}

func runImportStream(
	ctx context.Context,
	imports *domain.ImportService,
	params domain.ImportParams,
	r io.Reader,
) (domain.AccumulationReport, error) {
	if params.Energy == domain.EnergyGas {
		return imports.ImportGas(ctx, params, reading.GasReadings(r))
	}
	return imports.ImportPower(ctx, params, reading.PowerReadings(r))
}
