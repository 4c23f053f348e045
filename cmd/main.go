package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "energysim",
	Short: "Price meter readings under fixed, dynamic and battery contracts",
	Long: `energysim turns cumulative power and gas meter readings into hourly
consumptions, prices them under a fixed, dynamic or battery contract and
reports monthly totals.

Commands:
  energysim serve                                   # Start the HTTP API
  energysim import power --source dynamic           # Price the power export once
  energysim import gas --source fixed --heating boiler`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
