package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/units/units"
)

var (
	logLevel    string // Log verbosity level
	catalogPath string // Optional YAML unit catalog; empty selects the built-in catalog
	strict      bool   // Use the recursive compatibility engine for + and -
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "units",
	Short: "Arithmetic and conversion for physical quantities",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// convertCmd converts an amount between two units of the same dimension
var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert an amount from one unit to another",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustLoadCatalog(catalogPath)
		if err := runConvert(cmd.OutOrStdout(), cat, args); err != nil {
			logrus.Fatalf("convert: %v", err)
		}
	},
}

// calcCmd applies one operator to two quantities
var calcCmd = &cobra.Command{
	Use:   "calc <amount> <unit> <op> <amount> <unit>",
	Short: "Combine two quantities with +, -, * or /",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		cat := mustLoadCatalog(catalogPath)
		if err := runCalc(cmd.OutOrStdout(), cat, engine(), args); err != nil {
			logrus.Fatalf("calc: %v", err)
		}
	},
}

// catalogCmd lists the units of the active catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available units",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		renderCatalog(cmd.OutOrStdout(), mustLoadCatalog(catalogPath))
	},
}

func engine() units.Engine {
	if strict {
		return units.StrictEngine
	}
	return units.DefaultEngine
}

func mustLoadCatalog(path string) *units.Catalog {
	cat, err := loadCatalog(path)
	if err != nil {
		logrus.Fatalf("Failed to load unit catalog: %v", err)
	}
	return cat
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a YAML unit catalog (default: built-in units)")
	calcCmd.Flags().BoolVar(&strict, "strict", false, "Check compatibility of nested compound units recursively")

	rootCmd.AddCommand(convertCmd, calcCmd, catalogCmd)
}
