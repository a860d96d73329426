// =============================================================================
// Sales Cost Computation - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'compute', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (computesales)
//   ├── computeCmd (computesales compute)
//   └── versionCmd (computesales version)
//
// The root command also accepts the file arguments directly, so the
// historical invocation shape keeps working without a subcommand:
//
//   computesales priceCatalogue.json salesRecord1.json [salesRecord2.json ...]
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Delegating the file arguments to the compute pipeline
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. It accepts the price catalogue and
// sales record files as positional arguments and runs the compute pipeline
// on them.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	// This is what appears in help text and error messages.
	Use: "computesales priceCatalogue.json salesRecord1.json [salesRecord2.json ...]",

	// Short is a short description shown in the 'help' output.
	Short: "Sales Cost Computation - Compute the total cost of sales records against a price catalogue",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `Sales Cost Computation is a CLI tool that computes the total cost of one
or more sales record files against a price catalogue.

The first argument is a JSON price catalogue (a list of products with a
"title" and a "price"). Every following argument is a JSON sales record
file (a list of sales with a "Product" and a "Quantity"). The program
prints a report with the total cost per file and writes the same report
to SalesResults.txt.

Invalid catalogue entries are dropped with a warning. Sales lines that
reference unknown products or carry non-numeric quantities are reported
in the "Errores detectados" block of the file they belong to; they never
abort the run.

Example Usage:
  computesales priceCatalogue.json salesRecord.json
  computesales priceCatalogue.json enero.json febrero.json marzo.json
  computesales --config ./my.yaml priceCatalogue.json salesRecord.json`,

	// File arguments are not subcommands; accept any number of them and let
	// the pipeline validate the count.
	Args: cobra.ArbitraryArgs,

	// Errors are reported once by Execute.
	SilenceUsage:  true,
	SilenceErrors: true,

	// RunE forwards the file arguments to the compute pipeline.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init is called automatically when the package is loaded.
// It sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// Default is "config.yaml" in the current directory. The file is
	// optional; defaults apply when it does not exist.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
