// =============================================================================
// Sales Cost Computation - Compute Command
// =============================================================================
//
// This file defines the 'compute' command, which runs the full computation
// pipeline. The root command delegates here as well, so both invocation
// shapes behave identically:
//
//   computesales priceCatalogue.json salesRecord1.json [salesRecord2.json ...]
//   computesales compute priceCatalogue.json salesRecord1.json [...]
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Initialize diagnostics
//   3. Load and build the price catalogue
//   4. Load the sales record files (concurrently)
//   5. Aggregate sales costs per file
//   6. Render, print and persist the report
//
// OUTPUT CONTRACT:
//   Standard output carries the load-error lines and the final report, and
//   nothing else. All progress and warnings go to the diagnostic logger,
//   which writes to standard error by default.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/compute-sales/internal/catalogue"
	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/jsonloader"
	"github.com/ginjaninja78/compute-sales/internal/logging"
	"github.com/ginjaninja78/compute-sales/internal/report"
	"github.com/ginjaninja78/compute-sales/internal/sales"
	"github.com/ginjaninja78/compute-sales/internal/types"
	"github.com/ginjaninja78/compute-sales/pkg/utils"
)

// usageLine mirrors the historical usage message of the tool.
const usageLine = "Uso: computesales priceCatalogue.json salesRecord1.json [salesRecord2.json ...]"

// =============================================================================
// COMPUTE COMMAND DEFINITION
// =============================================================================

// computeCmd represents the 'compute' command.
var computeCmd = &cobra.Command{
	Use:   "compute priceCatalogue.json salesRecord1.json [salesRecord2.json ...]",
	Short: "Compute the total cost of sales records against a price catalogue",
	Long: `The compute command loads a JSON price catalogue, builds a title-to-price
index from it, and computes the total cost of every sales record file given
on the command line.

Each sales file is reported independently: its total cost, and the lines
that could not be priced (unknown product or non-numeric quantity). A sales
file that cannot be loaded is excluded from the report; the run only fails
when the catalogue cannot be loaded or when no sales file loads at all.

The report is printed to standard output and persisted to SalesResults.txt
(configurable via config.yaml).`,

	// File arguments are not subcommands; accept any number of them and let
	// the pipeline validate the count.
	Args: cobra.ArbitraryArgs,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompute(args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the compute command with the root command.
func init() {
	rootCmd.AddCommand(computeCmd)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runCompute is the main function that orchestrates the computation pipeline.
func runCompute(args []string) error {
	if len(args) < 2 {
		fmt.Println(usageLine)
		return errors.New("se requieren un catálogo de precios y al menos un archivo de ventas")
	}

	startTime := time.Now()

	cataloguePath := args[0]
	salesPaths := args[1:]

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================
	// The configuration file is optional; defaults reproduce the plain
	// command-line behavior.

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	if verbose {
		mainConfig.LogLevel = "debug"
	}

	// =========================================================================
	// STEP 2: INITIALIZE DIAGNOSTICS
	// =========================================================================
	// Diagnostics go to standard error (or a log file); standard output is
	// reserved for the report itself.

	logger, err := logging.New(&logging.Config{
		Level:  mainConfig.LogLevel,
		Format: mainConfig.LogFormat,
		Output: mainConfig.LogFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize diagnostics: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Tag every diagnostic line of this run with a shared identifier.
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	logger.Info("iniciando cómputo de ventas",
		zap.String("catalogo", cataloguePath),
		zap.Int("archivos_de_ventas", len(salesPaths)),
	)

	// =========================================================================
	// STEP 3: LOAD AND BUILD THE PRICE CATALOGUE
	// =========================================================================
	// A catalogue that cannot be loaded is fatal: without prices there is
	// nothing to compute.

	products, err := jsonloader.LoadRecords(cataloguePath)
	if err != nil {
		fmt.Printf("Error al cargar el archivo %s: %v\n", cataloguePath, err)
		return errors.New("no se pudo cargar el archivo de catálogo de precios")
	}

	priceCatalogue := catalogue.Build(products, logger)
	logger.Info("catálogo de precios construido",
		zap.Int("productos", len(priceCatalogue)),
		zap.Int("registros", len(products)),
	)

	// =========================================================================
	// STEP 4: LOAD SALES RECORD FILES
	// =========================================================================
	// Files are loaded concurrently but reported in command-line order. A
	// file that fails to load is excluded; the run only fails when no file
	// loads at all.

	sources := loadSalesSources(salesPaths, mainConfig.MaxConcurrency, logger)
	if len(sources) == 0 {
		return errors.New("no se pudo cargar ningún archivo de ventas")
	}

	// =========================================================================
	// STEP 5: AGGREGATE SALES COSTS
	// =========================================================================

	results := sales.Aggregate(priceCatalogue, sources)

	// =========================================================================
	// STEP 6: RENDER, PRINT AND PERSIST THE REPORT
	// =========================================================================
	// The same text is printed and written to the report artifact.

	elapsed := time.Since(startTime)
	reportText := report.Render(elapsed, results)

	fmt.Println(reportText)

	reportPath := filepath.Join(mainConfig.OutputDir, mainConfig.ReportFile)

	// Move the previous report aside first when archival is enabled.
	if mainConfig.ArchivePrevious && utils.FileExists(reportPath) {
		fileManager := utils.NewFileManager(mainConfig.OutputDir, mainConfig.ArchiveDir)
		archivePath, err := fileManager.ArchiveReport(reportPath)
		if err != nil {
			logger.Warn("no se pudo archivar el reporte anterior", zap.Error(err))
		} else {
			logger.Info("reporte anterior archivado", zap.String("archivo", archivePath))
		}
	}

	if err := report.Write(reportPath, reportText); err != nil {
		return fmt.Errorf("no se pudo escribir el reporte: %w", err)
	}

	// The spreadsheet export is best-effort: a failure is logged but never
	// invalidates the text report.
	if mainConfig.XLSXReport {
		xlsxPath := filepath.Join(mainConfig.OutputDir, mainConfig.XLSXFile)
		if err := report.WriteXLSX(xlsxPath, elapsed, results); err != nil {
			logger.Warn("no se pudo escribir el reporte xlsx", zap.Error(err))
		} else {
			logger.Info("reporte xlsx escrito", zap.String("archivo", xlsxPath))
		}
	}

	summaryFields := []zap.Field{
		zap.String("archivo", reportPath),
		zap.Int("fuentes", len(results)),
		zap.Int("errores", totalErrors(results)),
		zap.Duration("tiempo", elapsed),
	}
	if size, err := utils.GetFileSize(reportPath); err == nil {
		summaryFields = append(summaryFields, zap.Int64("bytes", size))
	}
	logger.Info("cómputo completado", summaryFields...)

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// loadSalesSources loads the sales record files concurrently.
//
// PARAMETERS:
//   - paths: The sales file paths, in command-line order.
//   - maxConcurrency: The maximum number of files loaded in parallel.
//   - logger: The diagnostic logger.
//
// RETURNS:
//   - One source per successfully loaded file, in command-line order.
//     Files that fail to load are announced on standard output and skipped.
func loadSalesSources(paths []string, maxConcurrency int, logger *zap.Logger) []types.Source {
	var wg sync.WaitGroup

	// Indexed slots keep the command-line order of the results regardless
	// of which file finishes loading first.
	slots := make([]*types.Source, len(paths))
	semaphore := make(chan struct{}, maxConcurrency)

	for i, path := range paths {
		wg.Add(1)

		// Launch a goroutine for each file.
		go func(index int, filePath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			lines, err := jsonloader.LoadRecords(filePath)
			if err != nil {
				fmt.Printf("Error al cargar el archivo %s: %v\n", filePath, err)
				logger.Warn("archivo de ventas excluido",
					zap.String("archivo", filePath),
					zap.Error(err),
				)
				return
			}

			logger.Debug("archivo de ventas cargado",
				zap.String("archivo", filePath),
				zap.Int("registros", len(lines)),
			)

			slots[index] = &types.Source{ID: filePath, Lines: lines}
		}(i, path)
	}

	wg.Wait()

	// Compact the slots: files that failed to load leave gaps.
	var sources []types.Source
	for _, source := range slots {
		if source != nil {
			sources = append(sources, *source)
		}
	}

	return sources
}

// totalErrors counts the line-level errors across all source results.
func totalErrors(results []types.SourceResult) int {
	total := 0
	for _, result := range results {
		total += len(result.Errors)
	}
	return total
}
