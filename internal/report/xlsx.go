// =============================================================================
// Sales Cost Computation - XLSX Report Export
// =============================================================================
//
// This module writes the aggregation results to an XLSX workbook for teams
// that consume the report in a spreadsheet instead of the text artifact.
//
// WORKBOOK STRUCTURE:
//   Sheet "Resumen":
//     - Execution time in seconds
//     - One row per source: file, total cost, error count
//   Sheet "Errores":
//     - One row per error message: file, message, in encounter order
//
// FORMATTING:
//   Total cost cells carry a two-decimal number format, matching the text
//   report's display. The stored cell values remain the unrounded float64
//   totals.
//
// =============================================================================

package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

// Sheet names of the generated workbook.
const (
	summarySheet = "Resumen"
	errorSheet   = "Errores"
)

// twoDecimalNumFmt is the built-in "0.00" number format.
const twoDecimalNumFmt = 2

// =============================================================================
// WORKBOOK GENERATION
// =============================================================================

// WriteXLSX writes the aggregation results to an XLSX workbook.
//
// PARAMETERS:
//   - path: The destination path of the workbook.
//   - elapsed: The measured execution time of the run.
//   - results: The per-source aggregation results, in source order.
//
// RETURNS:
//   - An error if the workbook cannot be assembled or saved.
func WriteXLSX(path string, elapsed time.Duration, results []types.SourceResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(errorSheet); err != nil {
		return fmt.Errorf("failed to create error sheet: %w", err)
	}

	w := &cellWriter{file: f}
	writeSummarySheet(w, elapsed, results)
	writeErrorSheet(w, results)
	if w.err != nil {
		return fmt.Errorf("failed to fill workbook: %w", w.err)
	}

	if err := applyTotalStyle(f, len(results)); err != nil {
		return fmt.Errorf("failed to style workbook: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// writeSummarySheet fills the per-source summary rows.
func writeSummarySheet(w *cellWriter, elapsed time.Duration, results []types.SourceResult) {
	w.set(summarySheet, "A1", "Tiempo de ejecución (segundos)")
	w.set(summarySheet, "B1", elapsed.Seconds())

	w.set(summarySheet, "A3", "Archivo")
	w.set(summarySheet, "B3", "Costo total de las ventas")
	w.set(summarySheet, "C3", "Errores detectados")

	for i, result := range results {
		row := summaryDataStartRow + i
		w.set(summarySheet, fmt.Sprintf("A%d", row), result.ID)
		w.set(summarySheet, fmt.Sprintf("B%d", row), result.TotalCost)
		w.set(summarySheet, fmt.Sprintf("C%d", row), len(result.Errors))
	}
}

// summaryDataStartRow is the first data row of the summary sheet, below the
// execution time block and the header row.
const summaryDataStartRow = 4

// writeErrorSheet fills one row per collected error message.
func writeErrorSheet(w *cellWriter, results []types.SourceResult) {
	w.set(errorSheet, "A1", "Archivo")
	w.set(errorSheet, "B1", "Error")

	row := 2
	for _, result := range results {
		for _, message := range result.Errors {
			w.set(errorSheet, fmt.Sprintf("A%d", row), result.ID)
			w.set(errorSheet, fmt.Sprintf("B%d", row), message)
			row++
		}
	}
}

// applyTotalStyle attaches the two-decimal number format to the total cost
// column of the summary sheet.
func applyTotalStyle(f *excelize.File, resultCount int) error {
	if resultCount == 0 {
		return nil
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimalNumFmt})
	if err != nil {
		return err
	}

	first := fmt.Sprintf("B%d", summaryDataStartRow)
	last := fmt.Sprintf("B%d", summaryDataStartRow+resultCount-1)
	return f.SetCellStyle(summarySheet, first, last, style)
}

// =============================================================================
// CELL WRITER
// =============================================================================

// cellWriter funnels cell writes through a sticky error so sheet-filling
// code stays linear. After the first failure all writes become no-ops.
type cellWriter struct {
	file *excelize.File
	err  error
}

// set writes a single cell value unless a previous write failed.
func (w *cellWriter) set(sheet, cell string, value any) {
	if w.err != nil {
		return
	}
	w.err = w.file.SetCellValue(sheet, cell, value)
}
