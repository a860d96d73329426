// =============================================================================
// Sales Cost Computation - Report Module
// =============================================================================
//
// This module renders the aggregation results into the final sales report
// and persists it. The same rendered text goes to standard output and to the
// report artifact, byte for byte.
//
// REPORT STRUCTURE:
//   The rendered report follows this layout:
//
//   Tiempo de ejecución: 0.0123 segundos
//
//   Archivo: salesRecord1.json
//   Costo total de las ventas: 30525.00 unidades monetarias
//   Errores detectados:
//   Producto no encontrado en catálogo: Elotes
//   Cantidad inválida para Frijoles: dos
//
//   Archivo: salesRecord2.json
//   Costo total de las ventas: 166568.23 unidades monetarias
//
// FORMATTING:
//   - The execution time is displayed with four decimal places.
//   - Totals are displayed with two decimal places. The underlying float64
//     values are never rounded; only the display is.
//   - The "Errores detectados:" block appears only for sources that have
//     errors, one message per line, in encounter order.
//
// =============================================================================

package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// RENDERING
// =============================================================================

// Render produces the report text for a complete run.
//
// PARAMETERS:
//   - elapsed: The measured execution time of the run.
//   - results: The per-source aggregation results, in source order.
//
// RETURNS:
//   - The rendered report, ending with a newline.
func Render(elapsed time.Duration, results []types.SourceResult) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Tiempo de ejecución: %.4f segundos\n", elapsed.Seconds()))

	for _, result := range results {
		builder.WriteString(fmt.Sprintf("\nArchivo: %s\n", result.ID))
		builder.WriteString(fmt.Sprintf("Costo total de las ventas: %.2f unidades monetarias\n", result.TotalCost))

		if len(result.Errors) > 0 {
			builder.WriteString("Errores detectados:\n")
			builder.WriteString(strings.Join(result.Errors, "\n"))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// Write persists the rendered report verbatim as UTF-8.
//
// PARAMETERS:
//   - path: The destination path of the report artifact.
//   - content: The rendered report text.
//
// RETURNS:
//   - An error if the file cannot be written.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
