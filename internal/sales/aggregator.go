// =============================================================================
// Sales Cost Computation - Sales Aggregator Module
// =============================================================================
//
// This module folds sale lines into per-source totals by joining each line
// against the price catalogue. Sale lines come straight from JSON decoding
// and are not validated for shape beforehand; every field is checked at
// read time.
//
// AGGREGATION RULES:
//   For each sale line, in file order, exactly one of the following applies:
//   1. The "Product" field is not a key of the catalogue (absent, wrong
//      type, or simply unknown): record an error, contribute nothing.
//   2. The product is known but the "Quantity" field is not numeric
//      (booleans, strings, null, arrays, objects): record an error,
//      contribute nothing.
//   3. Otherwise: total += price * quantity.
//
//   The unknown-product check runs first, so a line that fails both checks
//   yields only the product error.
//
// ERROR HANDLING:
//   - Errors are collected per source, never thrown; a malformed line never
//     aborts the batch.
//   - Totals accumulate in plain float64, in line order. Rounding happens
//     only at display time in the report.
//   - The aggregator performs no I/O and does not mutate its inputs.
//
// =============================================================================

package sales

import (
	"fmt"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// AGGREGATION FUNCTIONS
// =============================================================================

// Aggregate computes the total sales cost for every source against the
// catalogue.
//
// PARAMETERS:
//   - cat: The price catalogue. Read-only; an empty catalogue makes every
//     line fail the product lookup.
//   - sources: The sales sources, in the order they should appear in the
//     result.
//
// RETURNS:
//   - One result per source, preserving source order. Every sale line
//     contributes either to the total or exactly one error message.
func Aggregate(cat types.PriceCatalogue, sources []types.Source) []types.SourceResult {
	results := make([]types.SourceResult, len(sources))
	for i, source := range sources {
		results[i] = aggregateSource(cat, source)
	}
	return results
}

// aggregateSource folds the lines of a single source into a result.
func aggregateSource(cat types.PriceCatalogue, source types.Source) types.SourceResult {
	result := types.SourceResult{ID: source.ID}

	for _, line := range source.Lines {
		product := fieldValue(line, "Product")

		// The catalogue is keyed by string titles, so a non-string product
		// value can never resolve.
		var price float64
		var found bool
		if title, isString := product.(string); isString {
			price, found = cat[title]
		}
		if !found {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Producto no encontrado en catálogo: %v", product))
			continue
		}

		quantity := fieldValue(line, "Quantity")
		amount, isNumeric := numericValue(quantity)
		if !isNumeric {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Cantidad inválida para %v: %v", product, quantity))
			continue
		}

		result.TotalCost += price * amount
	}

	return result
}

// =============================================================================
// LINE FIELD ACCESS
// =============================================================================

// fieldValue reads a field from a sale line. Lines that are not objects
// read as all-fields-absent, which routes them into the product-not-found
// error path.
func fieldValue(line any, key string) any {
	obj, isObject := line.(map[string]any)
	if !isObject {
		return nil
	}
	return obj[key]
}

// numericValue reports whether a decoded field value is numeric and returns
// it as float64. JSON numbers always decode to float64; the remaining cases
// admit programmatically built lines. Booleans are deliberately absent:
// they are not valid quantities.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
