// =============================================================================
// Sales Cost Computation - Catalogue Builder Module
// =============================================================================
//
// This module turns a raw list of product records into a validated price
// catalogue: a mapping from product title to unit price. Input records come
// straight from JSON decoding and carry no schema guarantees, so every field
// is checked at read time.
//
// VALIDATION RULES:
//   A product record is valid iff:
//   - it is an object,
//   - its "title" field holds a non-empty string,
//   - its "price" field holds a numeric value (integer or floating point).
//     Booleans, strings, null, arrays and objects are not valid prices.
//
// ERROR HANDLING:
//   - Invalid records are dropped, never fatal: one warning per record goes
//     to the injected diagnostic logger, identifying the offending record.
//   - Duplicate titles overwrite earlier entries (last write wins).
//   - The builder performs no I/O and never panics on malformed input.
//
// =============================================================================

package catalogue

import (
	"go.uber.org/zap"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// BUILDER FUNCTION
// =============================================================================

// Build converts a product list into a price catalogue.
//
// PARAMETERS:
//   - products: The decoded product records, in file order. Entries may be
//     of any shape; non-object entries and objects failing validation are
//     dropped with a warning.
//   - diag: The diagnostic logger receiving one warning per invalid record.
//     A nil logger disables diagnostics.
//
// RETURNS:
//   - A non-nil catalogue containing an entry for every valid record.
//     Later records overwrite earlier ones that share a title.
func Build(products []any, diag *zap.Logger) types.PriceCatalogue {
	if diag == nil {
		diag = zap.NewNop()
	}

	cat := make(types.PriceCatalogue, len(products))

	for _, record := range products {
		title, price, ok := validProduct(record)
		if !ok {
			diag.Warn("producto con datos inválidos", zap.Any("producto", record))
			continue
		}
		cat[title] = price
	}

	return cat
}

// =============================================================================
// RECORD VALIDATION
// =============================================================================

// validProduct extracts and validates the title and price of a single
// product record.
//
// PARAMETERS:
//   - record: The raw record as decoded from JSON.
//
// RETURNS:
//   - The title and price, and true if the record is valid.
//   - Zero values and false otherwise.
func validProduct(record any) (string, float64, bool) {
	obj, isObject := record.(map[string]any)
	if !isObject {
		return "", 0, false
	}

	title, isString := obj["title"].(string)
	if !isString || title == "" {
		return "", 0, false
	}

	price, isNumeric := numericValue(obj["price"])
	if !isNumeric {
		return "", 0, false
	}

	return title, price, true
}

// numericValue reports whether a decoded field value is numeric and returns
// it as float64. JSON numbers always decode to float64; the remaining cases
// admit programmatically built records. Booleans are deliberately absent:
// they are not valid prices.
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
