// =============================================================================
// Sales Cost Computation - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - catalogue
//   - sales
//   - report
//
// =============================================================================

package types

// =============================================================================
// CATALOGUE TYPES
// =============================================================================

// PriceCatalogue maps product titles to unit prices.
// It is built once per run from the product list and read-only thereafter.
type PriceCatalogue map[string]float64

// =============================================================================
// SALES TYPES
// =============================================================================

// Source represents one sales record file: an identifier paired with the
// ordered sequence of sale lines loaded from it.
type Source struct {
	// ID identifies the source in results and reports.
	// For file-based sources this is the path as given on the command line.
	ID string

	// Lines contains the raw sale line records in file order.
	// Each line is a decoded JSON value of arbitrary shape; field access
	// happens at aggregation time.
	Lines []any
}

// SourceResult represents the computed outcome for one sales source.
type SourceResult struct {
	// ID is the identifier of the source this result belongs to.
	ID string

	// TotalCost is the accumulated cost of all resolvable sale lines.
	// Accumulation happens in line order under plain float64 semantics;
	// rounding is applied only when the value is displayed.
	TotalCost float64

	// Errors contains one human-readable message per sale line that could
	// not contribute to the total, in encounter order.
	Errors []string
}
