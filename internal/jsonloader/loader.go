// =============================================================================
// Sales Cost Computation - JSON Loader Module
// =============================================================================
//
// This module is the input boundary of the application. It reads JSON files
// produced by external systems and decodes them into generic Go values
// (map[string]any, []any, float64, string, bool, nil) without imposing any
// schema. Shape tolerance is deliberate: the catalogue builder and the sales
// aggregator perform their own field-level checks at read time, so malformed
// records must survive loading intact.
//
// FEATURES:
//   - Arbitrary nested JSON decoding into generic values
//   - UTF-8 BOM tolerance (some upstream exports prepend one)
//   - Top-level shape enforcement for record files (must be a JSON array)
//   - Errors are returned, never printed; callers own user-facing messages
//
// All filesystem access of the computation pipeline lives here. The core
// packages (catalogue, sales) never touch the filesystem.
//
// =============================================================================

package jsonloader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// utf8BOM is the byte order mark some exporters prepend to UTF-8 files.
// encoding/json rejects it, so it is stripped before decoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =============================================================================
// LOADER FUNCTIONS
// =============================================================================

// Load reads a file and decodes its content as arbitrary JSON.
//
// PARAMETERS:
//   - path: The path to the JSON file.
//
// RETURNS:
//   - The decoded value: map[string]any for objects, []any for arrays,
//     float64 for numbers, string, bool, or nil.
//   - An error if the file cannot be read or the content is not valid JSON.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Strip a leading UTF-8 BOM if present.
	data = bytes.TrimPrefix(data, utf8BOM)

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return value, nil
}

// LoadRecords reads a file expected to contain a JSON array of records.
//
// PARAMETERS:
//   - path: The path to the JSON file.
//
// RETURNS:
//   - The array elements as a slice of generic values. The elements are not
//     validated here; non-object entries are passed through for the caller
//     to reject at read time.
//   - An error if the file cannot be loaded or the top-level value is not
//     an array. Both the price catalogue and sales record files are record
//     sequences, so any other top-level shape is a load failure.
func LoadRecords(path string) ([]any, error) {
	value, err := Load(path)
	if err != nil {
		return nil, err
	}

	records, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array at the top level, got %T", value)
	}

	return records, nil
}
