package jsonloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempJSON writes content to a file in a test-scoped temp directory
// and returns its path.
func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func Test_Load_Object(t *testing.T) {
	// given
	path := writeTempJSON(t, "catalogue.json", `{"title": "Apple", "price": 2.5}`)

	// when
	value, err := Load(path)

	// then
	require.NoError(t, err)
	obj, ok := value.(map[string]any)
	require.True(t, ok, "top-level object should decode to map[string]any")
	assert.Equal(t, "Apple", obj["title"])
	assert.Equal(t, 2.5, obj["price"])
}

func Test_Load_StripsUTF8BOM(t *testing.T) {
	// given
	path := writeTempJSON(t, "bom.json", "\xef\xbb\xbf"+`[{"title":"Apple"}]`)

	// when
	value, err := Load(path)

	// then
	require.NoError(t, err)
	assert.IsType(t, []any{}, value)
}

func Test_Load_MissingFile(t *testing.T) {
	// when
	value, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	// then
	assert.Error(t, err)
	assert.Nil(t, value)
}

func Test_Load_MalformedJSON(t *testing.T) {
	// given
	path := writeTempJSON(t, "broken.json", `[{"title": "Apple",`)

	// when
	value, err := Load(path)

	// then
	assert.Error(t, err)
	assert.Nil(t, value)
}

func Test_LoadRecords_Array(t *testing.T) {
	// given
	path := writeTempJSON(t, "sales.json", `[
		{"Product": "Apple", "Quantity": 4},
		{"Product": "Banana", "Quantity": "two"},
		"not an object",
		null
	]`)

	// when
	records, err := LoadRecords(path)

	// then
	require.NoError(t, err)
	require.Len(t, records, 4)

	first, ok := records[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Apple", first["Product"])
	assert.Equal(t, float64(4), first["Quantity"], "JSON numbers decode to float64")

	// Malformed entries pass through untouched for read-time validation.
	assert.Equal(t, "not an object", records[2])
	assert.Nil(t, records[3])
}

func Test_LoadRecords_NonArrayTopLevel(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "object", content: `{"Product": "Apple"}`},
		{name: "string", content: `"just a string"`},
		{name: "number", content: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			path := writeTempJSON(t, "bad.json", tt.content)

			// when
			records, err := LoadRecords(path)

			// then
			assert.Error(t, err)
			assert.Nil(t, records)
			assert.Contains(t, err.Error(), "expected a JSON array")
		})
	}
}

func Test_LoadRecords_EmptyArray(t *testing.T) {
	// given
	path := writeTempJSON(t, "empty.json", `[]`)

	// when
	records, err := LoadRecords(path)

	// then
	require.NoError(t, err)
	assert.Empty(t, records)
}
