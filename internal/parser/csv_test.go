package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/domainlens-cli/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseFileCSV_HeaderAndColumn(t *testing.T) {
	p := writeFile(t, "grades.csv", "term,score,absences\nQ1,85,2\nQ2,88,0\nQ3,90,1\nQ4,92,0\n")

	vals, err := parser.ParseFile(p, parser.Options{Column: "score"})
	require.NoError(t, err)
	assert.Equal(t, []float64{85, 88, 90, 92}, vals)
}

func TestParseFileCSV_HeaderNotNumericIsSkipped(t *testing.T) {
	p := writeFile(t, "stock.csv", "a,b\n100,85\n120,95\n")

	vals, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 85, 120, 95}, vals)
}

func TestParseFileCSV_SemicolonWithDecimalComma(t *testing.T) {
	p := writeFile(t, "bp.csv", "reading;value\nmon;120,5\ntue;118,25\n")

	vals, err := parser.ParseFile(p, parser.Options{Column: "value", DecimalSeparator: ','})
	require.NoError(t, err)
	assert.Equal(t, []float64{120.5, 118.25}, vals)
}

func TestParseFileCSV_MissingColumn(t *testing.T) {
	p := writeFile(t, "x.csv", "a,b\n1,2\n")

	_, err := parser.ParseFile(p, parser.Options{Column: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "c" not found`)
}

func TestParseFileCSV_BadCell(t *testing.T) {
	p := writeFile(t, "x.csv", "1,2\n3,oops\n")

	_, err := parser.ParseFile(p, parser.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2, column 2")
}
