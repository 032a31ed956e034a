package parser_test

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/domainlens-cli/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		opt  parser.Options
		want float64
	}{
		{"85", parser.Options{}, 85},
		{" 92.5 ", parser.Options{}, 92.5},
		{"12.5%", parser.Options{}, 12.5},
		{"1,234", parser.Options{}, 1234},
		{"12,5", parser.Options{}, 12.5},
		{"1.234,5", parser.Options{}, 1234.5},
		{"50,000.75", parser.Options{}, 50000.75},
		{"-3e2", parser.Options{}, -300},
		{"1.234", parser.Options{DecimalSeparator: ',', ThousandsSeparator: '.'}, 1234},
	}
	for _, c := range cases {
		got, err := parser.ParseValue(c.in, c.opt)
		if assert.NoError(t, err, c.in) {
			assert.InDelta(t, c.want, got, 1e-9, c.in)
		}
	}
}

func TestParseValueRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "%", "1-2"} {
		_, err := parser.ParseValue(in, parser.Options{})
		assert.Error(t, err, in)
	}
}

func TestParseValues(t *testing.T) {
	vals, err := parser.ParseValues([]string{"85", "88", "90", "92"}, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{85, 88, 90, 92}, vals)

	_, err = parser.ParseValues([]string{"1", "x"}, parser.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 2")
}

func TestParseFileTXT(t *testing.T) {
	p := writeFile(t, "budget.txt", "# quarterly budget\n50000 55000\n60000\n\n65000\n")

	vals, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{50000, 55000, 60000, 65000}, vals)
}

func TestParseFileUnknownExtensionFallsBackToText(t *testing.T) {
	p := writeFile(t, "readings.dat", "120 118\n116 115\n")

	vals, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{120, 118, 116, 115}, vals)
}

func TestParseFileEmpty(t *testing.T) {
	p := writeFile(t, "empty.txt", "# nothing here\n")

	_, err := parser.ParseFile(p, parser.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrNoValues))
}
