package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Options controls numeric parsing.
type Options struct {
	// DecimalSeparator is '.' or ','; 0 auto-detects per value.
	DecimalSeparator rune
	// ThousandsSeparator is optional; 0 strips common separators that differ from the decimal one.
	ThousandsSeparator rune
	// Column selects a CSV column by header name; empty takes every numeric cell.
	Column string
}

// Parser reads dataset values out of a file's content.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte, opt Options) ([]float64, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ErrNoValues indicates a file held no numeric values.
var ErrNoValues = errors.New("no numeric values found")

// ParseFile selects a parser by filename and returns the values it contains.
// Files without a registered extension are read as whitespace-separated text.
func ParseFile(path string, opt Options) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var p Parser = txtParser{}
	for _, candidate := range registry {
		if candidate.CanParse(path) {
			p = candidate
			break
		}
	}
	vals, err := p.Parse(data, opt)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoValues)
	}
	return vals, nil
}

// ParseValues parses one value per argument.
func ParseValues(args []string, opt Options) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for i, a := range args {
		v, err := ParseValue(a, opt)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseValue parses a single number, tolerating a percent sign and
// locale-specific decimal and thousands separators.
func ParseValue(s string, opt Options) (float64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "%", "")
	raw = strings.ReplaceAll(raw, "\u00A0", " ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty value %q", s)
	}
	dec := opt.DecimalSeparator
	thou := opt.ThousandsSeparator
	if dec == 0 {
		cpos := strings.LastIndex(raw, ",")
		dpos := strings.LastIndex(raw, ".")
		switch {
		case cpos >= 0 && dpos >= 0 && cpos > dpos:
			dec, thou = ',', '.'
		case cpos >= 0 && dpos >= 0:
			dec, thou = '.', ','
		case cpos >= 0 && strings.Count(raw, ",") == 1 && len(raw)-cpos-1 != 3:
			// a lone comma not followed by exactly three digits reads as a decimal comma
			dec = ','
		default:
			dec = '.'
		}
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else if thou != dec {
		raw = strings.ReplaceAll(raw, string(thou), "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func init() {
	Register(txtParser{})
	Register(csvParser{})
}
