package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

// Parse collects numeric cells. A first row holding any non-numeric cell is
// treated as a header; opt.Column then selects a single column by name.
func (csvParser) Parse(content []byte, opt Options) ([]float64, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.Comma = sniffDelimiter(content)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var (
		out    []float64
		col    = -1
		rowNum int
	)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rowNum++
		if rowNum == 1 && isHeader(rec, opt) {
			if opt.Column != "" {
				for i, h := range rec {
					if strings.EqualFold(strings.TrimSpace(h), opt.Column) {
						col = i
						break
					}
				}
				if col < 0 {
					return nil, fmt.Errorf("column %q not found in header", opt.Column)
				}
			}
			continue
		}
		if opt.Column != "" && col < 0 {
			return nil, fmt.Errorf("column %q requested but csv has no header", opt.Column)
		}
		for i, cell := range rec {
			if col >= 0 && i != col {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			v, err := ParseValue(cell, opt)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", rowNum, i+1, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func isHeader(rec []string, opt Options) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		if _, err := ParseValue(cell, opt); err != nil {
			return true
		}
	}
	return false
}

func sniffDelimiter(content []byte) rune {
	first := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		first = content[:i]
	}
	switch {
	case bytes.ContainsRune(first, '\t'):
		return '\t'
	case bytes.ContainsRune(first, ';') && !bytes.ContainsRune(first, ','):
		return ';'
	case bytes.Count(first, []byte{';'}) > bytes.Count(first, []byte{','}):
		return ';'
	default:
		return ','
	}
}
