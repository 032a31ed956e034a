package parser

import (
	"fmt"
	"strings"
)

type txtParser struct{}

func (txtParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}

// Parse reads whitespace-separated numbers; lines starting with '#' are comments.
func (txtParser) Parse(content []byte, opt Options) ([]float64, error) {
	var out []float64
	for n, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := ParseValue(tok, opt)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
