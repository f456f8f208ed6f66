package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/json"
	"github.com/tailscale/hujson"
)

// JSONCParser is a koanf parser for JSON that tolerates comments and
// trailing commas, so a hand-edited config.json still loads.
type JSONCParser struct {
	json *json.JSON
}

// JSONC returns a JSONC parser.
func JSONC() *JSONCParser {
	return &JSONCParser{json: json.Parser()}
}

// Unmarshal standardizes JSONC to JSON and parses it.
func (p *JSONCParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	standardized, err := hujson.Standardize(append([]byte(nil), b...))
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}
	return p.json.Unmarshal(standardized)
}

// Marshal writes plain JSON.
func (p *JSONCParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return p.json.Marshal(o)
}
