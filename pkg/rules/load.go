package rules

import (
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// defaultTable is the rule table shipped with the binary. It covers the
// AWS services whose ARNs omit the region and/or account fields.
//
//go:embed rules.json
var defaultTable []byte

// document is the on-disk shape of a rule table.
type document struct {
	Services []Rule `json:"services" yaml:"services"`
}

// Load reads a JSON rule document from r and compiles its resource
// patterns. A document that cannot be parsed or compiled is a fatal
// configuration error; no partial table is returned.
func Load(r io.Reader) (*Ruleset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading rule table")
	}
	return parse(data, json.Unmarshal)
}

// LoadFile reads a rule document from path. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func LoadFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rule table")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parse(data, yaml.Unmarshal)
	default:
		return parse(data, json.Unmarshal)
	}
}

// Default returns the built-in rule table.
func Default() (*Ruleset, error) {
	return parse(defaultTable, json.Unmarshal)
}

func parse(data []byte, unmarshal func([]byte, interface{}) error) (*Ruleset, error) {
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing rule table")
	}

	rs := Ruleset{rules: doc.Services}

	for i := range rs.rules {
		rule := &rs.rules[i]
		if rule.Service == "" {
			return nil, errors.Errorf("rule %d: missing service", i)
		}
		if rule.Resource == "" {
			continue
		}
		pattern, err := regexp.Compile(rule.Resource)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d (%s): compiling resource pattern", i, rule.Service)
		}
		rule.pattern = pattern
	}

	return &rs, nil
}
