package commands

import (
	"strings"

	"github.com/pkg/errors"
)

// parseForce maps a tri-state on/off flag to an optional bool. An empty
// value means "leave the rule table's decision in place".
func parseForce(name, value string) (*bool, error) {
	switch value {
	case "":
		return nil, nil
	case "on":
		t := true
		return &t, nil
	case "off":
		f := false
		return &f, nil
	default:
		return nil, errors.Errorf(`-%s must be "on" or "off", got %q`, name, value)
	}
}

// templateParts maps resource-part arguments to template fragments.
// Arguments of the form ref:NAME become engine references through wrap;
// everything else stays a literal string.
func templateParts(args []string, wrap func(name string) interface{}) []interface{} {
	parts := make([]interface{}, 0, len(args))
	for _, a := range args {
		if name := strings.TrimPrefix(a, "ref:"); name != a {
			parts = append(parts, wrap(name))
			continue
		}
		parts = append(parts, a)
	}
	return parts
}
