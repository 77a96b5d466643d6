package arn

import (
	"github.com/benkehoe/aws-arn/pkg/rules"
)

// Symbols supplies the expression constructs of a templating engine.
// Implementations return engine-native values: the reference methods
// produce placeholders that resolve when the template is evaluated, and
// Join concatenates literal strings and references with no separator.
type Symbols interface {
	Partition() interface{}
	Region() interface{}
	AccountID() interface{}
	Join(parts []interface{}) interface{}
}

// SymbolicInput carries the values for a single Symbolic call. Resource
// parts may be literal strings or engine-native references; only a
// literal first part participates in rule matching.
type SymbolicInput struct {
	Service  string
	Resource []interface{}

	ForceRegion  *bool
	ForceAccount *bool
}

// Symbolic assembles a template expression for the ARN, substituting
// engine references for the partition and for whichever of region and
// account the rule table requires. Omitted fields become literal
// adjacent colons. Symbolic never consults the credentials provider:
// every dynamic value resolves when the template is evaluated.
func (b *Builder) Symbolic(sym Symbols, in SymbolicInput) interface{} {
	resource := ""
	if len(in.Resource) > 0 {
		if s, ok := in.Resource[0].(string); ok {
			resource = s
		}
	}

	req := b.rules.Resolve(in.Service, resource, rules.Force{
		Region:  in.ForceRegion,
		Account: in.ForceAccount,
	})

	parts := []interface{}{Prefix + ":", sym.Partition()}

	switch {
	case req.Region && req.Account:
		parts = append(parts, ":"+in.Service+":", sym.Region(), ":", sym.AccountID(), ":")
	case req.Region:
		parts = append(parts, ":"+in.Service+":", sym.Region(), "::")
	case req.Account:
		parts = append(parts, ":"+in.Service+"::", sym.AccountID(), ":")
	default:
		parts = append(parts, ":"+in.Service+":::")
	}

	parts = append(parts, in.Resource...)

	return sym.Join(parts)
}
