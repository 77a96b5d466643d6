// Package tf renders symbolic ARN expressions as Terraform
// configuration, referencing the AWS provider's ambient data sources
// for the partition, region and account.
package tf

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Expr is a Terraform string expression, possibly containing
// interpolations.
type Expr string

// Data source attributes standing in for deploy-time values.
const (
	PartitionRef = "data.aws_partition.current.partition"
	RegionRef    = "data.aws_region.current.name"
	AccountIDRef = "data.aws_caller_identity.current.account_id"
)

// dataSources lists the data blocks each reference depends on, in the
// order they are emitted.
var dataSources = []struct {
	ref   string
	block []string
}{
	{PartitionRef, []string{"aws_partition", "current"}},
	{RegionRef, []string{"aws_region", "current"}},
	{AccountIDRef, []string{"aws_caller_identity", "current"}},
}

// Symbols renders ARN fragments as Terraform interpolations. The zero
// value is ready to use.
type Symbols struct{}

func (Symbols) Partition() interface{} { return Expr("${" + PartitionRef + "}") }

func (Symbols) Region() interface{} { return Expr("${" + RegionRef + "}") }

func (Symbols) AccountID() interface{} { return Expr("${" + AccountIDRef + "}") }

// Join flattens literal strings and Exprs into a single Expr.
func (Symbols) Join(parts []interface{}) interface{} {
	var b strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case Expr:
			b.WriteString(string(v))
		case string:
			b.WriteString(v)
		default:
			fmt.Fprint(&b, v)
		}
	}
	return Expr(b.String())
}

// File renders expr as a standalone Terraform file: the data blocks the
// expression depends on, a local named name holding the expression, and
// an output echoing the local.
func File(name, service string, expr Expr) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, ds := range dataSources {
		if strings.Contains(string(expr), ds.ref) {
			body.AppendNewBlock("data", ds.block)
			body.AppendNewline()
		}
	}

	locals := body.AppendNewBlock("locals", nil)
	locals.Body().SetAttributeRaw(name, quotedTokens(string(expr)))
	body.AppendNewline()

	output := body.AppendNewBlock("output", []string{name})
	output.Body().SetAttributeValue("description", cty.StringVal("ARN for "+service))
	output.Body().SetAttributeRaw("value", hclwrite.Tokens{
		{Type: hclsyntax.TokenIdent, Bytes: []byte("local." + name)},
	})

	return hclwrite.Format(f.Bytes())
}

// quotedTokens emits s as a quoted HCL template, keeping any ${ ... }
// interpolations live rather than escaping them.
func quotedTokens(s string) hclwrite.Tokens {
	return hclwrite.Tokens{
		{Type: hclsyntax.TokenQuotedLit, Bytes: []byte(fmt.Sprintf("%q", s))},
	}
}
