// Package cfn renders symbolic ARN expressions as CloudFormation
// intrinsic functions, serializable to both JSON and YAML templates.
package cfn

import (
	"encoding/json"
)

// Ref is the CloudFormation Ref intrinsic.
type Ref struct {
	Ref string `json:"Ref" yaml:"Ref"`
}

// Pseudo parameters resolved by CloudFormation when the template is
// evaluated against a stack.
var (
	Partition = Ref{Ref: "AWS::Partition"}
	Region    = Ref{Ref: "AWS::Region"}
	AccountID = Ref{Ref: "AWS::AccountId"}
)

// Join is the Fn::Join intrinsic: Values concatenated with Delimiter
// between them.
type Join struct {
	Delimiter string
	Values    []interface{}
}

func (j Join) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"Fn::Join": []interface{}{j.Delimiter, j.Values},
	})
}

func (j Join) MarshalYAML() (interface{}, error) {
	return map[string]interface{}{
		"Fn::Join": []interface{}{j.Delimiter, j.Values},
	}, nil
}

// Symbols renders ARN fragments as CloudFormation intrinsics. The zero
// value is ready to use.
type Symbols struct{}

func (Symbols) Partition() interface{} { return Partition }

func (Symbols) Region() interface{} { return Region }

func (Symbols) AccountID() interface{} { return AccountID }

// Join concatenates parts with an empty delimiter, matching how ARN
// fragments butt up against each other.
func (Symbols) Join(parts []interface{}) interface{} {
	return Join{Values: parts}
}
