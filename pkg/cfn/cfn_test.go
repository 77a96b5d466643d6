package cfn_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/benkehoe/aws-arn/pkg/arn"
	"github.com/benkehoe/aws-arn/pkg/cfn"
	"github.com/benkehoe/aws-arn/pkg/rules"
)

func TestJoinJSON(t *testing.T) {
	j := cfn.Join{Values: []interface{}{"arn:", cfn.Partition, ":s3:::", "mybucket"}}

	data, err := json.Marshal(j)
	require.NoError(t, err)

	assert.JSONEq(t, `{"Fn::Join": ["", ["arn:", {"Ref": "AWS::Partition"}, ":s3:::", "mybucket"]]}`, string(data))
}

func TestJoinYAML(t *testing.T) {
	j := cfn.Join{Values: []interface{}{"arn:", cfn.Partition, ":s3:::", "mybucket"}}

	data, err := yaml.Marshal(j)
	require.NoError(t, err)

	// unmarshal rather than comparing text, so formatting is irrelevant
	var doc map[string][]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	values, ok := doc["Fn::Join"]
	require.True(t, ok)
	require.Len(t, values, 2)
	assert.Equal(t, "", values[0])
	assert.Equal(t, []interface{}{
		"arn:",
		map[string]interface{}{"Ref": "AWS::Partition"},
		":s3:::",
		"mybucket",
	}, values[1])
}

func TestSymbolicCloudFormation(t *testing.T) {
	rs, err := rules.Load(strings.NewReader(`{"services": [{"service": "s3", "region": false, "account": false}]}`))
	require.NoError(t, err)
	b := arn.NewBuilder(rs, nil)

	node := b.Symbolic(cfn.Symbols{}, arn.SymbolicInput{
		Service:  "dynamodb",
		Resource: []interface{}{"table/", cfn.Ref{Ref: "MyTable"}},
	})

	data, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t, `{"Fn::Join": ["", [
		"arn:", {"Ref": "AWS::Partition"},
		":dynamodb:", {"Ref": "AWS::Region"}, ":", {"Ref": "AWS::AccountId"}, ":",
		"table/", {"Ref": "MyTable"}
	]]}`, string(data))
}

func TestSymbolicCloudFormation_OmittedFields(t *testing.T) {
	rs, err := rules.Load(strings.NewReader(`{"services": [{"service": "s3", "region": false, "account": false}]}`))
	require.NoError(t, err)
	b := arn.NewBuilder(rs, nil)

	node := b.Symbolic(cfn.Symbols{}, arn.SymbolicInput{
		Service:  "s3",
		Resource: []interface{}{cfn.Ref{Ref: "MyBucket"}, "/*"},
	})

	data, err := json.Marshal(node)
	require.NoError(t, err)

	assert.JSONEq(t, `{"Fn::Join": ["", [
		"arn:", {"Ref": "AWS::Partition"},
		":s3:::",
		{"Ref": "MyBucket"}, "/*"
	]]}`, string(data))
}
