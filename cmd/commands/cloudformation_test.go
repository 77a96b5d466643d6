package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCloudFormation(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewCloudFormationCommand(&RootConfig{}, &buf)
	err := cmd.ParseAndRun(context.Background(), args)
	return buf.String(), err
}

func TestCloudFormationCommand(t *testing.T) {
	out, err := runCloudFormation(t, "dynamodb", "table/", "ref:MyTable")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"Fn::Join": ["", [
			"arn:", {"Ref": "AWS::Partition"},
			":dynamodb:", {"Ref": "AWS::Region"},
			":", {"Ref": "AWS::AccountId"},
			":", "table/", {"Ref": "MyTable"}
		]]
	}`, out)
}

func TestCloudFormationCommand_OmittedFields(t *testing.T) {
	out, err := runCloudFormation(t, "s3", "mybucket")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"Fn::Join": ["", [
			"arn:", {"Ref": "AWS::Partition"},
			":s3:::", "mybucket"
		]]
	}`, out)
}

func TestCloudFormationCommand_YAML(t *testing.T) {
	out, err := runCloudFormation(t, "-format", "yaml", "s3", "mybucket")
	require.NoError(t, err)

	assert.Contains(t, out, "Fn::Join")
	assert.Contains(t, out, "AWS::Partition")
	assert.Contains(t, out, "mybucket")
}

func TestCloudFormationCommand_BadFormat(t *testing.T) {
	_, err := runCloudFormation(t, "-format", "toml", "s3", "mybucket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `-format must be "json" or "yaml"`)
}

func TestCloudFormationCommand_TooFewArgs(t *testing.T) {
	_, err := runCloudFormation(t, "s3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two arguments")
}
