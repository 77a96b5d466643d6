package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTerraform(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewTerraformCommand(&RootConfig{}, &buf)
	err := cmd.ParseAndRun(context.Background(), args)
	return buf.String(), err
}

func TestTerraformCommand_Expression(t *testing.T) {
	out, err := runTerraform(t, "-expression", "iam", "role/myrole")
	require.NoError(t, err)
	assert.Equal(t, "arn:${data.aws_partition.current.partition}:iam::${data.aws_caller_identity.current.account_id}:role/myrole\n", out)
}

func TestTerraformCommand_ExpressionRef(t *testing.T) {
	out, err := runTerraform(t, "-expression", "dynamodb", "table/", "ref:aws_dynamodb_table.main.name")
	require.NoError(t, err)
	assert.Equal(t, "arn:${data.aws_partition.current.partition}:dynamodb:${data.aws_region.current.name}:${data.aws_caller_identity.current.account_id}:table/${aws_dynamodb_table.main.name}\n", out)
}

func TestTerraformCommand_File(t *testing.T) {
	out, err := runTerraform(t, "-name", "role_arn", "iam", "role/myrole")
	require.NoError(t, err)

	assert.Contains(t, out, `data "aws_partition" "current"`)
	assert.Contains(t, out, `data "aws_caller_identity" "current"`)
	assert.NotContains(t, out, `data "aws_region"`)
	assert.Contains(t, out, "locals {")
	assert.Contains(t, out, `output "role_arn"`)
	assert.Contains(t, out, "local.role_arn")
}

func TestTerraformCommand_TooFewArgs(t *testing.T) {
	_, err := runTerraform(t, "iam")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least two arguments")
}
