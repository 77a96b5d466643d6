package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runResolve(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewResolveCommand(&RootConfig{}, &buf)
	err := cmd.ParseAndRun(context.Background(), args)
	return buf.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := runResolve(t, "s3", "mybucket")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": false, "account": false}`, out)

	out, err = runResolve(t, "dynamodb")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": true, "account": true}`, out)
}

func TestResolveCommand_Force(t *testing.T) {
	out, err := runResolve(t, "-force-region", "on", "s3", "mybucket")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": true, "account": false}`, out)
}

func TestResolveCommand_ResourcePattern(t *testing.T) {
	out, err := runResolve(t, "ec2", "image/ami-12345678")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": true, "account": false}`, out)

	out, err = runResolve(t, "ec2", "instance/i-12345678")
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": true, "account": true}`, out)
}
