package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewSplitCommand(&RootConfig{}, &buf)
	err := cmd.ParseAndRun(context.Background(), []string{"arn:aws:sns:us-east-1:123456789012:mytopic"})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"partition": "aws",
		"service": "sns",
		"region": "us-east-1",
		"account": "123456789012",
		"resource": "mytopic"
	}`, buf.String())
}

func TestSplitCommand_Malformed(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewSplitCommand(&RootConfig{}, &buf)
	err := cmd.ParseAndRun(context.Background(), []string{"arn:aws:s3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough sections")
}
