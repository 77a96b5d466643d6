package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkehoe/aws-arn/pkg/config"
)

func parseAll(t *testing.T, contents string) map[string]string {
	t.Helper()
	got := map[string]string{}
	parser := config.EnvFileParser("AWS_ARN")
	err := parser(strings.NewReader(contents), func(name, value string) error {
		got[name] = value
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestEnvFileParser(t *testing.T) {
	got := parseAll(t, `
# server settings
AWS_ARN_HOST=0.0.0.0:9090
AWS_ARN_READ_TIMEOUT=10s # slow links
TOKEN=abc123
`)

	assert.Equal(t, map[string]string{
		"host":         "0.0.0.0:9090",
		"read-timeout": "10s",
		"token":        "abc123",
	}, got)
}

func TestEnvFileParser_MalformedLine(t *testing.T) {
	parser := config.EnvFileParser("AWS_ARN")
	err := parser(strings.NewReader("not a pair\n"), func(name, value string) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed line")
}
