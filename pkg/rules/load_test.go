package rules_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkehoe/aws-arn/pkg/rules"
)

func TestDefault(t *testing.T) {
	rs, err := rules.Default()
	require.NoError(t, err)
	assert.Greater(t, rs.Len(), 0)

	// spot-check some well-known services
	assert.Equal(t, rules.Requirement{Region: false, Account: false}, rs.Resolve("s3", "mybucket", rules.Force{}))
	assert.Equal(t, rules.Requirement{Region: false, Account: true}, rs.Resolve("iam", "role/myrole", rules.Force{}))
	assert.Equal(t, rules.Requirement{Region: true, Account: false}, rs.Resolve("ec2", "image/ami-12345678", rules.Force{}))
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := rules.Load(strings.NewReader(`{"services": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rule table")
}

func TestLoad_BadPattern(t *testing.T) {
	_, err := rules.Load(strings.NewReader(`{"services": [{"service": "ec2", "resource": "^image/("}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling resource pattern")
}

func TestLoad_MissingService(t *testing.T) {
	_, err := rules.Load(strings.NewReader(`{"services": [{"region": false}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing service")
}

func TestLoadFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	err := os.WriteFile(path, []byte(`{"services": [{"service": "s3", "region": false, "account": false}]}`), 0644)
	require.NoError(t, err)

	rs, err := rules.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rs.Len())
}

func TestLoadFile_YAML(t *testing.T) {
	contents := `services:
  - service: s3
    region: false
    account: false
  - service: ec2
    resource: ^image/
    account: false
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	err := os.WriteFile(path, []byte(contents), 0644)
	require.NoError(t, err)

	rs, err := rules.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, rules.Requirement{Region: true, Account: false}, rs.Resolve("ec2", "image/ami-12345678", rules.Force{}))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := rules.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
