package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkehoe/aws-arn/pkg/crypto"
)

func TestGenerateRandomToken(t *testing.T) {
	a, err := crypto.GenerateRandomToken()
	require.NoError(t, err)
	b, err := crypto.GenerateRandomToken()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.Regexp(t, "^[0-9A-Za-z]+$", a)
	assert.NotEqual(t, a, b)
}
