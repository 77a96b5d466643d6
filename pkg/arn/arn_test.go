package arn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkehoe/aws-arn/pkg/arn"
)

func TestString(t *testing.T) {
	a := arn.ARN{
		Partition: "aws",
		Service:   "dynamodb",
		Region:    "us-east-1",
		Account:   "123456789012",
		Resource:  "table/mytable",
	}
	assert.Equal(t, "arn:aws:dynamodb:us-east-1:123456789012:table/mytable", a.String())
}

func TestString_EmptyFieldsKeepTheirColons(t *testing.T) {
	a := arn.ARN{
		Partition: "aws",
		Service:   "s3",
		Resource:  "mybucket",
	}
	assert.Equal(t, "arn:aws:s3:::mybucket", a.String())
}

func TestSplit(t *testing.T) {
	a, err := arn.Split("arn:aws:iam::123456789012:role/myrole")
	require.NoError(t, err)

	assert.Equal(t, arn.ARN{
		Partition: "aws",
		Service:   "iam",
		Region:    "",
		Account:   "123456789012",
		Resource:  "role/myrole",
	}, a)
}

func TestSplit_ResourceKeepsColons(t *testing.T) {
	a, err := arn.Split("arn:aws:sns:us-east-1:123456789012:mytopic:6e2b0b1c")
	require.NoError(t, err)

	assert.Equal(t, "mytopic:6e2b0b1c", a.Resource)
}

func TestSplit_Malformed(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"wrong prefix":   "frn:aws:s3:::mybucket",
		"bare prefix":    "arn",
		"too few fields": "arn:aws:s3",
		"no colons":      "mybucket",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := arn.Split(input)
			require.Error(t, err)

			var invalid *arn.InvalidARNError
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, input, invalid.ARN)
		})
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	inputs := []string{
		"arn:aws:dynamodb:us-east-1:123456789012:table/mytable",
		"arn:aws:s3:::mybucket",
		"arn:aws-cn:iam::000000000042:user/bob",
		"arn:aws:sns:us-east-1:123456789012:mytopic:6e2b0b1c",
	}
	for _, input := range inputs {
		a, err := arn.Split(input)
		require.NoError(t, err)
		assert.Equal(t, input, a.String())
	}
}
