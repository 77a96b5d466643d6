// Package crypto generates the random tokens used to authenticate
// clients against the aws-arn server.
package crypto

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

const tokenLength = 32

const tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRandomToken returns a securely generated random string,
// 32 characters long. It returns an error if the system's secure
// random number generator fails, in which case the caller must not
// continue.
func GenerateRandomToken() (string, error) {
	token := make([]byte, tokenLength)
	for i := range token {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			return "", errors.Wrap(err, "reading from system PRNG")
		}
		token[i] = tokenAlphabet[idx.Int64()]
	}
	return string(token), nil
}
