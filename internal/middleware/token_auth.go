package middleware

import (
	"crypto/subtle"
	"net/http"
)

// TokenHeader carries the client's authentication token.
const TokenHeader = "x-aws-arn-token"

// TokenAuth is a middleware which returns a HTTP 401 response if the
// provided token header does not match the configured server token.
// Tokens are compared in constant time.
func TokenAuth(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(TokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
