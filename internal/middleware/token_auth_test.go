package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benkehoe/aws-arn/internal/middleware"
)

func TestTokenAuth(t *testing.T) {
	handler := middleware.TokenAuth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := map[string]struct {
		token  string
		status int
	}{
		"valid":   {token: "secret", status: http.StatusOK},
		"invalid": {token: "wrong", status: http.StatusUnauthorized},
		"missing": {token: "", status: http.StatusUnauthorized},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.token != "" {
				req.Header.Set(middleware.TokenHeader, tc.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Result().StatusCode)
		})
	}
}
