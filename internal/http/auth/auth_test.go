package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finnypolicy/internal/http/auth"
)

var secret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{name: "Valid Token", header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, valid), wantStatus: http.StatusOK},
		{name: "Lowercase Scheme", header: "bearer " + sign(t, jwt.SigningMethodHS256, secret, valid), wantStatus: http.StatusOK},
		{name: "Missing Header", wantStatus: http.StatusUnauthorized},
		{name: "Wrong Scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, expired), wantStatus: http.StatusUnauthorized},
		{name: "Wrong Secret", header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid), wantStatus: http.StatusUnauthorized},
		{name: "No Subject", header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{}), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSubject string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject, _ = auth.Subject(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "user-1", gotSubject)
			}
		})
	}
}
