package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mydays/internal/auth"
)

const secret = "test-secret"

func TestIssueParse(t *testing.T) {
	token, err := auth.Issue(secret, "owner", "Owner", time.Hour)
	require.NoError(t, err)

	claims, err := auth.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
	assert.Equal(t, "Owner", claims.Name)

	_, err = auth.Parse("other-secret", token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	expired, err := auth.Issue(secret, "owner", "", -time.Minute)
	require.NoError(t, err)

	_, err = auth.Parse(secret, expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	valid, err := auth.Issue(secret, "owner", "", time.Hour)
	require.NoError(t, err)

	type testCase struct {
		name   string
		secret string
		header string
		want   int
	}

	tests := []testCase{
		{name: "disabled", secret: "", header: "", want: http.StatusOK},
		{name: "missing header", secret: secret, header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", secret: secret, header: "Basic " + valid, want: http.StatusUnauthorized},
		{name: "garbage token", secret: secret, header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "valid", secret: secret, header: "Bearer " + valid, want: http.StatusOK},
		{name: "lowercase scheme", secret: secret, header: "bearer " + valid, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := auth.FromContext(r.Context()); ok {
					subject = claims.Subject
				}

				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(tt.secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)

			if tt.want == http.StatusOK && tt.secret != "" {
				assert.Equal(t, "owner", subject)
			}
		})
	}
}
