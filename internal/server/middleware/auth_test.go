package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	id uuid.UUID
}

func (c stubClaims) GetSessionID() uuid.UUID { return c.id }

type stubValidator struct {
	accept string
	id     uuid.UUID
}

func (v stubValidator) ValidateToken(token string) (SessionIDGetter, error) {
	if token != v.accept {
		return nil, fmt.Errorf("invalid token")
	}
	return stubClaims{id: v.id}, nil
}

func TestAuthMiddleware(t *testing.T) {
	sessionID := uuid.New()
	mw := AuthMiddleware(stubValidator{accept: "good-token", id: sessionID})

	var gotID uuid.UUID
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetSessionID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good-token", want: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad-token", want: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good-token", want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good-token", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, sessionID, gotID)
			}
		})
	}
}

func TestGetSessionID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetSessionID(req)
	assert.Error(t, err)
}
