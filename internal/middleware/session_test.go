package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/stretchr/testify/assert"
)

// fakeSessionStore keeps payloads in a map.
type fakeSessionStore struct {
	payloads map[string]session.Payload
	err      error
}

func (f *fakeSessionStore) Create(ctx context.Context, p session.Payload) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeSessionStore) Get(ctx context.Context, id string) (*session.Payload, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.payloads[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &p, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	delete(f.payloads, id)
	return nil
}

func TestSessionLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)

	known := session.Payload{UserID: 7, Username: "ana", Role: "Administrator"}

	tests := []struct {
		name           string
		cookie         string
		store          *fakeSessionStore
		expectedStatus int
		wantSession    bool
	}{
		{
			name:           "valid cookie populates the session",
			cookie:         "sid-1",
			store:          &fakeSessionStore{payloads: map[string]session.Payload{"sid-1": known}},
			expectedStatus: http.StatusOK,
			wantSession:    true,
		},
		{
			name:           "no cookie stays anonymous",
			cookie:         "",
			store:          &fakeSessionStore{payloads: map[string]session.Payload{}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown session id stays anonymous",
			cookie:         "sid-gone",
			store:          &fakeSessionStore{payloads: map[string]session.Payload{}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "store error aborts the request",
			cookie:         "sid-1",
			store:          &fakeSessionStore{err: errors.New("redis down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *session.Payload
			router := gin.New()
			router.Use(SessionLoad(tt.store, "pcrh_session"))
			router.GET("/probe", func(c *gin.Context) {
				got, _ = CurrentSession(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/probe", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "pcrh_session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.wantSession {
				assert.NotNil(t, got)
				assert.Equal(t, known, *got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
