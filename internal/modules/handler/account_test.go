package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/izabelforte/ProjetoPCRH/internal/config"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// memSessionStore backs handler tests without Redis.
type memSessionStore struct {
	payloads map[string]session.Payload
	fail     bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{payloads: map[string]session.Payload{}}
}

func (s *memSessionStore) Create(ctx context.Context, p session.Payload) (string, error) {
	if s.fail {
		return "", errors.New("redis down")
	}
	id := uuid.NewString()
	s.payloads[id] = p
	return id, nil
}

func (s *memSessionStore) Get(ctx context.Context, id string) (*session.Payload, error) {
	p, ok := s.payloads[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &p, nil
}

func (s *memSessionStore) Delete(ctx context.Context, id string) error {
	delete(s.payloads, id)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionCfg{CookieName: "pcrh_session", TTLMinutes: 60},
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAccountHandler_Login(t *testing.T) {
	user := &model.User{ID: 7, Username: "ana", Role: "Administrator"}

	tests := []struct {
		name           string
		body           string
		setup          func(*MockAuthService)
		expectedStatus int
		wantCookie     bool
	}{
		{
			name: "successful login sets the session cookie",
			body: `{"username":"ana","password":"pw"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "ana", "pw").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			wantCookie:     true,
		},
		{
			name: "bad credentials",
			body: `{"username":"ana","password":"wrong"}`,
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "ana", "wrong").Return(nil, apperrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing fields",
			body:           `{"username":"ana"}`,
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			tt.setup(mockService)
			store := newMemSessionStore()
			handler := NewAccountHandler(mockService, store, testConfig())

			router := setupRouter()
			router.POST("/login", handler.Login)

			req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			cookie := loginCookie(w.Result().Cookies(), "pcrh_session")
			if tt.wantCookie {
				assert.NotNil(t, cookie)
				stored, err := store.Get(context.Background(), cookie.Value)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, stored.UserID)
				assert.Equal(t, user.Role, stored.Role)

				var resp map[string]interface{}
				assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "ana", data["username"])
			} else {
				assert.Nil(t, cookie)
				assert.Empty(t, store.payloads)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAccountHandler_Login_StoreError(t *testing.T) {
	user := &model.User{ID: 7, Username: "ana", Role: "Administrator"}
	mockService := &MockAuthService{}
	mockService.On("Login", mock.Anything, "ana", "pw").Return(user, nil)
	store := newMemSessionStore()
	store.fail = true
	handler := NewAccountHandler(mockService, store, testConfig())

	router := setupRouter()
	router.POST("/login", handler.Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"ana","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAccountHandler_Logout(t *testing.T) {
	store := newMemSessionStore()
	id, err := store.Create(context.Background(), session.Payload{UserID: 7, Username: "ana", Role: "Administrator"})
	assert.NoError(t, err)

	handler := NewAccountHandler(&MockAuthService{}, store, testConfig())
	router := setupRouter()
	router.GET("/logout", handler.Logout)

	t.Run("with a session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/logout", nil)
		req.AddCookie(&http.Cookie{Name: "pcrh_session", Value: id})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.payloads)

		cookie := loginCookie(w.Result().Cookies(), "pcrh_session")
		assert.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
	})

	t.Run("without a session still succeeds", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/logout", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func loginCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
