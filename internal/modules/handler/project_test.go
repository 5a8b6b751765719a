package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, p *model.Project, employeeIDs []uint) error {
	args := m.Called(ctx, p, employeeIDs)
	return args.Error(0)
}

func (m *MockProjectService) Update(ctx context.Context, p *model.Project, employeeIDs *[]uint) error {
	args := m.Called(ctx, p, employeeIDs)
	return args.Error(0)
}

func (m *MockProjectService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectService) ListByEmployee(ctx context.Context, employeeID uint) ([]model.Project, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) Finish(ctx context.Context, id uint) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserService) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProjectHandler_Finish(t *testing.T) {
	report := &model.Report{
		ID: 9, ProjectID: 4,
		ReportDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Value:      1200, TotalHours: 720,
	}

	tests := []struct {
		name           string
		path           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "finish creates the report",
			path: "/projects/4/finish",
			setup: func(svc *MockProjectService) {
				svc.On("Finish", mock.Anything, uint(4)).Return(report, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown project",
			path: "/projects/99/finish",
			setup: func(svc *MockProjectService) {
				svc.On("Finish", mock.Anything, uint(99)).Return(nil, apperrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			path:           "/projects/abc/finish",
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)
			handler := NewProjectHandler(mockService, &MockUserService{})

			router := setupRouter()
			router.POST("/projects/:id/finish", handler.Finish)

			req := httptest.NewRequest("POST", tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp map[string]interface{}
				assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, float64(1200), data["value"])
				assert.Equal(t, float64(720), data["total_hours"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_Update(t *testing.T) {
	body := func(id uint) string {
		b, _ := sonic.MarshalString(map[string]interface{}{
			"id": id, "name": "Website", "client_id": 1,
			"status": "In progress", "version": 2,
			"employee_ids": []uint{5, 6},
		})
		return b
	}

	tests := []struct {
		name           string
		path           string
		body           string
		setup          func(*MockProjectService)
		expectedStatus int
	}{
		{
			name: "update replaces the assignment set",
			path: "/projects/4",
			body: body(4),
			setup: func(svc *MockProjectService) {
				svc.On("Update", mock.Anything,
					mock.MatchedBy(func(p *model.Project) bool { return p.ID == 4 && p.Version == 2 }),
					mock.MatchedBy(func(ids *[]uint) bool { return ids != nil && len(*ids) == 2 }),
				).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Project).Version++
				}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "path and body ids disagree",
			path:           "/projects/4",
			body:           body(5),
			setup:          func(svc *MockProjectService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "stale version conflicts",
			path: "/projects/4",
			body: body(4),
			setup: func(svc *MockProjectService) {
				svc.On("Update", mock.Anything, mock.Anything, mock.Anything).
					Return(apperrors.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			tt.setup(mockService)
			handler := NewProjectHandler(mockService, &MockUserService{})

			router := setupRouter()
			router.PUT("/projects/:id", handler.Update)

			req := httptest.NewRequest("PUT", tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				// the response reports the incremented version so the caller
				// can retry the next optimistic update without a re-fetch
				var resp map[string]interface{}
				assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, float64(3), data["version"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_Mine(t *testing.T) {
	employeeID := uint(3)
	projects := []model.Project{{ID: 4, Name: "Website", Status: model.ProjectStatusInProgress}}

	tests := []struct {
		name           string
		payload        *session.Payload
		setup          func(*MockProjectService, *MockUserService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:    "linked employee sees assigned projects",
			payload: &session.Payload{UserID: 7, Username: "rui", Role: "Employee"},
			setup: func(svc *MockProjectService, users *MockUserService) {
				users.On("GetByID", mock.Anything, uint(7)).
					Return(&model.User{ID: 7, Role: "Employee", EmployeeID: &employeeID}, nil)
				svc.On("ListByEmployee", mock.Anything, employeeID).Return(projects, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:    "user without an employee link gets an empty list",
			payload: &session.Payload{UserID: 8, Username: "pm", Role: "Employee"},
			setup: func(svc *MockProjectService, users *MockUserService) {
				users.On("GetByID", mock.Anything, uint(8)).
					Return(&model.User{ID: 8, Role: "Employee"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "no session",
			payload:        nil,
			setup:          func(svc *MockProjectService, users *MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockProjectService{}
			mockUsers := &MockUserService{}
			tt.setup(mockService, mockUsers)
			handler := NewProjectHandler(mockService, mockUsers)

			router := setupRouter()
			router.GET("/projects/mine", func(c *gin.Context) {
				if tt.payload != nil {
					c.Set("session", tt.payload)
				}
				handler.Mine(c)
			})

			req := httptest.NewRequest("GET", "/projects/mine", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp map[string]interface{}
				assert.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
				if tt.expectedCount == 0 {
					// an empty list is omitted from the envelope
					assert.Nil(t, resp["data"])
				} else {
					data, ok := resp["data"].([]interface{})
					assert.True(t, ok)
					assert.Len(t, data, tt.expectedCount)
				}
			}
			mockService.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}
