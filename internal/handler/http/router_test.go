package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/domain/leave"
	"github.com/taskmate/taskmate-backend-go/internal/domain/project"
	"github.com/taskmate/taskmate-backend-go/internal/domain/task"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/mocks"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/metrics"
)

var (
	superAdmin = access.Actor{ID: 1, Role: access.RoleSuperAdmin}
	admin      = access.Actor{ID: 2, Role: access.RoleAdmin, ReportingID: 1}
	employee   = access.Actor{ID: 4, Role: access.RoleEmployee, ReportingID: 2}
	hr         = access.Actor{ID: 7, Role: access.RoleHR, ReportingID: 1}
)

type routerFixture struct {
	handler  http.Handler
	jwt      *jwt.JWTService
	metrics  *metrics.Metrics
	uploads  string
	auth     *mocks.AuthService
	users    *mocks.UserService
	tasks    *mocks.TaskService
	projects *mocks.ProjectService
	leaves   *mocks.LeaveService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	j, err := jwt.NewJWTService("router-test-secret", "1h", "15m")
	require.NoError(t, err)

	f := &routerFixture{
		jwt:      j,
		metrics:  metrics.New(),
		uploads:  t.TempDir(),
		auth:     &mocks.AuthService{},
		users:    &mocks.UserService{},
		tasks:    &mocks.TaskService{},
		projects: &mocks.ProjectService{},
		leaves:   &mocks.LeaveService{},
	}
	f.handler = NewRouter(RouterOptions{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogLevel:       slog.LevelError,
		AllowedOrigins: []string{"http://localhost:3000"},
		Metrics:        f.metrics,
		UploadsDir:     f.uploads,
	}, j, Handlers{
		Auth:    NewAuthHandler(f.auth),
		User:    NewUserHandler(f.users),
		Task:    NewTaskHandler(f.tasks),
		Project: NewProjectHandler(f.projects),
		Leave:   NewLeaveHandler(f.leaves),
	})

	t.Cleanup(func() {
		f.auth.AssertExpectations(t)
		f.users.AssertExpectations(t)
		f.tasks.AssertExpectations(t)
		f.projects.AssertExpectations(t)
		f.leaves.AssertExpectations(t)
	})
	return f
}

func (f *routerFixture) token(t *testing.T, actor access.Actor) string {
	t.Helper()
	token, _, err := f.jwt.GenerateAccessToken(actor, "someone@5nance.com")
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path string, actor *access.Actor, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != nil {
		req.Header.Set("Authorization", "Bearer "+f.token(t, *actor))
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Error.Code
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/api/v1/tasks", "/api/v1/users", "/api/v1/auth/me", "/api/v1/hrms/my-leaves"} {
		rec := f.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec), path)
	}
}

func TestRouter_RoleGates(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		actor  access.Actor
	}{
		{"hr cannot create tasks", http.MethodPost, "/api/v1/tasks", hr},
		{"hr cannot read a user", http.MethodGet, "/api/v1/users/4", hr},
		{"employee cannot create users", http.MethodPost, "/api/v1/users", employee},
		{"employee cannot list subordinates", http.MethodGet, "/api/v1/admin/employees", employee},
		{"admin cannot list admin tasks", http.MethodGet, "/api/v1/admin/tasks/admins", admin},
		{"admin cannot list admins", http.MethodGet, "/api/v1/auth/admins", admin},
		{"superadmin cannot create projects", http.MethodPost, "/api/v1/admin/projects", superAdmin},
		{"employee cannot see pending leaves", http.MethodGet, "/api/v1/hrms/pending", employee},
		{"admin cannot decide leaves", http.MethodPut, "/api/v1/hrms/decide", admin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := tt.actor
			rec := f.do(t, tt.method, tt.path, &actor, `{}`)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
		})
	}
}

func TestRouter_Login(t *testing.T) {
	f := newRouterFixture(t)

	req := auth.LoginRequest{Email: "erin@5nance.com", Password: "secret"}
	f.auth.On("Login", mock.Anything, req).
		Return(auth.TokenResponse{AccessToken: "tok", User: user.UserResponse{ID: 4}}, nil).Once()
	f.auth.On("Login", mock.Anything, auth.LoginRequest{Email: "erin@5nance.com", Password: "wrong"}).
		Return(auth.TokenResponse{}, auth.ErrInvalidCredentials).Once()

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", nil, `{"email":"erin@5nance.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"tok"`)

	rec = f.do(t, http.MethodPost, "/api/v1/auth/login", nil, `{"email":"erin@5nance.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_MalformedInput(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", nil, `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/auth/login", nil, `{"email":"a@b.c","password":"x","extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/abc", &employee, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/0", &employee, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_CreateTask(t *testing.T) {
	f := newRouterFixture(t)

	req := task.CreateTaskRequest{
		Title:     "Quarterly report",
		Status:    "PENDING",
		StartDate: "2026-10-01T09:00:00Z",
		EndDate:   "2026-10-02T17:00:00Z",
	}
	f.tasks.On("Create", mock.Anything, employee, req).
		Return(task.TaskResponse{ID: 11, Title: req.Title, OwnerUserID: employee.ID}, nil).Once()

	body := `{"title":"Quarterly report","status":"PENDING","start_date":"2026-10-01T09:00:00Z","end_date":"2026-10-02T17:00:00Z"}`
	rec := f.do(t, http.MethodPost, "/api/v1/tasks", &employee, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Success bool              `json:"success"`
		Data    task.TaskResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(11), resp.Data.ID)
}

func TestRouter_ServiceErrorsMapToStatus(t *testing.T) {
	f := newRouterFixture(t)

	f.tasks.On("Delete", mock.Anything, employee, int64(9)).Return(access.ErrForbidden).Once()
	f.tasks.On("Get", mock.Anything, employee, int64(404)).Return(task.TaskResponse{}, task.ErrTaskNotFound).Once()
	f.users.On("Create", mock.Anything, admin, mock.Anything).Return(user.UserResponse{}, user.ErrUserEmailExists).Once()
	f.projects.On("DeactivateProject", mock.Anything, admin, int64(3)).Return(project.ErrProjectNotFound).Once()

	rec := f.do(t, http.MethodDelete, "/api/v1/tasks/9", &employee, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/404", &employee, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/users", &admin, `{"name":"Erin","email":"erin@5nance.com","password":"secret1","role_id":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/v1/admin/projects/3", &admin, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_DecideLeave(t *testing.T) {
	f := newRouterFixture(t)

	approve := leave.DecideLeaveRequest{LeaveID: 5, Status: "APPROVED"}
	f.leaves.On("Decide", mock.Anything, hr, approve).
		Return(leave.LeaveRequestResponse{ID: 5, Status: "APPROVED"}, nil).Once()
	f.leaves.On("Decide", mock.Anything, hr, approve).
		Return(leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed).Once()

	rec := f.do(t, http.MethodPut, "/api/v1/hrms/decide", &hr, `{"leave_id":5,"status":"APPROVED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Leave request APPROVED")

	rec = f.do(t, http.MethodPut, "/api/v1/hrms/decide", &hr, `{"leave_id":5,"status":"APPROVED"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", errorCode(t, rec))
}

func TestRouter_UploadAvatar(t *testing.T) {
	f := newRouterFixture(t)

	f.auth.On("UploadAvatar", mock.Anything, employee, mock.Anything).
		Return(auth.AvatarResponse{ProfileImage: "http://localhost:8080/uploads/avatars/4.jpg"}, nil).Once()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+f.token(t, employee))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "avatars/4.jpg")

	rec = f.do(t, http.MethodPost, "/api/v1/auth/avatar", &employee, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	require.NoError(t, os.MkdirAll(filepath.Join(f.uploads, "avatars"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.uploads, "avatars", "4.jpg"), []byte("jpeg"), 0o644))

	rec := f.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/uploads/avatars/4.jpg", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/tasks", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `taskmate_http_requests_total{method="GET",route="/api/v1/tasks`)
	assert.Contains(t, rec.Body.String(), `status_code="401"`)
}
