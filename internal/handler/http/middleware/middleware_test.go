package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/metrics"
)

func newJWT(t *testing.T) *jwt.JWTService {
	t.Helper()
	svc, err := jwt.NewJWTService("middleware-test-secret", "1h", "15m")
	require.NoError(t, err)
	return svc
}

func protected(j *jwt.JWTService, roles ...access.Role) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(j.JWTAuth()))
	r.Use(AuthRequired)
	if len(roles) > 0 {
		r.Use(RequireRoles(roles...))
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		actor, _ := ActorFrom(r.Context())
		w.Header().Set("X-Actor-Role", actor.Role.String())
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func request(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	j := newJWT(t)
	h := protected(j)

	accessToken, _, err := j.GenerateAccessToken(access.Actor{ID: 3, Role: access.RoleEmployee, ReportingID: 2}, "erin@5nance.com")
	require.NoError(t, err)
	resetToken, _, err := j.GenerateResetToken(3, "erin@5nance.com")
	require.NoError(t, err)

	rec := request(t, h, accessToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "employee", rec.Header().Get("X-Actor-Role"))

	assert.Equal(t, http.StatusUnauthorized, request(t, h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, h, "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, request(t, h, resetToken).Code, "reset tokens do not authenticate")

	other, err := jwt.NewJWTService("someone-else", "1h", "15m")
	require.NoError(t, err)
	forged, _, err := other.GenerateAccessToken(access.Actor{ID: 1, Role: access.RoleSuperAdmin}, "root@5nance.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(t, h, forged).Code)
}

func TestRequireRoles(t *testing.T) {
	j := newJWT(t)
	h := protected(j, access.RoleHR, access.RoleSuperAdmin)

	token := func(role access.Role) string {
		tok, _, err := j.GenerateAccessToken(access.Actor{ID: 9, Role: role, ReportingID: 1}, "x@5nance.com")
		require.NoError(t, err)
		return tok
	}

	assert.Equal(t, http.StatusNoContent, request(t, h, token(access.RoleHR)).Code)
	assert.Equal(t, http.StatusNoContent, request(t, h, token(access.RoleSuperAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, request(t, h, token(access.RoleAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, request(t, h, token(access.RoleEmployee)).Code)
}

func TestRequireRoles_WithoutActor(t *testing.T) {
	h := RequireRoles(access.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	m := metrics.New()
	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Get("/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/tasks/1", "/tasks/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/tasks/{id}", "418")))
}
