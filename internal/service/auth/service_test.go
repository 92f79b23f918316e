package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/auth"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/mocks"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/metrics"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/password"
	"github.com/taskmate/taskmate-backend-go/internal/service/file"
	"github.com/taskmate/taskmate-backend-go/internal/testutil/memstore"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fixture struct {
	store   *memstore.Store
	jwt     *jwt.JWTService
	files   *mocks.FileService
	mailer  *mocks.EmailService
	metrics *metrics.Metrics
	svc     auth.AuthService

	root, alice, erin user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	password.Cost = bcrypt.MinCost

	jwtService, err := jwt.NewJWTService(testSecret, "1h", "15m")
	require.NoError(t, err)

	store := memstore.New()
	seed := func(id int64, name string, role access.Role, reportingID int64) user.User {
		hash, err := password.Hash(name + "-pass")
		require.NoError(t, err)
		return store.SeedUser(user.User{
			ID:           id,
			Name:         name,
			Email:        name + "@5nance.com",
			PasswordHash: hash,
			Role:         role,
			ReportingID:  reportingID,
			CreatedBy:    reportingID,
		})
	}

	f := &fixture{
		store:   store,
		jwt:     jwtService,
		files:   new(mocks.FileService),
		mailer:  new(mocks.EmailService),
		metrics: metrics.New(),
	}
	f.root = seed(1, "root", access.RoleSuperAdmin, 0)
	f.alice = seed(2, "alice", access.RoleAdmin, 1)
	f.erin = seed(3, "erin", access.RoleEmployee, 2)

	f.svc = NewAuthService(store.Transactor(), store.Users(), jwtService, f.files, f.mailer, f.metrics, "https://app.test/")
	return f
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	resp, err := f.svc.Login(ctx, auth.LoginRequest{Email: " Erin@5nance.com ", Password: "erin-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, f.erin.ID, resp.User.ID)
	assert.Equal(t, "employee", resp.User.Role)

	token, err := f.jwt.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(ctx)
	require.NoError(t, err)
	actor, err := jwt.ActorFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, f.erin.Actor(), actor)

	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "erin@5nance.com", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "nobody@5nance.com", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "not-an-email"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginAttemptsTotal.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.LoginAttemptsTotal.WithLabelValues("failure")))
}

func TestAuthService_MeAndProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	me, err := f.svc.Me(ctx, f.erin.Actor())
	require.NoError(t, err)
	assert.Equal(t, f.erin.Email, me.Email)

	profile, err := f.svc.Profile(ctx, f.erin.Actor())
	require.NoError(t, err)
	require.NotNil(t, profile.ReportingEmail)
	assert.Equal(t, "alice@5nance.com", *profile.ReportingEmail)
	assert.Equal(t, "admin", *profile.ReportingRole)

	rootProfile, err := f.svc.Profile(ctx, f.root.Actor())
	require.NoError(t, err)
	assert.Nil(t, rootProfile.ReportingEmail)

	ghost := access.Actor{ID: 99, Role: access.RoleEmployee}
	_, err = f.svc.Me(ctx, ghost)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Roles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	names := func(actor access.Actor) []string {
		roles, err := f.svc.Roles(ctx, actor)
		require.NoError(t, err)
		var out []string
		for _, r := range roles {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"admin", "employee", "hr"}, names(f.root.Actor()))
	assert.Equal(t, []string{"employee"}, names(f.alice.Actor()))
	assert.Empty(t, names(f.erin.Actor()))
}

func TestAuthService_UpdateMobile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.svc.UpdateMobile(ctx, f.erin.Actor(), auth.UpdateMobileRequest{Mobile: "9876543210"}))
	me, err := f.svc.Me(ctx, f.erin.Actor())
	require.NoError(t, err)
	assert.Equal(t, "9876543210", *me.Mobile)

	assert.Error(t, f.svc.UpdateMobile(ctx, f.erin.Actor(), auth.UpdateMobileRequest{Mobile: "12ab"}))
}

func TestAuthService_UploadAvatar(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	body := strings.NewReader("png bytes")

	f.files.On("UploadAvatar", ctx, f.erin.ID, body).Return("http://cdn.test/avatars/3.jpg", nil).Once()

	resp, err := f.svc.UploadAvatar(ctx, f.erin.Actor(), body)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/avatars/3.jpg", resp.ProfileImage)

	me, err := f.svc.Me(ctx, f.erin.Actor())
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/avatars/3.jpg", *me.ProfileImage)

	bad := strings.NewReader("text")
	f.files.On("UploadAvatar", ctx, f.erin.ID, bad).Return("", file.ErrUnsupportedImage).Once()
	_, err = f.svc.UploadAvatar(ctx, f.erin.Actor(), bad)
	assert.ErrorIs(t, err, auth.ErrInvalidImage)

	f.files.AssertExpectations(t)
}

func TestAuthService_ForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var link string
	f.mailer.On("SendPasswordReset", ctx, "erin@5nance.com", "erin", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { link = args.String(3) }).
		Return(nil).Once()

	require.NoError(t, f.svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "ERIN@5nance.com"}))
	f.mailer.AssertExpectations(t)

	require.True(t, strings.HasPrefix(link, "https://app.test/reset-password?token="))
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := parsed.Query().Get("token")

	err = f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: token, NewPassword: "brand-new", ConfirmPassword: "brand-new"})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "erin@5nance.com", Password: "erin-pass"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, auth.LoginRequest{Email: "erin@5nance.com", Password: "brand-new"})
	assert.NoError(t, err)
}

func TestAuthService_ForgotPasswordIsSilent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.NoError(t, f.svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "nobody@5nance.com"}))

	f.mailer.On("SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()
	assert.NoError(t, f.svc.ForgotPassword(ctx, auth.ForgotPasswordRequest{Email: "alice@5nance.com"}))
	f.mailer.AssertExpectations(t)
}

func TestAuthService_ResetPasswordRejectsTokens(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	accessToken, _, err := f.jwt.GenerateAccessToken(f.erin.Actor(), f.erin.Email)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "access token", token: accessToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: tt.token, NewPassword: "brand-new", ConfirmPassword: "brand-new"})
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}

	orphan, _, err := f.jwt.GenerateResetToken(404, "ghost@5nance.com")
	require.NoError(t, err)
	err = f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: orphan, NewPassword: "brand-new", ConfirmPassword: "brand-new"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	err = f.svc.ResetPassword(ctx, auth.ResetPasswordRequest{Token: orphan, NewPassword: "short", ConfirmPassword: "short"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_SeedSuperAdmin(t *testing.T) {
	ctx := context.Background()
	password.Cost = bcrypt.MinCost
	store := memstore.New()
	jwtService, err := jwt.NewJWTService(testSecret, "1h", "15m")
	require.NoError(t, err)
	svc := NewAuthService(store.Transactor(), store.Users(), jwtService, nil, nil, nil, "")

	req := auth.SeedSuperAdminRequest{Name: "Root", Email: "Root@5nance.com", Password: "secret1", Mobile: "9876543210"}
	require.NoError(t, svc.SeedSuperAdmin(ctx, req))
	require.NoError(t, svc.SeedSuperAdmin(ctx, req), "seeding twice is a no-op")

	admins, err := store.Users().ListByRole(ctx, access.RoleSuperAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "root@5nance.com", admins[0].Email)
	assert.Equal(t, access.NoSuperior, admins[0].ReportingID)

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: "root@5nance.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.User.Role)
}
