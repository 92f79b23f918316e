package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
)

const (
	TokenTypeAccess = "access"
	TokenTypeReset  = "reset"
)

type Service interface {
	GenerateAccessToken(actor access.Actor, email string) (token string, expiresAt int64, err error)
	GenerateResetToken(userID int64, email string) (token string, expiresAt int64, err error)
	ValidateResetToken(tokenString string) (userID int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	resetTokenExpiration  time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, resetTokenExpirationTime string) (*JWTService, error) {
	accessExp, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("parse access token expiration: %w", err)
	}
	resetExp, err := time.ParseDuration(resetTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("parse reset token expiration: %w", err)
	}

	return &JWTService{
		accessTokenExpiration: accessExp,
		resetTokenExpiration:  resetExp,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) GenerateAccessToken(actor access.Actor, email string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":      actor.ID,
		"email":        email,
		"role":         actor.Role.String(),
		"reporting_id": actor.ReportingID,
		"type":         TokenTypeAccess,
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateResetToken issues a short-lived token that only the password reset
// endpoint accepts.
func (j *JWTService) GenerateResetToken(userID int64, email string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.resetTokenExpiration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"type":    TokenTypeReset,
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateResetToken(tokenString string) (userID int64, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return 0, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeReset {
		return 0, jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return 0, jwt.ErrInvalidJWT()
	}

	userID, ok = asInt64(userIDVal)
	if !ok || userID <= 0 {
		return 0, jwt.ErrInvalidJWT()
	}

	return userID, nil
}

// ActorFromClaims rebuilds the request identity from access token claims.
func ActorFromClaims(claims map[string]interface{}) (access.Actor, error) {
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return access.Actor{}, jwt.ErrInvalidJWT()
	}

	userID, ok := asInt64(claims["user_id"])
	if !ok || userID <= 0 {
		return access.Actor{}, jwt.ErrInvalidJWT()
	}

	roleName, _ := claims["role"].(string)
	role, ok := access.ParseRole(roleName)
	if !ok {
		return access.Actor{}, access.ErrUnknownActor
	}

	reportingID, _ := asInt64(claims["reporting_id"])

	return access.Actor{ID: userID, Role: role, ReportingID: reportingID}, nil
}

// Numeric claims come back from JSON as float64.
func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), n == float64(int64(n))
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
