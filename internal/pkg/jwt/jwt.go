package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
)

type Service interface {
	// GenerateSessionToken mints a portal session token embedding the
	// caller's identity and the upstream bearer token
	GenerateSessionToken(sess auth.Session) (token string, expiresAt int64, err error)

	// SessionFromClaims rebuilds the session from verified token claims
	SessionFromClaims(claims map[string]interface{}) (auth.Session, error)

	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey  string
	sessionTTL string
	tokenAuth  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionTTL string) Service {
	return &JWTService{
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(sess auth.Session) (token string, expiresAt int64, err error) {
	ttl, err := time.ParseDuration(j.sessionTTL)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(ttl).Unix()

	claims := map[string]interface{}{
		"user_id":        sess.UserID,
		"employee_id":    sess.EmployeeID,
		"company_id":     sess.CompanyID,
		"role":           string(sess.Role),
		"upstream_token": sess.UpstreamToken,
		"type":           "session",
		"exp":            expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionFromClaims(claims map[string]interface{}) (auth.Session, error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "session" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	sess := auth.Session{
		UserID:        stringClaim(claims, "user_id"),
		EmployeeID:    stringClaim(claims, "employee_id"),
		CompanyID:     stringClaim(claims, "company_id"),
		Role:          auth.Role(stringClaim(claims, "role")),
		UpstreamToken: stringClaim(claims, "upstream_token"),
	}

	if sess.UserID == "" || sess.CompanyID == "" || sess.UpstreamToken == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}

	return sess, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}
