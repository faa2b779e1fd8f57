package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-for-auth-middleware"
	testJWTIssuer = "fintrack-auth"
)

// AuthMiddlewareTestSuite is the test suite for RequireAuth
type AuthMiddlewareTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	middleware echo.MiddlewareFunc
	testUserID uuid.UUID
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	s.echo = echo.New()
	s.middleware = RequireAuth(testJWTSecret, testJWTIssuer)
	s.testUserID = uuid.New()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) mintToken(secret string, claims jwt.RegisteredClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	s.NoError(err)
	return signed
}

func (s *AuthMiddlewareTestSuite) validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   s.testUserID.String(),
		Issuer:    testJWTIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func (s *AuthMiddlewareTestSuite) invoke(authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/summary", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var resolvedID uuid.UUID
	var nextCalled bool
	handler := s.middleware(func(c echo.Context) error {
		nextCalled = true
		resolvedID, _ = c.Get("user_id").(uuid.UUID)
		return c.NoContent(http.StatusOK)
	})

	s.NoError(handler(c))
	return rec, resolvedID, nextCalled
}

func (s *AuthMiddlewareTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	errBody, ok := response["error"].(map[string]interface{})
	s.True(ok, "expected error envelope, got %s", rec.Body.String())
	code, _ := errBody["code"].(string)
	return code
}

func (s *AuthMiddlewareTestSuite) TestValidTokenResolvesUser() {
	token := s.mintToken(testJWTSecret, s.validClaims())

	rec, resolvedID, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusOK, rec.Code)
	s.True(nextCalled)
	s.Equal(s.testUserID, resolvedID)
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	rec, _, nextCalled := s.invoke("")

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestMissingBearerPrefix() {
	token := s.mintToken(testJWTSecret, s.validClaims())

	rec, _, nextCalled := s.invoke("Token " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestExpiredToken() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token := s.mintToken(testJWTSecret, claims)

	rec, _, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestWrongSignature() {
	token := s.mintToken("some-other-secret", s.validClaims())

	rec, _, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
	s.Equal("AUTH_003", s.errorCode(rec))
}

func (s *AuthMiddlewareTestSuite) TestWrongIssuer() {
	claims := s.validClaims()
	claims.Issuer = "someone-else"
	token := s.mintToken(testJWTSecret, claims)

	rec, _, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
}

func (s *AuthMiddlewareTestSuite) TestTokenWithoutExpiry() {
	claims := s.validClaims()
	claims.ExpiresAt = nil
	token := s.mintToken(testJWTSecret, claims)

	rec, _, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
}

func (s *AuthMiddlewareTestSuite) TestNonUUIDSubject() {
	claims := s.validClaims()
	claims.Subject = "user-42"
	token := s.mintToken(testJWTSecret, claims)

	rec, _, nextCalled := s.invoke("Bearer " + token)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.False(nextCalled)
	s.Equal("AUTH_003", s.errorCode(rec))
}
