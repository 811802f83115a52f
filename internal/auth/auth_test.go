package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"publiflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-jwt-operations"

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService("")
	assert.Error(t, err)
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)

	userID := uuid.New()
	token, err := service.GenerateJWT(userID, "ana@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)

	token, err := service.GenerateJWT(uuid.New(), "", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTWrongSecret(t *testing.T) {
	issuer, err := NewAuthService("another-secret")
	require.NoError(t, err)
	verifier, err := NewAuthService(testSecret)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestClaimsUserIDRejectsNonUUIDSubject(t *testing.T) {
	claims := &AuthClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "12345"}}

	_, err := claims.UserID()

	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)
	middleware := NewAuthMiddleware(service)

	userID := uuid.New()
	token, err := service.GenerateJWT(userID, "ana@example.com", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		email, _ := GetUserEmail(c)
		ctxUser, _ := c.Request.Context().Value(logger.UserIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": email, "ctx_user": ctxUser})
	})

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", status: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, userID.String(), body["user_id"])
				assert.Equal(t, userID.String(), body["ctx_user"])
				assert.Equal(t, "ana@example.com", body["email"])
			}
		})
	}
}

func TestValidateTokenHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	userID := uuid.New()
	token, err := service.GenerateJWT(userID, "", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/validate", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	handler.ValidateToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response AuthValidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Valid)
	assert.Equal(t, userID, response.UserID)
}

func TestStateSigner(t *testing.T) {
	signer := NewStateSigner(testSecret)
	userID := uuid.New()

	state, err := signer.Sign(userID)
	require.NoError(t, err)

	got, err := signer.Verify(state)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = NewStateSigner("other").Verify(state)
	assert.Error(t, err)

	// a session token is not a valid state
	service, err := NewAuthService(testSecret)
	require.NoError(t, err)
	sessionToken, err := service.GenerateJWT(userID, "", time.Hour)
	require.NoError(t, err)
	_, err = signer.Verify(sessionToken)
	assert.Error(t, err)
}

func TestStateSignerExpiry(t *testing.T) {
	signer := NewStateSigner(testSecret)
	signer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	state, err := signer.Sign(uuid.New())
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Verify(state)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
