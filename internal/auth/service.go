package auth

import (
	"fmt"
	"time"

	apperrors "publiflow-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is stamped on tokens minted by this service (test and operator tokens only)
const Issuer = "publiflow-backend"

// AuthService verifies session tokens issued by the identity provider
type AuthService struct {
	secret []byte
	now    func() time.Time
}

// AuthClaims represents JWT token claims.
// Subject carries the owning user's UUID.
type AuthClaims struct {
	Email                string `json:"email,omitempty" example:"ana@example.com"`
	Role                 string `json:"role,omitempty" example:"authenticated"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the validate endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	UserID uuid.UUID   `json:"user_id"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a verifier for HS256 tokens signed with secret
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret), now: time.Now}, nil
}

// UserID parses the subject as the owning user's id
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrInvalidUserID
	}
	return id, nil
}

// GenerateJWT mints a token for userID; used by operators and tests, sessions come from the identity provider
func (s *AuthService) GenerateJWT(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
