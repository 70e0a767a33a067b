package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mmynk/scribe/internal/models"
)

// Purpose scopes an action token to one out-of-band flow.
type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify-email"
	PurposeResetPassword Purpose = "reset-password"
)

// JWTManager handles ID token and action token generation and validation.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	actionTTL     time.Duration
}

// Claims represents the custom JWT claims for a user session.
type Claims struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// ActionClaims are carried by links sent through email.
type ActionClaims struct {
	UserID  string  `json:"user_id"`
	Purpose Purpose `json:"purpose"`
	// Binding ties a reset token to the password hash it was issued
	// against, so the token dies once the password changes.
	Binding string `json:"binding,omitempty"`
	jwt.RegisteredClaims
}

// NewJWTManager creates a new JWT manager with the given secret and token duration.
// secretKey should be a strong random string (e.g., 32 bytes).
// tokenDuration is how long ID tokens remain valid (e.g., 24 hours).
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		actionTTL:     time.Hour,
	}
}

// Generate creates a new ID token for the given user.
func (m *JWTManager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:        user.ID,
		Email:         user.Email,
		EmailVerified: user.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return m.sign(claims)
}

// Validate parses and validates an ID token, returning the claims if valid.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateAction creates a single-purpose token for an email link.
func (m *JWTManager) GenerateAction(user *models.User, purpose Purpose) (string, error) {
	now := time.Now()
	claims := &ActionClaims{
		UserID:  user.ID,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.actionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if purpose == PurposeResetPassword {
		claims.Binding = bindingFor(user)
	}
	return m.sign(claims)
}

// ValidateAction checks an action token against the expected purpose.
// Reset tokens must additionally pass CheckBinding against the stored user.
func (m *JWTManager) ValidateAction(tokenString string, purpose Purpose) (*ActionClaims, error) {
	claims := &ActionClaims{}
	if err := m.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CheckBinding reports whether a reset token still matches user's password.
func CheckBinding(claims *ActionClaims, user *models.User) error {
	if claims.Binding != bindingFor(user) {
		return ErrInvalidToken
	}
	return nil
}

func (m *JWTManager) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (m *JWTManager) parse(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func bindingFor(user *models.User) string {
	sum := sha256.Sum256([]byte(user.ID + ":" + user.PasswordHash))
	return hex.EncodeToString(sum[:8])
}
