package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by pipedesk service tokens.
type Claims struct {
	WorkspaceID string `json:"workspace_id"`
	UserID      string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 service tokens.
type TokenManager struct {
	secret string
	issuer string
}

// NewTokenManager creates a token manager.
func NewTokenManager(secret, issuer string) *TokenManager {
	if issuer == "" {
		issuer = "pipedesk"
	}
	return &TokenManager{secret: secret, issuer: issuer}
}

// Generate mints a token for a workspace.
func (tm *TokenManager) Generate(workspaceID, userID string, expiresIn time.Duration) (string, error) {
	if workspaceID == "" {
		return "", fmt.Errorf("workspace_id required")
	}
	now := time.Now()
	claims := Claims{
		WorkspaceID: workspaceID,
		UserID:      userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			Issuer:    tm.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secret))
}

// Validate parses a token and returns its claims.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tm.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token failed: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.WorkspaceID == "" {
		return nil, fmt.Errorf("token missing workspace_id")
	}
	return claims, nil
}
