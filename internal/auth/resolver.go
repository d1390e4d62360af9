// Package auth resolves bearer tokens to workspaces. Two token forms
// are accepted: stored API keys (hash lookup) and signed service
// tokens carrying a workspace claim.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rioverde/pipedesk/internal/domain/workspace"
)

// Resolver maps bearer tokens to workspace ids.
type Resolver struct {
	keys   workspace.Repository
	tokens *TokenManager
}

// NewResolver creates a resolver. The token manager is optional; when
// nil only API keys are accepted.
func NewResolver(keys workspace.Repository, tokens *TokenManager) *Resolver {
	return &Resolver{keys: keys, tokens: tokens}
}

// ResolveWorkspace resolves a bearer token to its workspace id.
func (r *Resolver) ResolveWorkspace(ctx context.Context, token string) (string, error) {
	if strings.HasPrefix(token, "pk_") {
		workspaceID, err := r.keys.ResolveAPIKey(ctx, workspace.HashKey(token))
		if err != nil || workspaceID == "" {
			return "", fmt.Errorf("unauthorized: invalid api key")
		}
		return workspaceID, nil
	}

	if r.tokens != nil {
		claims, err := r.tokens.Validate(token)
		if err != nil {
			return "", fmt.Errorf("unauthorized: %w", err)
		}
		return claims.WorkspaceID, nil
	}

	return "", fmt.Errorf("unauthorized: invalid token")
}
