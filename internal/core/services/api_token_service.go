package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetvision/fleet_backoffice/internal/apperrors"
	portssvc "github.com/fleetvision/fleet_backoffice/internal/core/ports/services"
	"github.com/fleetvision/fleet_backoffice/internal/platform/config"
	"golang.org/x/crypto/bcrypt"
)

// APITokenService validates configured service tokens. Presented keys
// have the form "tokenID.secret"; the token ID selects the configured
// entry and the secret is compared against its bcrypt hash, so a leaked
// config file does not leak usable credentials.
type APITokenService struct {
	tokens map[string]config.ServiceToken
}

func NewAPITokenService(tokens []config.ServiceToken) *APITokenService {
	indexed := make(map[string]config.ServiceToken, len(tokens))
	for _, t := range tokens {
		indexed[t.TokenID] = t
	}
	return &APITokenService{tokens: indexed}
}

var _ portssvc.APITokenSvc = (*APITokenService)(nil)

// ValidateToken checks a presented API key and returns the service user
// it authenticates plus the tenants it may act in.
func (s *APITokenService) ValidateToken(_ context.Context, token string) (string, []string, error) {
	tokenID, secret, found := strings.Cut(token, ".")
	if !found {
		return "", nil, fmt.Errorf("%w: malformed api key", apperrors.ErrForbidden)
	}
	entry, ok := s.tokens[tokenID]
	if !ok {
		return "", nil, fmt.Errorf("%w: unknown api key", apperrors.ErrForbidden)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(entry.SecretHash), []byte(secret)); err != nil {
		return "", nil, fmt.Errorf("%w: api key rejected", apperrors.ErrForbidden)
	}
	return entry.UserID, entry.TenantIDs, nil
}
