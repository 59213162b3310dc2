package services

import "context"

// APITokenSvc validates machine-to-machine API keys presented by
// integration clients (billing jobs, fleet telematics importers).
type APITokenSvc interface {
	// ValidateToken checks a presented API key and returns the service
	// user it authenticates plus the tenants it may act in.
	ValidateToken(ctx context.Context, token string) (userID string, tenantIDs []string, err error)
}
