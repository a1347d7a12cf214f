package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/greenlease/greenlease/internal/config"
	"github.com/greenlease/greenlease/internal/utils"
)

var (
	authMu     sync.Mutex
	authClient *authorizer.AuthorizerClient
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	authMu.Lock()
	defer authMu.Unlock()
	return authClient != nil
}

// InitAuthorizer creates the shared Authorizer client. A no-op once a client
// exists; a failed attempt leaves it unset so the next request retries.
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	authMu.Lock()
	defer authMu.Unlock()

	if authClient != nil {
		return nil
	}

	// Ping the Authorizer service first
	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		return fmt.Errorf("authorizer ping failed: %w", err)
	}

	redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
	log.Printf("Initializing Authorizer: authorizerURL=%s, clientID=%s, redirectURL=%s",
		cfg.AuthzURL, cfg.AuthzClientID, redirectURL)

	client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create authorizer client: %w", err)
	}

	authClient = client
	return nil
}

// ValidateSession validates a session cookie for the given roles
func ValidateSession(cookie string, roles []string) (map[string]interface{}, error) {
	authMu.Lock()
	client := authClient
	authMu.Unlock()
	if client == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	return map[string]interface{}{
		"is_valid": res.IsValid,
		"user":     res.User,
	}, nil
}
