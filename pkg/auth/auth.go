// Package auth verifies bearer tokens against the external identity
// provider. A development mode maps every token to a fixed caller id so the
// full API surface works without provider credentials.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/merxlab/merx/pkg/config"
)

// ErrInvalidToken is returned for tokens the provider rejects.
var ErrInvalidToken = errors.New("invalid or expired token")

// Verifier resolves a bearer token to the caller's owner id.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// NewFromConfig picks the verifier: remote when provider credentials are
// configured, the static development verifier otherwise.
func NewFromConfig(cfg *config.AuthConfig) (Verifier, error) {
	if cfg.CredentialsPath != "" {
		return NewRemoteVerifier(cfg.CredentialsPath)
	}
	if cfg.DevUser != "" {
		return NewStaticVerifier(cfg.DevUser), nil
	}
	return nil, fmt.Errorf("no auth configured: set AUTH_PROVIDER_CREDENTIALS_PATH or AUTH_DEV_USER")
}

// StaticVerifier accepts any non-empty token as a fixed caller. Development
// only.
type StaticVerifier struct {
	userID string
}

// NewStaticVerifier creates the development verifier.
func NewStaticVerifier(userID string) *StaticVerifier {
	return &StaticVerifier{userID: userID}
}

// Verify implements Verifier.
func (v *StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}
	return v.userID, nil
}

// credentials is the on-disk service credentials layout.
type credentials struct {
	ProjectID string `json:"project_id"`
	APIKey    string `json:"api_key"`
	VerifyURL string `json:"verify_url"`
}

// RemoteVerifier validates tokens through the identity provider's lookup
// endpoint.
type RemoteVerifier struct {
	verifyURL string
	apiKey    string
	http      *http.Client
}

// NewRemoteVerifier loads provider credentials from path.
func NewRemoteVerifier(path string) (*RemoteVerifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth credentials: %w", err)
	}
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse auth credentials: %w", err)
	}
	if creds.APIKey == "" || creds.VerifyURL == "" {
		return nil, fmt.Errorf("auth credentials must include api_key and verify_url")
	}
	return &RemoteVerifier{
		verifyURL: creds.VerifyURL,
		apiKey:    creds.APIKey,
		http:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type lookupRequest struct {
	IDToken string `json:"id_token"`
}

type lookupResponse struct {
	Users []struct {
		LocalID string `json:"local_id"`
	} `json:"users"`
}

// Verify implements Verifier. Provider outages surface as errors distinct
// from ErrInvalidToken so handlers can return 5xx instead of 401.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	body, err := json.Marshal(lookupRequest{IDToken: token})
	if err != nil {
		return "", fmt.Errorf("failed to encode lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", v.apiKey)

	resp, err := v.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest:
		return "", ErrInvalidToken
	default:
		return "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		return "", fmt.Errorf("failed to decode lookup response: %w", err)
	}
	if len(lookup.Users) == 0 || lookup.Users[0].LocalID == "" {
		return "", ErrInvalidToken
	}
	return lookup.Users[0].LocalID, nil
}
