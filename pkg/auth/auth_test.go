package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/config"
)

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier("dev-user")

	id, err := v.Verify(context.Background(), "any-token")
	require.NoError(t, err)
	assert.Equal(t, "dev-user", id)

	_, err = v.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func writeCredentials(t *testing.T, verifyURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	raw, err := json.Marshal(map[string]string{
		"project_id": "merx-test",
		"api_key":    "test-key",
		"verify_url": verifyURL,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestRemoteVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var req lookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.IDToken {
		case "good-token":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"users": []map[string]string{{"local_id": "owner-42"}},
			})
		case "unknown-token":
			_ = json.NewEncoder(w).Encode(map[string]any{"users": []map[string]string{}})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	v, err := NewRemoteVerifier(writeCredentials(t, server.URL))
	require.NoError(t, err)

	t.Run("valid token resolves the caller", func(t *testing.T) {
		id, err := v.Verify(context.Background(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "owner-42", id)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty lookup result", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "unknown-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token short-circuits", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRemoteVerifierProviderOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	v, err := NewRemoteVerifier(writeCredentials(t, server.URL))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "good-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken, "outages are not auth failures")
}

func TestNewRemoteVerifierRejectsIncompleteCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"project_id": "x"}`), 0o600))

	_, err := NewRemoteVerifier(path)
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("dev user yields static verifier", func(t *testing.T) {
		v, err := NewFromConfig(&config.AuthConfig{DevUser: "dev-user"})
		require.NoError(t, err)
		assert.IsType(t, &StaticVerifier{}, v)
	})

	t.Run("credentials path yields remote verifier", func(t *testing.T) {
		v, err := NewFromConfig(&config.AuthConfig{
			CredentialsPath: writeCredentials(t, "https://auth.example/lookup"),
		})
		require.NoError(t, err)
		assert.IsType(t, &RemoteVerifier{}, v)
	})

	t.Run("nothing configured fails", func(t *testing.T) {
		_, err := NewFromConfig(&config.AuthConfig{})
		assert.Error(t, err)
	})
}
