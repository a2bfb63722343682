package gsheets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/areteselect/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredential(t *testing.T) {
	t.Run("env var takes precedence over file", func(t *testing.T) {
		t.Setenv(CredentialEnvVar, `{"type":"service_account","client_email":"svc@example.iam"}`)

		data, err := LoadCredential("does-not-exist.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), "svc@example.iam")
	})

	t.Run("invalid env var JSON is rejected", func(t *testing.T) {
		t.Setenv(CredentialEnvVar, `{"truncated":`)

		data, err := LoadCredential("does-not-exist.json")
		assert.Nil(t, data)
		assert.ErrorIs(t, err, domain.ErrCredentialInvalid)
	})

	t.Run("falls back to key file", func(t *testing.T) {
		t.Setenv(CredentialEnvVar, "")
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))

		data, err := LoadCredential(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "service_account")
	})

	t.Run("invalid key file JSON is rejected", func(t *testing.T) {
		t.Setenv(CredentialEnvVar, "")
		path := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		data, err := LoadCredential(path)
		assert.Nil(t, data)
		assert.ErrorIs(t, err, domain.ErrCredentialInvalid)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Setenv(CredentialEnvVar, "")

		data, err := LoadCredential(filepath.Join(t.TempDir(), "absent.json"))
		assert.Nil(t, data)
		assert.ErrorIs(t, err, domain.ErrCredentialMissing)
	})
}
