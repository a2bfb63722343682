package gsheets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/areteselect/backend/internal/domain"
)

// CredentialEnvVar holds the whole service-account key file as one JSON
// value; used on cloud deployments where no file can be mounted.
const CredentialEnvVar = "CREDENTIALS_JSON"

// LoadCredential returns the service-account credential JSON. The
// CREDENTIALS_JSON environment variable takes precedence; the local key
// file is the development fallback.
func LoadCredential(path string) ([]byte, error) {
	if raw := os.Getenv(CredentialEnvVar); strings.TrimSpace(raw) != "" {
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("%w: %s is not valid JSON; paste the whole key file as a single value",
				domain.ErrCredentialInvalid, CredentialEnvVar)
		}
		return []byte(raw), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no %s env var and no key file at %s",
				domain.ErrCredentialMissing, CredentialEnvVar, path)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrCredentialInvalid, path, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", domain.ErrCredentialInvalid, path)
	}
	return data, nil
}
