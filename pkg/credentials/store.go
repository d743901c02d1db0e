// Package credentials manages per-project encrypted LLM API keys.
// Key material is sealed with AES-256-GCM before it reaches the database;
// the random nonce is prepended to the ciphertext.
package credentials

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/weftworks/weft/ent"
	"github.com/weftworks/weft/ent/projectcredential"
)

// ErrNotFound is returned when a project has no stored key for a provider.
var ErrNotFound = errors.New("credential not found")

// Store reads and writes encrypted provider keys.
type Store struct {
	client *ent.Client
	aead   cipher.AEAD
}

// NewStore creates a credential store. masterKey must be 32 bytes
// (AES-256); it comes from the WEFT_CREDENTIAL_KEY environment variable.
func NewStore(client *ent.Client, masterKey []byte) (*Store, error) {
	if len(masterKey) != 32 {
		return nil, fmt.Errorf("credential master key must be 32 bytes, got %d", len(masterKey))
	}
	block, err := aes.NewCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return &Store{client: client, aead: aead}, nil
}

// Put stores or replaces the API key for (projectID, provider).
func (s *Store) Put(ctx context.Context, projectID, provider, apiKey string) error {
	if projectID == "" || provider == "" {
		return fmt.Errorf("project_id and provider are required")
	}
	sealed, err := s.seal([]byte(apiKey))
	if err != nil {
		return err
	}

	existing, err := s.client.ProjectCredential.Query().
		Where(
			projectcredential.ProjectIDEQ(projectID),
			projectcredential.ProviderEQ(provider),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetCiphertext(sealed).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update credential: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = s.client.ProjectCredential.Create().
			SetID(uuid.New().String()).
			SetProjectID(projectID).
			SetProvider(provider).
			SetCiphertext(sealed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to store credential: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query credential: %w", err)
	}
}

// ProviderKey returns the decrypted API key for (projectID, provider).
// Returns ErrNotFound when the project has no key for the provider.
func (s *Store) ProviderKey(ctx context.Context, projectID, provider string) (string, error) {
	row, err := s.client.ProjectCredential.Query().
		Where(
			projectcredential.ProjectIDEQ(projectID),
			projectcredential.ProviderEQ(provider),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query credential: %w", err)
	}

	plain, err := s.open(row.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt credential for project %s provider %s: %w",
			projectID, provider, err)
	}
	return string(plain), nil
}

func (s *Store) seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return s.aead.Seal(nonce, nonce, plain, nil), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	ns := s.aead.NonceSize()
	if len(sealed) < ns {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}
	return s.aead.Open(nil, sealed[:ns], sealed[ns:], nil)
}
