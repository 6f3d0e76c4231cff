// Package contacts exposes the device address book behind a permission
// gate. In this runtime the "address book" is a JSON file the owner points
// the service at; no configured path means permission was never granted.
package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrPermissionDenied means contacts access is not granted in this runtime.
// The feature degrades gracefully; the rest of the app keeps working.
var ErrPermissionDenied = errors.New("contacts permission denied")

// Contact is one address book entry.
type Contact struct {
	Name         string   `json:"name"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`
}

// Provider lists the owner's contacts.
type Provider interface {
	ListContacts(ctx context.Context) ([]Contact, error)
}

// FileProvider reads contacts from a JSON file.
type FileProvider struct {
	path string
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider creates a provider for the given path. An empty path is
// valid and behaves as permission-denied.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// ListContacts returns the address book, or ErrPermissionDenied when no
// path is configured.
func (p *FileProvider) ListContacts(_ context.Context) ([]Contact, error) {
	if p.path == "" {
		return nil, ErrPermissionDenied
	}

	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, ErrPermissionDenied
		}
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	var list []Contact
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return list, nil
}
