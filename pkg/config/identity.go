package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"

	"pinhole-firmware/pkg/globals"
)

// Identity distinguishes this unit from every other one built. It is
// generated on first boot and survives resets alongside the image counter.
type Identity struct {
	ID              string `json:"id"`
	FirmwareVersion string `json:"firmware_version"`
}

// LoadIdentity reads the persisted device identity, creating it on first
// boot.
func LoadIdentity() (*Identity, error) {
	return loadIdentity(globals.IdentityPath)
}

func loadIdentity(path string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		var id Identity
		if err := json.Unmarshal(data, &id); err != nil {
			return nil, fmt.Errorf("failed to parse identity: %w", err)
		}
		id.FirmwareVersion = globals.FirmwareVersion
		return &id, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read identity: %w", err)
	}

	u, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device ID: %w", err)
	}

	id := &Identity{
		ID:              u.String(),
		FirmwareVersion: globals.FirmwareVersion,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create identity directory: %w", err)
	}

	out, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal identity: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write identity: %w", err)
	}

	return id, nil
}
