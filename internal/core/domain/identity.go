package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SessionKey is the well-known key the serialized Identity lives under.
const SessionKey = "vetclinic.currentUser"

// Identity is the authenticated person behind a session.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Validate checks the fields every Identity must carry.
func (i Identity) Validate() error {
	if i.ID == "" {
		return errors.New("identity: missing id")
	}
	if !i.Role.Valid() {
		return fmt.Errorf("identity: %w: %q", ErrUnknownRole, i.Role)
	}
	return nil
}

// EncodeSession serializes an Identity for the session store.
func EncodeSession(i Identity) ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(i)
}

// DecodeSession restores an Identity from its session form. Any failure is
// reported as ErrSessionCorrupt.
func DecodeSession(raw []byte) (Identity, error) {
	var i Identity
	if err := json.Unmarshal(raw, &i); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	if err := i.Validate(); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	return i, nil
}
