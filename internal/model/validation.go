package model

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks the fields the client relies on after a successful load.
// The server is authoritative for link liveness; this only rejects payloads
// too malformed to render.
func (s *SigningSession) Validate() error {
	if s.NDAName == "" {
		return errors.New("missing nda_name")
	}
	if s.NDAVersion == "" {
		return errors.New("missing nda_version")
	}
	if s.SignerName == "" {
		return errors.New("missing signer_name")
	}
	if s.ContentHTML == "" && s.ContentPlain == "" {
		return errors.New("session has no document content")
	}
	if s.ExpiresAt != "" {
		if _, err := time.Parse(time.RFC3339, s.ExpiresAt); err != nil {
			return fmt.Errorf("invalid expires_at: %w", err)
		}
	}
	return nil
}

// Expiry parses the expiry timestamp, if any.
func (s *SigningSession) Expiry() (time.Time, bool) {
	if s.ExpiresAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s.ExpiresAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
