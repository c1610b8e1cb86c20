package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one signing-attempt outcome. TokenHint is a truncated
// token prefix for correlation; the full token is never written to disk.
type AuditEntry struct {
	EntryID        string `json:"entryId"`
	Timestamp      string `json:"timestamp"`
	TokenHint      string `json:"tokenHint"`
	NDAName        string `json:"ndaName,omitempty"`
	SignerName     string `json:"signerName,omitempty"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
	ConfirmationID string `json:"confirmationId,omitempty"`
}

// Audit entry statuses.
const (
	StatusSigned     = "signed"
	StatusDeclined   = "declined"
	StatusDeadLink   = "dead_link"
	StatusSignFailed = "sign_failed"
)

// TokenHint shortens a signing token for audit display.
func TokenHint(token string) string {
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}

type AuditLogger struct {
	mu       sync.Mutex
	filePath string
}

func NewAuditLogger(dir string) (*AuditLogger, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &AuditLogger{
		filePath: filepath.Join(dir, "audit.jsonl"),
	}, nil
}

func (l *AuditLogger) Log(entry AuditEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.EntryID = uuid.NewString()
	entry.Timestamp = time.Now().Format(time.RFC3339)
	log.Printf("DEBUG: audit entry: token=%s status=%s", entry.TokenHint, entry.Status)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (l *AuditLogger) ReadAll() ([]AuditEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []AuditEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open audit file: %w", err)
	}
	defer f.Close()

	// Line-wise so one entry damaged by a partial write is skipped without
	// losing the entries after it.
	entries := []AuditEntry{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry AuditEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit file: %w", err)
	}
	return entries, nil
}
