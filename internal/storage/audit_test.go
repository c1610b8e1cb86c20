package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTokenHint(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"abcdefghijklmnop", "abcdefgh..."},
		{"short", "short"},
		{"12345678", "12345678"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TokenHint(tt.token); got != tt.want {
			t.Errorf("TokenHint(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestLogAndReadAll(t *testing.T) {
	logger, err := NewAuditLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}

	err = logger.Log(AuditEntry{
		TokenHint:      "abcdefgh...",
		NDAName:        "Employee NDA",
		SignerName:     "Jane Doe",
		Status:         StatusSigned,
		ConfirmationID: "CONF-123",
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	err = logger.Log(AuditEntry{
		TokenHint: "zyxwvuts...",
		Status:    StatusDeadLink,
		Error:     "This signing link has expired.",
	})
	if err != nil {
		t.Fatalf("Log: %v", err)
	}

	entries, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.EntryID == "" {
		t.Error("EntryID should be assigned on write")
	}
	if _, err := time.Parse(time.RFC3339, first.Timestamp); err != nil {
		t.Errorf("Timestamp not RFC3339: %q", first.Timestamp)
	}
	if first.Status != StatusSigned || first.ConfirmationID != "CONF-123" {
		t.Errorf("first entry mismatch: %+v", first)
	}
	if entries[1].Error != "This signing link has expired." {
		t.Errorf("second entry mismatch: %+v", entries[1])
	}
	if first.EntryID == entries[1].EntryID {
		t.Error("entry IDs must be unique")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewAuditLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}
	entries, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestReadAllSkipsDamagedEntries(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewAuditLogger(dir)
	if err != nil {
		t.Fatalf("NewAuditLogger: %v", err)
	}
	if err := logger.Log(AuditEntry{TokenHint: "ok", Status: StatusDeclined}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	// Simulate a crash mid-append: a mangled line in the middle of the file.
	f, err := os.OpenFile(filepath.Join(dir, "audit.jsonl"), os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("{\"entryId\":\"mangled\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	if err := logger.Log(AuditEntry{TokenHint: "also-ok", Status: StatusSigned}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	// And a truncated final line with no trailing newline.
	f, err = os.OpenFile(filepath.Join(dir, "audit.jsonl"), os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString(`{"entryId":"trunc`); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	entries, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v, want the two intact entries", entries)
	}
	if entries[0].TokenHint != "ok" || entries[1].TokenHint != "also-ok" {
		t.Errorf("entries = %+v, want both intact entries in order", entries)
	}
}
