package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndalink/ndasign/internal/model"
)

func TestClientURLs(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/documents/portal/tok/":
			json.NewEncoder(w).Encode(model.SigningSession{
				NDAName: "Test NDA", NDAVersion: "1.0", SignerName: "A", ContentPlain: "x",
			})
		case "/api/documents/portal/tok/sign/":
			json.NewEncoder(w).Encode(model.SignResult{ConfirmationID: "C-1"})
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	// Trailing slash on the base URL must not double up.
	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	if _, err := c.LoadSession(ctx, "tok"); err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if err := c.MarkRead(ctx, "tok"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if _, err := c.Sign(ctx, "tok", model.SignSubmission{}); err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := c.Decline(ctx, "tok", "reason"); err != nil {
		t.Fatalf("Decline: %v", err)
	}

	want := []string{
		"GET /api/documents/portal/tok/",
		"POST /api/documents/portal/tok/read/",
		"POST /api/documents/portal/tok/sign/",
		"POST /api/documents/portal/tok/decline/",
	}
	for i, p := range want {
		if i >= len(paths) || paths[i] != p {
			t.Fatalf("request %d = %v, want %s", i, paths, p)
		}
	}
}

func TestLoadSessionRejectsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.SigningSession{NDAName: "No signer"})
	}))
	defer srv.Close()

	sess, err := NewClient(srv.URL).LoadSession(context.Background(), "tok")
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if err := sess.Validate(); err == nil {
		t.Error("Validate should reject a session without signer or content")
	}
}

func TestDecodeAPIError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode string
		wantMsg  string
	}{
		{"error field", 410, `{"error":"Link expired.","code":"EXPIRED"}`, "EXPIRED", "Link expired."},
		{"message field", 403, `{"message":"Read it first.","code":"NOT_READ"}`, "NOT_READ", "Read it first."},
		{"plain text body", 500, "upstream exploded", "", "upstream exploded"},
		{"empty body", 502, "", "", "portal request rejected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			err := NewClient(srv.URL).MarkRead(context.Background(), "tok")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("want *APIError, got %T: %v", err, err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", apiErr.Code, tt.wantCode)
			}
			if apiErr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", apiErr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestErrCode(t *testing.T) {
	api := &APIError{Status: 410, Code: CodeExpired, Message: "x"}
	if got := ErrCode(fmt.Errorf("mark read: %w", api)); got != CodeExpired {
		t.Errorf("ErrCode = %q, want EXPIRED", got)
	}
	if got := ErrCode(errors.New("dial tcp: refused")); got != CodeNetwork {
		t.Errorf("ErrCode = %q, want NETWORK", got)
	}
	if !IsCode(api, CodeExpired) || IsCode(api, CodeNotRead) {
		t.Error("IsCode mismatch")
	}
}

func TestErrMessageFallback(t *testing.T) {
	if got := ErrMessage(errors.New("dial tcp: refused")); got != "Network error. Please check your connection." {
		t.Errorf("ErrMessage = %q", got)
	}
}

func TestTokenFromLink(t *testing.T) {
	tests := []struct {
		link    string
		want    string
		wantErr bool
	}{
		{"abc123def", "abc123def", false},
		{"  abc123def  ", "abc123def", false},
		{"https://nda.example.com/portal/abc123def", "abc123def", false},
		{"https://nda.example.com/portal/abc123def/", "abc123def", false},
		{"https://nda.example.com/portal/abc123def?utm=x", "abc123def", false},
		{"", "", true},
		{"https://nda.example.com", "", true},
	}
	for _, tt := range tests {
		got, err := TokenFromLink(tt.link)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TokenFromLink(%q) expected error", tt.link)
			}
			continue
		}
		if err != nil {
			t.Errorf("TokenFromLink(%q): %v", tt.link, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TokenFromLink(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}
