package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ndalink/ndasign/internal/model"
)

// Client speaks the unauthenticated signing-portal API. All four operations
// take the opaque single-use token; no credentials are ever attached.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) url(token string, parts ...string) string {
	u := c.baseURL + "/api/documents/portal/" + token + "/"
	for _, p := range parts {
		u += p + "/"
	}
	return u
}

// LoadSession resolves the token into session content, or a classified
// *APIError. Callers must not retry a failed load: the links are single-use.
func (c *Client) LoadSession(ctx context.Context, token string) (*model.SigningSession, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.url(token), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("DEBUG: portal load failed: %v", err)
		return nil, fmt.Errorf("load session: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("DEBUG: portal load status=%s", resp.Status)
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var session model.SigningSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// MarkRead records that the signer scrolled through the full document. The
// caller retries on the next qualifying scroll event if this fails.
func (c *Client) MarkRead(ctx context.Context, token string) error {
	resp, err := c.post(ctx, c.url(token, "read"), nil)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// Sign submits the drawn signature and consent. A *APIError with code
// NOT_READ means the server's read gate disagrees with the client's cache.
func (c *Client) Sign(ctx context.Context, token string, sub model.SignSubmission) (*model.SignResult, error) {
	resp, err := c.post(ctx, c.url(token, "sign"), sub)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var result model.SignResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode sign result: %w", err)
	}
	log.Printf("DEBUG: portal sign confirmed id=%s", result.ConfirmationID)
	return &result, nil
}

// Decline reports the signer's refusal. An empty reason is valid.
func (c *Client) Decline(ctx context.Context, token, reason string) error {
	resp, err := c.post(ctx, c.url(token, "decline"), model.DeclineSubmission{Reason: reason})
	if err != nil {
		return fmt.Errorf("decline: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

// apiErrorBody matches the server's rejection shape. Some endpoints use
// "error" for the human text, sign uses "message" alongside "code".
type apiErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return &APIError{Status: resp.StatusCode, Code: body.Code, Message: msg}
}
