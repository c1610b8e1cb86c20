package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	latestReleaseAPIURL = "https://api.github.com/repos/ndalink/ndasign/releases/latest"
	// LatestReleasePageURL is where users are sent when an update exists.
	LatestReleasePageURL = "https://github.com/ndalink/ndasign/releases/latest"
)

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// FetchLatestRelease returns the newest published tag and its page URL.
func FetchLatestRelease(ctx context.Context) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", latestReleaseAPIURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("build latest release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "ndasign-version-check")

	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()
	log.Printf("DEBUG: latest release response status=%s", resp.Status)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		return "", "", fmt.Errorf("latest release request failed: %s", msg)
	}

	var out latestReleaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", fmt.Errorf("decode latest release response: %w", err)
	}
	if out.TagName == "" {
		return "", "", fmt.Errorf("latest release response missing tag_name")
	}
	if out.HTMLURL == "" {
		out.HTMLURL = LatestReleasePageURL
	}
	return out.TagName, out.HTMLURL, nil
}
