// Package vibora provides a minimal client for the Vibora match-analysis
// backend: listing matches, uploading match video, polling processing
// status, and downloading the per-frame tracking CSV.
package vibora

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Client is a Vibora backend API client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns a client for the backend at baseURL, authenticated with
// the given API token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Match holds the fields we need from the /matches endpoints.
type Match struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"` // queued | processing | done | failed
	CreatedAt string `json:"created_at"`
	CSVURL    string `json:"csv_url"` // relative or absolute; set once done
}

// get performs an authenticated GET against the backend API and JSON-decodes
// the response body into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListMatches returns all matches visible to the authenticated account,
// newest first.
func (c *Client) ListMatches(ctx context.Context) ([]Match, error) {
	var resp struct {
		Matches []Match `json:"matches"`
	}
	if err := c.get(ctx, "/api/matches", &resp); err != nil {
		return nil, err
	}
	return resp.Matches, nil
}

// GetMatch returns a single match record including its processing status.
func (c *Client) GetMatch(ctx context.Context, id string) (*Match, error) {
	var m Match
	if err := c.get(ctx, "/api/matches/"+id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UploadVideo submits a match video for analysis and returns the created
// match record. The backend assigns the match ID; a client-generated request
// ID makes retried uploads idempotent on the server side.
func (c *Client) UploadVideo(ctx context.Context, videoPath, name string) (*Match, error) {
	f, err := os.Open(videoPath)
	if err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}
	part, err := mw.CreateFormFile("video", filepath.Base(videoPath))
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/matches", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("upload video: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var m Match
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &m, nil
}

// FetchAnalysisCSV downloads the tracking CSV for a match, transparently
// decompressing gzip or zstd payloads. Backends serve CSVs compressed;
// per-frame tracking data shrinks well.
func (c *Client) FetchAnalysisCSV(ctx context.Context, matchID string) (string, error) {
	m, err := c.GetMatch(ctx, matchID)
	if err != nil {
		return "", err
	}
	if m.CSVURL == "" {
		return "", fmt.Errorf("match %s: no analysis CSV yet (status %s)", matchID, m.Status)
	}

	csvURL := m.CSVURL
	if !strings.HasPrefix(csvURL, "http://") && !strings.HasPrefix(csvURL, "https://") {
		csvURL = c.baseURL + "/" + strings.TrimLeft(csvURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", csvURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download csv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download csv: HTTP %d", resp.StatusCode)
	}

	var src io.Reader = resp.Body
	switch {
	case strings.HasSuffix(csvURL, ".zst"):
		dec, err := zstd.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		src = dec
	case strings.HasSuffix(csvURL, ".gz") || resp.Header.Get("Content-Encoding") == "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read csv: %w", err)
	}
	return string(data), nil
}
