package supadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 16 * 1024 * 1024

// do performs one HTTP round trip and classifies the outcome. On success it
// returns the JSON body with every key rewritten to snake_case. API-level
// failures come back as *Error; transport failures are wrapped and passed
// through unchanged in kind.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		incrTransportErrors()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		incrTransportErrors()
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	slog.Debug("api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	return classify(resp.StatusCode, path, raw)
}

// classify is the pure decision logic over a completed exchange: success,
// structured API error, unstructured gateway error, or undecodable junk.
// Every failure path ends in a *Error; nothing is swallowed.
func classify(status int, path string, body []byte) (map[string]any, error) {
	// 206 is a nominal success, but on transcript endpoints it means the
	// service could not produce a transcript.
	if status == http.StatusPartialContent && strings.Contains(path, "/transcript") {
		incrAPIErrors()
		if e, ok := decodeError(body); ok {
			return nil, e
		}
		return nil, &Error{
			Code:        "transcript-unavailable",
			Title:       "No Transcript",
			Description: "No transcript available",
		}
	}

	if status >= 200 && status < 300 {
		var raw any
		if err := json.Unmarshal(body, &raw); err != nil {
			incrAPIErrors()
			return nil, &Error{
				Code:        "internal-error",
				Title:       "Internal Error",
				Description: "Unparseable response body: " + truncateBody(body),
			}
		}
		m, ok := normalizeKeys(raw).(map[string]any)
		if !ok {
			incrAPIErrors()
			return nil, &Error{
				Code:        "internal-error",
				Title:       "Internal Error",
				Description: "Expected a JSON object response, got: " + truncateBody(body),
			}
		}
		return m, nil
	}

	incrAPIErrors()

	if e, ok := decodeError(body); ok {
		return nil, e
	}

	// Unstructured gateway failures from infrastructure in front of the API.
	switch status {
	case http.StatusForbidden:
		return nil, &Error{Code: "invalid-request", Title: "Invalid or missing API key", Description: truncateBody(body)}
	case http.StatusNotFound:
		return nil, &Error{Code: "not-found", Title: "Endpoint does not exist", Description: truncateBody(body)}
	case http.StatusTooManyRequests:
		return nil, &Error{Code: "limit-exceeded", Title: "Request limit exceeded", Description: truncateBody(body)}
	}

	return nil, &Error{
		Code:        "internal-error",
		Title:       "Internal Error",
		Description: fmt.Sprintf("Unexpected status %d: %s", status, truncateBody(body)),
	}
}

// decodeError extracts a structured error object from a response body.
// The contract drifted over time between {error, message, details,
// documentationUrl} and {code, title, description, documentationUrl}, and
// some revisions nest the object under an "error" key; all spellings are
// accepted and canonicalized.
func decodeError(body []byte) (*Error, bool) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false
	}
	m, ok := normalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, false
	}
	if inner := getMap(m, "error"); inner != nil {
		m = inner
	}

	e := &Error{
		Code:             getStringOr(m, "code", getString(m, "error")),
		Title:            getStringOr(m, "title", getString(m, "message")),
		Description:      getStringOr(m, "description", getString(m, "details")),
		DocumentationURL: getString(m, "documentation_url"),
	}
	if e.Code == "" && e.Title == "" && e.Description == "" {
		return nil, false
	}
	return e, true
}

func truncateBody(body []byte) string {
	const max = 2048
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
