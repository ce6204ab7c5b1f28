package supadata

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		jsonHandler(200, `{"urls": []}`)(w, r)
	}))

	_, err := c.Web.Map(context.Background(), "https://test.com")
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Get("x-api-key"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.True(t, strings.HasPrefix(got.Get("User-Agent"), "supadata-go/"))
}

func TestStructuredErrors(t *testing.T) {
	t.Run("canonical shape", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(400, `{
			"code": "video-not-found",
			"title": "Video Not Found",
			"description": "The specified video was not found",
			"documentationUrl": "https://docs.test.com/errors#video-not-found"
		}`))

		_, err := c.Web.Scrape(context.Background(), "https://test.com")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "video-not-found", apiErr.Code)
		assert.Equal(t, "Video Not Found", apiErr.Title)
		assert.Equal(t, "The specified video was not found", apiErr.Description)
		assert.Equal(t, "https://docs.test.com/errors#video-not-found", apiErr.DocumentationURL)
	})

	t.Run("legacy shape is canonicalized", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(400, `{
			"error": "unsupported-platform",
			"message": "Unsupported Platform",
			"details": "The specified platform is not supported"
		}`))

		_, err := c.Web.Scrape(context.Background(), "https://test.com")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "unsupported-platform", apiErr.Code)
		assert.Equal(t, "Unsupported Platform", apiErr.Title)
		assert.Equal(t, "The specified platform is not supported", apiErr.Description)
	})

	t.Run("nested error object", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(400, `{
			"error": {"code": "not-found", "title": "Not Found", "description": "gone"}
		}`))

		_, err := c.Web.Scrape(context.Background(), "https://test.com")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "not-found", apiErr.Code)
		assert.Equal(t, "gone", apiErr.Description)
	})
}

func TestGatewayErrors(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		body      string
		wantCode  string
		wantTitle string
	}{
		{"forbidden", 403, "Forbidden", "invalid-request", "Invalid or missing API key"},
		{"not found", 404, "no such route", "not-found", "Endpoint does not exist"},
		{"rate limited", 429, "slow down", "limit-exceeded", "Request limit exceeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, textHandler(tc.status, tc.body))

			_, err := c.Web.Scrape(context.Background(), "https://test.com")
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.wantCode, apiErr.Code)
			assert.Equal(t, tc.wantTitle, apiErr.Title)
			assert.Equal(t, tc.body, apiErr.Description)
		})
	}
}

func TestUnstructuredFailures(t *testing.T) {
	t.Run("unexpected status keeps body text", func(t *testing.T) {
		c := newTestClient(t, textHandler(502, "bad gateway"))

		_, err := c.Web.Scrape(context.Background(), "https://test.com")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "internal-error", apiErr.Code)
		assert.Contains(t, apiErr.Description, "bad gateway")
	})

	t.Run("undecodable success body", func(t *testing.T) {
		c := newTestClient(t, textHandler(200, "<html>not json</html>"))

		_, err := c.Web.Scrape(context.Background(), "https://test.com")
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "internal-error", apiErr.Code)
	})
}

func TestTransportErrorsAreNotAPIErrors(t *testing.T) {
	c := New("key", WithBaseURL("http://127.0.0.1:1")) // nothing listens here

	_, err := c.Web.Scrape(context.Background(), "https://test.com")
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failure must not be an *Error")
}

func TestPartialContent(t *testing.T) {
	t.Run("206 on transcript endpoint is an error", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(206, `{
			"error": "transcript-unavailable",
			"message": "Transcript Unavailable",
			"details": "No transcript is available for this video",
			"documentationUrl": "https://supadata.ai/documentation/errors/transcript-unavailable"
		}`))

		_, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://www.youtube.com/watch?v=x"})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "transcript-unavailable", apiErr.Code)
		assert.Equal(t, "Transcript Unavailable", apiErr.Title)
		assert.Equal(t, "No transcript is available for this video", apiErr.Description)
		assert.Equal(t, "https://supadata.ai/documentation/errors/transcript-unavailable", apiErr.DocumentationURL)
	})

	t.Run("206 without structured body synthesizes unavailable", func(t *testing.T) {
		c := newTestClient(t, textHandler(206, "partial"))

		_, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://www.youtube.com/watch?v=x"})
		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "transcript-unavailable", apiErr.Code)
		assert.Equal(t, "No Transcript", apiErr.Title)
	})

	t.Run("206 elsewhere is ordinary success", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(206, `{"urls": ["https://test.com"]}`))

		siteMap, err := c.Web.Map(context.Background(), "https://test.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://test.com"}, siteMap.URLs)
	})
}

func TestErrorString(t *testing.T) {
	e := &Error{
		Code:             "video-not-found",
		Title:            "Video Not Found",
		Description:      "The specified video was not found",
		DocumentationURL: "https://docs.test.com",
	}
	s := e.Error()
	assert.Contains(t, s, "The specified video was not found")
	assert.Contains(t, s, "Code: video-not-found")
	assert.Contains(t, s, "Title: Video Not Found")
	assert.Contains(t, s, "Documentation: https://docs.test.com")
}
