package supadata

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptChunks(t *testing.T) {
	var query url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		jsonHandler(200, `{
			"content": [{"text": "Hello", "offset": 0, "duration": 1000, "lang": "en"}],
			"lang": "en",
			"availableLangs": ["en", "es"]
		}`)(w, r)
	}))

	result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://www.youtube.com/watch?v=test123"})
	require.NoError(t, err)

	transcript, ok := result.(*Transcript)
	require.True(t, ok, "expected immediate *Transcript, got %T", result)
	require.Len(t, transcript.Content, 1)
	assert.Equal(t, "Hello", transcript.Content[0].Text)
	assert.Equal(t, 0, transcript.Content[0].Offset)
	assert.Equal(t, 1000, transcript.Content[0].Duration)
	assert.Equal(t, "en", transcript.Content[0].Lang)
	assert.Equal(t, "en", transcript.Lang)
	assert.Equal(t, []string{"en", "es"}, transcript.AvailableLangs)

	assert.Equal(t, "https://www.youtube.com/watch?v=test123", query.Get("url"))
	assert.Equal(t, "false", query.Get("text"))
}

func TestTranscriptChunkDefaults(t *testing.T) {
	c := newTestClient(t, jsonHandler(200, `{"content": [{"text": "hi"}]}`))

	result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://example.com/v/1"})
	require.NoError(t, err)

	transcript := result.(*Transcript)
	require.Len(t, transcript.Content, 1)
	assert.Equal(t, "hi", transcript.Content[0].Text)
	assert.Equal(t, 0, transcript.Content[0].Offset)
	assert.Equal(t, 0, transcript.Content[0].Duration)
	assert.Equal(t, "", transcript.Content[0].Lang)
	assert.Equal(t, "", transcript.Lang)
	assert.Empty(t, transcript.AvailableLangs)
}

func TestTranscriptText(t *testing.T) {
	t.Run("plain text content", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{
			"content": "Hello, this is a test transcript",
			"lang": "en",
			"availableLangs": ["en", "es"]
		}`))

		result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://example.com/v/1", Text: true})
		require.NoError(t, err)

		transcript := result.(*Transcript)
		assert.Equal(t, "Hello, this is a test transcript", transcript.Text)
		assert.Empty(t, transcript.Content)
	})

	t.Run("wrong-typed content degrades to empty string", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{"content": [{"text": "hi"}], "lang": "en"}`))

		result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://example.com/v/1", Text: true})
		require.NoError(t, err)

		transcript := result.(*Transcript)
		assert.Equal(t, "", transcript.Text)
		assert.Empty(t, transcript.Content)
	})
}

func TestTranscriptAsyncJob(t *testing.T) {
	t.Run("job id only", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{"jobId": "transcript-job-456"}`))

		result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://www.tiktok.com/@user/video/123456789"})
		require.NoError(t, err)

		job, ok := result.(*BatchJob)
		require.True(t, ok, "expected async *BatchJob, got %T", result)
		assert.Equal(t, "transcript-job-456", job.JobID)
	})

	t.Run("job id wins over accompanying content", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{
			"jobId": "transcript-job-789",
			"content": "partial text"
		}`))

		result, err := c.Transcript(context.Background(), TranscriptParams{URL: "https://example.com/v/1", Text: true})
		require.NoError(t, err)

		job, ok := result.(*BatchJob)
		require.True(t, ok, "expected async *BatchJob, got %T", result)
		assert.Equal(t, "transcript-job-789", job.JobID)
	})
}

func TestTranscriptParamsForwarded(t *testing.T) {
	var query url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		jsonHandler(200, `{"content": "ok", "lang": "es"}`)(w, r)
	}))

	_, err := c.Transcript(context.Background(), TranscriptParams{
		URL:       "https://example.com/v/1",
		Lang:      "es",
		Text:      true,
		ChunkSize: 100,
		Mode:      TranscriptModeGenerate,
	})
	require.NoError(t, err)

	assert.Equal(t, "es", query.Get("lang"))
	assert.Equal(t, "true", query.Get("text"))
	assert.Equal(t, "100", query.Get("chunkSize"))
	assert.Equal(t, "generate", query.Get("mode"))
}

func TestTranslate(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{"content": "Hola, esto es una prueba", "lang": "es"}`))

		translated, err := c.YouTube.Translate(context.Background(), "test123", "es", true)
		require.NoError(t, err)
		assert.Equal(t, "Hola, esto es una prueba", translated.Text)
		assert.Equal(t, "es", translated.Lang)
	})

	t.Run("missing lang defaults to requested", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{"content": "Hallo"}`))

		translated, err := c.YouTube.Translate(context.Background(), "test123", "de", true)
		require.NoError(t, err)
		assert.Equal(t, "de", translated.Lang)
	})

	t.Run("chunks", func(t *testing.T) {
		c := newTestClient(t, jsonHandler(200, `{
			"content": [{"text": "Hola", "offset": 0, "duration": 500, "lang": "es"}],
			"lang": "es"
		}`))

		translated, err := c.YouTube.Translate(context.Background(), "test123", "es", false)
		require.NoError(t, err)
		require.Len(t, translated.Content, 1)
		assert.Equal(t, "Hola", translated.Content[0].Text)
	})
}

func TestYouTubeTranscriptDeprecatedEndpoint(t *testing.T) {
	var path string
	var query url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		jsonHandler(200, `{
			"content": [{"text": "Hello", "offset": 0, "duration": 1000, "lang": "en"}],
			"lang": "en",
			"availableLangs": ["en"]
		}`)(w, r)
	}))

	transcript, err := c.YouTube.Transcript(context.Background(), "test123", "", false)
	require.NoError(t, err)
	assert.Equal(t, "/youtube/transcript", path)
	assert.Equal(t, "test123", query.Get("videoId"))
	require.Len(t, transcript.Content, 1)
	assert.Equal(t, "Hello", transcript.Content[0].Text)
}
