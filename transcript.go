package supadata

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// TranscriptChunk is one segment of a transcript.
type TranscriptChunk struct {
	// Text of the segment.
	Text string `json:"text"`
	// Offset from the start of the media, in milliseconds.
	Offset int `json:"offset"`
	// Duration of the segment, in milliseconds.
	Duration int `json:"duration"`
	// Lang is the ISO 639-1 language code of the segment.
	Lang string `json:"lang"`
}

// Transcript is a complete transcript. Exactly one of Content and Text is
// populated, selected by the Text request flag: segment mode fills Content,
// plain-text mode fills Text.
type Transcript struct {
	Content        []TranscriptChunk `json:"content,omitempty"`
	Text           string            `json:"text,omitempty"`
	Lang           string            `json:"lang"`
	AvailableLangs []string          `json:"available_langs"`
}

// TranslatedTranscript is a transcript translated into a requested
// language. Content and Text follow the same mutually exclusive rule as
// Transcript.
type TranslatedTranscript struct {
	Content []TranscriptChunk `json:"content,omitempty"`
	Text    string            `json:"text,omitempty"`
	Lang    string            `json:"lang"`
}

// Transcript retrieval modes.
const (
	TranscriptModeNative   = "native"
	TranscriptModeAuto     = "auto"
	TranscriptModeGenerate = "generate"
)

// TranscriptParams configures a universal transcript request.
type TranscriptParams struct {
	// URL of the content on any supported platform.
	URL string
	// Lang is the preferred transcript language (ISO 639-1).
	Lang string
	// Text requests plain text instead of timed segments.
	Text bool
	// ChunkSize is the maximum characters per segment, when positive.
	ChunkSize int
	// Mode selects transcript retrieval: native, auto or generate.
	Mode string
}

// TranscriptOrJob is the result of the universal transcript operation:
// either an immediate *Transcript, or a *BatchJob when the service decided
// to process the request asynchronously. Callers switch on the concrete
// type:
//
//	switch r := result.(type) {
//	case *Transcript:  // ready now
//	case *BatchJob:    // poll YouTube.BatchResults with r.JobID
//	}
type TranscriptOrJob interface {
	transcriptOrJob()
}

func (*Transcript) transcriptOrJob() {}
func (*BatchJob) transcriptOrJob()   {}

// Transcript fetches a transcript for a URL from any supported platform.
// The service answers either with the transcript itself or with a job ID
// for asynchronous processing; the returned TranscriptOrJob carries exactly
// one of the two.
func (c *Client) Transcript(ctx context.Context, p TranscriptParams) (TranscriptOrJob, error) {
	q := url.Values{}
	q.Set("url", p.URL)
	q.Set("text", strconv.FormatBool(p.Text))
	if p.Lang != "" {
		q.Set("lang", p.Lang)
	}
	if p.ChunkSize > 0 {
		q.Set("chunkSize", strconv.Itoa(p.ChunkSize))
	}
	if p.Mode != "" {
		q.Set("mode", p.Mode)
	}

	incrTranscriptRequests()
	m, err := c.do(ctx, http.MethodGet, "/transcript", q, nil)
	if err != nil {
		return nil, err
	}

	// A job identifier wins over any transcript payload alongside it.
	if id := getString(m, "job_id"); id != "" {
		return &BatchJob{JobID: id}, nil
	}
	return newTranscript(m, p.Text), nil
}

// newTranscript builds a Transcript from a normalized mapping. The text
// flag decides the representation: wrong-typed content degrades to the
// zero value of the requested shape rather than failing.
func newTranscript(m map[string]any, text bool) *Transcript {
	t := &Transcript{
		Lang:           getString(m, "lang"),
		AvailableLangs: getStringSlice(m, "available_langs"),
	}
	if text {
		t.Text = getString(m, "content")
	} else {
		t.Content = chunkList(m["content"])
	}
	return t
}

// inferredTranscript builds a Transcript when no request-side text flag is
// available (batch result items): the representation follows the JSON type
// of content.
func inferredTranscript(m map[string]any) *Transcript {
	if _, ok := m["content"].(string); ok {
		return newTranscript(m, true)
	}
	return newTranscript(m, false)
}

func chunkList(v any) []TranscriptChunk {
	raw, ok := v.([]any)
	if !ok {
		return []TranscriptChunk{}
	}
	chunks := make([]TranscriptChunk, 0, len(raw))
	for _, e := range raw {
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		chunks = append(chunks, TranscriptChunk{
			Text:     getString(em, "text"),
			Offset:   getInt(em, "offset"),
			Duration: getInt(em, "duration"),
			Lang:     getString(em, "lang"),
		})
	}
	return chunks
}
