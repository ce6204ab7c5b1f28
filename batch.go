package supadata

import (
	"context"
	"net/http"
	"time"
)

// BatchJob identifies an asynchronous job. Jobs are created by the batch
// operations (and by Client.Transcript when the service defers processing)
// and polled with YouTubeService.BatchResults.
type BatchJob struct {
	JobID string `json:"job_id"`
}

// BatchStatus is the lifecycle state of a batch job:
// queued -> active -> completed | failed.
type BatchStatus string

const (
	BatchStatusQueued    BatchStatus = "queued"
	BatchStatusActive    BatchStatus = "active"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

// Terminal reports whether the status is final. Stats and CompletedAt are
// only meaningful once the job is terminal.
func (s BatchStatus) Terminal() bool {
	return s == BatchStatusCompleted || s == BatchStatusFailed
}

// BatchResultItem is the outcome for one video in a batch. Exactly one of
// Transcript, Video and ErrorCode is set, depending on the job kind and on
// whether the item succeeded.
type BatchResultItem struct {
	VideoID    string        `json:"video_id"`
	Transcript *Transcript   `json:"transcript,omitempty"`
	Video      *YoutubeVideo `json:"video,omitempty"`
	ErrorCode  string        `json:"error_code,omitempty"`
}

// BatchStats summarizes a finished batch.
type BatchStats struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BatchResults is the state of a batch job. Results, Stats and CompletedAt
// are empty until the job completes.
type BatchResults struct {
	Status      BatchStatus       `json:"status"`
	Results     []BatchResultItem `json:"results"`
	Stats       *BatchStats       `json:"stats,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// TranscriptBatchParams configures a transcript batch job. Exactly one of
// VideoIDs, PlaylistID and ChannelID selects the source.
type TranscriptBatchParams struct {
	VideoIDs   []string
	PlaylistID string
	ChannelID  string
	// Lang is the preferred transcript language.
	Lang string
	// Text requests plain text instead of timed segments.
	Text bool
	// Limit caps how many videos a playlist or channel source expands to
	// (1-5000).
	Limit *int
}

// VideoBatchParams configures a video metadata batch job. Exactly one of
// VideoIDs, PlaylistID and ChannelID selects the source.
type VideoBatchParams struct {
	VideoIDs   []string
	PlaylistID string
	ChannelID  string
	Limit      *int
}

// TranscriptBatch starts a batch job fetching transcripts for many videos.
func (s *YouTubeService) TranscriptBatch(ctx context.Context, p TranscriptBatchParams) (*BatchJob, error) {
	body, err := batchSource(p.VideoIDs, p.PlaylistID, p.ChannelID)
	if err != nil {
		return nil, err
	}
	if err := validateLimit(p.Limit); err != nil {
		return nil, err
	}
	if p.Lang != "" {
		body["lang"] = p.Lang
	}
	body["text"] = p.Text
	if p.Limit != nil {
		body["limit"] = *p.Limit
	}

	incrBatchRequests()
	m, err := s.client.do(ctx, http.MethodPost, "/youtube/transcript/batch", nil, body)
	if err != nil {
		return nil, err
	}
	return &BatchJob{JobID: getString(m, "job_id")}, nil
}

// VideoBatch starts a batch job fetching metadata for many videos.
func (s *YouTubeService) VideoBatch(ctx context.Context, p VideoBatchParams) (*BatchJob, error) {
	body, err := batchSource(p.VideoIDs, p.PlaylistID, p.ChannelID)
	if err != nil {
		return nil, err
	}
	if err := validateLimit(p.Limit); err != nil {
		return nil, err
	}
	if p.Limit != nil {
		body["limit"] = *p.Limit
	}

	incrBatchRequests()
	m, err := s.client.do(ctx, http.MethodPost, "/youtube/video/batch", nil, body)
	if err != nil {
		return nil, err
	}
	return &BatchJob{JobID: getString(m, "job_id")}, nil
}

// BatchResults fetches the state of a batch job by its ID.
func (s *YouTubeService) BatchResults(ctx context.Context, jobID string) (*BatchResults, error) {
	incrBatchRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/batch/"+jobID, nil, nil)
	if err != nil {
		return nil, err
	}

	res := &BatchResults{
		Status:      BatchStatus(getString(m, "status")),
		Results:     []BatchResultItem{},
		CompletedAt: getTimePtr(m, "completed_at"),
	}
	if sm := getMap(m, "stats"); sm != nil {
		res.Stats = &BatchStats{
			Total:     getInt(sm, "total"),
			Succeeded: getInt(sm, "succeeded"),
			Failed:    getInt(sm, "failed"),
		}
	}
	for _, im := range getMapSlice(m, "results") {
		item := BatchResultItem{VideoID: getString(im, "video_id")}
		// Each item is exactly one of: transcript success, metadata
		// success, per-item error.
		switch {
		case getMap(im, "transcript") != nil:
			item.Transcript = inferredTranscript(getMap(im, "transcript"))
		case getMap(im, "video") != nil:
			item.Video = newYoutubeVideo(getMap(im, "video"), item.VideoID)
		default:
			item.ErrorCode = getString(im, "error_code")
		}
		res.Results = append(res.Results, item)
	}
	return res, nil
}

// batchSource validates the mutually exclusive source selectors and returns
// the request body carrying only the chosen one.
func batchSource(videoIDs []string, playlistID, channelID string) (map[string]any, error) {
	body := map[string]any{}
	n := 0
	if len(videoIDs) > 0 {
		body["videoIds"] = videoIDs
		n++
	}
	if playlistID != "" {
		body["playlistId"] = playlistID
		n++
	}
	if channelID != "" {
		body["channelId"] = channelID
		n++
	}
	switch {
	case n == 0:
		return nil, invalidRequest("Missing source",
			"Provide one of video_ids, playlist_id or channel_id.")
	case n > 1:
		return nil, invalidRequest("Multiple sources",
			"Provide only one of video_ids, playlist_id or channel_id.")
	}
	return body, nil
}
