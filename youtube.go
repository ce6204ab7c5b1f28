package supadata

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// YouTubeService groups the YouTube-specific operations.
type YouTubeService struct {
	client *Client
}

// YoutubeChannelRef is the inline channel reference embedded in video,
// playlist and search payloads. It is a cross-reference, not the full
// channel entity.
type YoutubeChannelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// YoutubeVideo is the metadata of a single video.
type YoutubeVideo struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Duration            int               `json:"duration"`
	Channel             YoutubeChannelRef `json:"channel"`
	Tags                []string          `json:"tags"`
	Thumbnail           string            `json:"thumbnail"`
	UploadedDate        time.Time         `json:"uploaded_date"`
	ViewCount           int               `json:"view_count"`
	LikeCount           int               `json:"like_count"`
	TranscriptLanguages []string          `json:"transcript_languages"`
}

// YoutubeChannel is the metadata of a channel.
type YoutubeChannel struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Handle          string `json:"handle"`
	Description     string `json:"description"`
	SubscriberCount int    `json:"subscriber_count"`
	VideoCount      int    `json:"video_count"`
	Thumbnail       string `json:"thumbnail"`
	Banner          string `json:"banner"`
}

// YoutubePlaylist is the metadata of a public playlist.
type YoutubePlaylist struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	VideoCount  int               `json:"video_count"`
	ViewCount   int               `json:"view_count"`
	LastUpdated time.Time         `json:"last_updated"`
	Channel     YoutubeChannelRef `json:"channel"`
}

// VideoIds holds the identifiers returned by a channel or playlist video
// listing, split by content kind.
type VideoIds struct {
	VideoIDs []string `json:"video_ids"`
	ShortIDs []string `json:"short_ids"`
	LiveIDs  []string `json:"live_ids"`
}

// Video content type filters for channel listings.
const (
	VideoTypeAll   = "all"
	VideoTypeVideo = "video"
	VideoTypeShort = "short"
)

// Transcript fetches the transcript of a video by its ID.
//
// Deprecated: use Client.Transcript, which accepts URLs from any supported
// platform.
func (s *YouTubeService) Transcript(ctx context.Context, videoID, lang string, text bool) (*Transcript, error) {
	q := url.Values{}
	q.Set("videoId", videoID)
	q.Set("text", strconv.FormatBool(text))
	if lang != "" {
		q.Set("lang", lang)
	}

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/transcript", q, nil)
	if err != nil {
		return nil, err
	}
	return newTranscript(m, text), nil
}

// Translate fetches a transcript translated into the target language.
func (s *YouTubeService) Translate(ctx context.Context, videoID, lang string, text bool) (*TranslatedTranscript, error) {
	q := url.Values{}
	q.Set("videoId", videoID)
	q.Set("lang", lang)
	q.Set("text", strconv.FormatBool(text))

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/transcript/translate", q, nil)
	if err != nil {
		return nil, err
	}

	t := &TranslatedTranscript{Lang: getStringOr(m, "lang", lang)}
	if text {
		t.Text = getString(m, "content")
	} else {
		t.Content = chunkList(m["content"])
	}
	return t, nil
}

// Video fetches the metadata of a video by its ID.
//
// Deprecated: use Client.Metadata, which covers every supported platform.
func (s *YouTubeService) Video(ctx context.Context, id string) (*YoutubeVideo, error) {
	q := url.Values{}
	q.Set("id", id)

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/video", q, nil)
	if err != nil {
		return nil, err
	}
	return newYoutubeVideo(m, id), nil
}

// Channel fetches the metadata of a channel by its ID.
func (s *YouTubeService) Channel(ctx context.Context, id string) (*YoutubeChannel, error) {
	q := url.Values{}
	q.Set("id", id)

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/channel", q, nil)
	if err != nil {
		return nil, err
	}
	return &YoutubeChannel{
		ID:              getStringOr(m, "id", id),
		Name:            getString(m, "name"),
		Handle:          getString(m, "handle"),
		Description:     getString(m, "description"),
		SubscriberCount: getInt(m, "subscriber_count"),
		VideoCount:      getInt(m, "video_count"),
		Thumbnail:       getString(m, "thumbnail"),
		Banner:          getString(m, "banner"),
	}, nil
}

// Playlist fetches the metadata of a public playlist by its ID.
func (s *YouTubeService) Playlist(ctx context.Context, id string) (*YoutubePlaylist, error) {
	q := url.Values{}
	q.Set("id", id)

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/playlist", q, nil)
	if err != nil {
		return nil, err
	}
	return &YoutubePlaylist{
		ID:          getStringOr(m, "id", id),
		Title:       getString(m, "title"),
		Description: getString(m, "description"),
		VideoCount:  getInt(m, "video_count"),
		ViewCount:   getInt(m, "view_count"),
		LastUpdated: getTime(m, "last_updated"),
		Channel:     channelRef(getMap(m, "channel")),
	}, nil
}

// ChannelVideosParams configures a channel video listing.
type ChannelVideosParams struct {
	// Type filters by content kind: all, video or short. Empty means all.
	Type string
	// Limit caps the number of returned IDs (1-5000). Nil uses the
	// service default.
	Limit *int
}

// ChannelVideos lists the video IDs of a channel, split by content kind.
func (s *YouTubeService) ChannelVideos(ctx context.Context, id string, p ChannelVideosParams) (*VideoIds, error) {
	if err := validateLimit(p.Limit); err != nil {
		return nil, err
	}
	typ := p.Type
	if typ == "" {
		typ = VideoTypeAll
	}
	switch typ {
	case VideoTypeAll, VideoTypeVideo, VideoTypeShort:
	default:
		return nil, invalidRequest("Invalid type provided",
			"Type must be one of: all, video, short.")
	}

	q := url.Values{}
	q.Set("id", id)
	q.Set("type", typ)
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/channel/videos", q, nil)
	if err != nil {
		return nil, err
	}
	return newVideoIds(m), nil
}

// PlaylistVideos lists the video IDs of a playlist, split by content kind.
func (s *YouTubeService) PlaylistVideos(ctx context.Context, id string, limit *int) (*VideoIds, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("id", id)
	if limit != nil {
		q.Set("limit", strconv.Itoa(*limit))
	}

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/playlist/videos", q, nil)
	if err != nil {
		return nil, err
	}
	return newVideoIds(m), nil
}

// SearchParams configures a YouTube search.
type SearchParams struct {
	// Query is the search term. Required.
	Query string
	// UploadDate filters by recency, e.g. "hour", "today", "week".
	UploadDate string
	// Type filters by result kind, e.g. "video", "channel", "playlist".
	Type string
	// Duration filters by video length, e.g. "short", "medium", "long".
	Duration string
	// Features filters by video features, e.g. "hd", "subtitles".
	Features []string
	// SortBy orders results, e.g. "relevance", "views", "date".
	SortBy string
	// Limit caps the number of results (1-5000).
	Limit *int
}

// YoutubeSearchResult is a single search hit.
type YoutubeSearchResult struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Thumbnail   string            `json:"thumbnail"`
	Duration    int               `json:"duration"`
	ViewCount   int               `json:"view_count"`
	UploadDate  time.Time         `json:"upload_date"`
	Channel     YoutubeChannelRef `json:"channel"`
}

// YoutubeSearchResponse is a page of search results.
type YoutubeSearchResponse struct {
	Query        string                `json:"query"`
	Results      []YoutubeSearchResult `json:"results"`
	TotalResults int                   `json:"total_results"`
}

// Search searches YouTube for videos, channels and playlists.
func (s *YouTubeService) Search(ctx context.Context, p SearchParams) (*YoutubeSearchResponse, error) {
	if p.Query == "" {
		return nil, invalidRequest("Query is required",
			"A non-empty search query must be provided.")
	}
	if err := validateLimit(p.Limit); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("query", p.Query)
	if p.UploadDate != "" {
		q.Set("uploadDate", p.UploadDate)
	}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.Duration != "" {
		q.Set("duration", p.Duration)
	}
	for _, f := range p.Features {
		q.Add("features", f)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}

	incrYouTubeRequests()
	m, err := s.client.do(ctx, http.MethodGet, "/youtube/search", q, nil)
	if err != nil {
		return nil, err
	}

	resp := &YoutubeSearchResponse{
		Query:        getStringOr(m, "query", p.Query),
		Results:      []YoutubeSearchResult{},
		TotalResults: getInt(m, "total_results"),
	}
	for _, rm := range getMapSlice(m, "results") {
		resp.Results = append(resp.Results, YoutubeSearchResult{
			ID:          getString(rm, "id"),
			Title:       getString(rm, "title"),
			Description: getString(rm, "description"),
			Thumbnail:   getString(rm, "thumbnail"),
			Duration:    getInt(rm, "duration"),
			ViewCount:   getInt(rm, "view_count"),
			UploadDate:  getTime(rm, "upload_date"),
			Channel:     channelRef(getMap(rm, "channel")),
		})
	}
	return resp, nil
}

// newYoutubeVideo maps a video payload, defaulting every absent field. The
// id the caller asked for backfills a missing id.
func newYoutubeVideo(m map[string]any, id string) *YoutubeVideo {
	return &YoutubeVideo{
		ID:                  getStringOr(m, "id", id),
		Title:               getString(m, "title"),
		Description:         getString(m, "description"),
		Duration:            getInt(m, "duration"),
		Channel:             channelRef(getMap(m, "channel")),
		Tags:                getStringSlice(m, "tags"),
		Thumbnail:           getString(m, "thumbnail"),
		UploadedDate:        getTime(m, "upload_date"),
		ViewCount:           getInt(m, "view_count"),
		LikeCount:           getInt(m, "like_count"),
		TranscriptLanguages: getStringSlice(m, "transcript_languages"),
	}
}

func newVideoIds(m map[string]any) *VideoIds {
	return &VideoIds{
		VideoIDs: getStringSlice(m, "video_ids"),
		ShortIDs: getStringSlice(m, "short_ids"),
		LiveIDs:  getStringSlice(m, "live_ids"),
	}
}

func channelRef(m map[string]any) YoutubeChannelRef {
	if m == nil {
		return YoutubeChannelRef{}
	}
	return YoutubeChannelRef{ID: getString(m, "id"), Name: getString(m, "name")}
}
