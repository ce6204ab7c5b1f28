package supadata

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Metadata is the platform-polymorphic envelope returned for a URL on any
// supported platform. Which Media shape is populated depends on Type.
type Metadata struct {
	Platform    string         `json:"platform"`
	Type        string         `json:"type"`
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Author      MetadataAuthor `json:"author"`
	Stats       MetadataStats  `json:"stats"`
	Media       *MetadataMedia `json:"media,omitempty"`
	Tags        []string       `json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
}

// MetadataAuthor describes the content's author account.
type MetadataAuthor struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Verified    bool   `json:"verified"`
}

// MetadataStats holds engagement counts. Platforms that do not expose a
// counter leave it at zero.
type MetadataStats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// MetadataMedia is the media payload, variant over the content type:
// exactly one of Video, Image, Carousel and Post is populated.
type MetadataMedia struct {
	Type         string                 `json:"type,omitempty"`
	Duration     int                    `json:"duration,omitempty"`
	ThumbnailURL string                 `json:"thumbnail_url,omitempty"`
	Video        *MetadataVideo         `json:"video,omitempty"`
	Image        *MetadataImage         `json:"image,omitempty"`
	Carousel     []MetadataCarouselItem `json:"carousel,omitempty"`
	Post         *MetadataPost          `json:"post,omitempty"`
}

// MetadataVideo describes a single video asset.
type MetadataVideo struct {
	URL       string `json:"url"`
	Duration  int    `json:"duration"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Thumbnail string `json:"thumbnail"`
}

// MetadataImage describes a single image asset.
type MetadataImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MetadataCarouselItem is one entry of a carousel, tagged "video" or
// "image" with the matching asset populated.
type MetadataCarouselItem struct {
	Type  string         `json:"type"`
	Video *MetadataVideo `json:"video,omitempty"`
	Image *MetadataImage `json:"image,omitempty"`
}

// MetadataPost describes a text post.
type MetadataPost struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// Metadata fetches metadata for a URL from any supported platform.
func (c *Client) Metadata(ctx context.Context, contentURL string) (*Metadata, error) {
	q := url.Values{}
	q.Set("url", contentURL)

	incrMetadataRequests()
	m, err := c.do(ctx, http.MethodGet, "/metadata", q, nil)
	if err != nil {
		return nil, err
	}

	md := &Metadata{
		Platform:    getString(m, "platform"),
		Type:        getString(m, "type"),
		ID:          getString(m, "id"),
		URL:         getString(m, "url"),
		Title:       getString(m, "title"),
		Description: getString(m, "description"),
		Tags:        getStringSlice(m, "tags"),
		CreatedAt:   getTime(m, "created_at"),
	}
	if am := getMap(m, "author"); am != nil {
		md.Author = MetadataAuthor{
			Username:    getString(am, "username"),
			DisplayName: getString(am, "display_name"),
			AvatarURL:   getString(am, "avatar_url"),
			Verified:    getBool(am, "verified"),
		}
	}
	if sm := getMap(m, "stats"); sm != nil {
		md.Stats = MetadataStats{
			Views:    getInt(sm, "views"),
			Likes:    getInt(sm, "likes"),
			Comments: getInt(sm, "comments"),
			Shares:   getInt(sm, "shares"),
		}
	}
	if mm := getMap(m, "media"); mm != nil {
		md.Media = newMetadataMedia(mm)
	}
	return md, nil
}

func newMetadataMedia(m map[string]any) *MetadataMedia {
	media := &MetadataMedia{
		Type:         getString(m, "type"),
		Duration:     getInt(m, "duration"),
		ThumbnailURL: getString(m, "thumbnail_url"),
	}
	if vm := getMap(m, "video"); vm != nil {
		media.Video = newMetadataVideo(vm)
	}
	if im := getMap(m, "image"); im != nil {
		media.Image = newMetadataImage(im)
	}
	if pm := getMap(m, "post"); pm != nil {
		media.Post = &MetadataPost{URL: getString(pm, "url"), Text: getString(pm, "text")}
	}
	for _, cm := range getMapSlice(m, "carousel") {
		item := MetadataCarouselItem{Type: getString(cm, "type")}
		if vm := getMap(cm, "video"); vm != nil {
			item.Video = newMetadataVideo(vm)
		}
		if im := getMap(cm, "image"); im != nil {
			item.Image = newMetadataImage(im)
		}
		media.Carousel = append(media.Carousel, item)
	}
	return media
}

func newMetadataVideo(m map[string]any) *MetadataVideo {
	return &MetadataVideo{
		URL:       getString(m, "url"),
		Duration:  getInt(m, "duration"),
		Width:     getInt(m, "width"),
		Height:    getInt(m, "height"),
		Thumbnail: getString(m, "thumbnail"),
	}
}

func newMetadataImage(m map[string]any) *MetadataImage {
	return &MetadataImage{
		URL:    getString(m, "url"),
		Width:  getInt(m, "width"),
		Height: getInt(m, "height"),
	}
}
