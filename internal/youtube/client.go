package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client implements Platform on top of the Google YouTube Data API v3.
// The API key is injected at construction; nothing here reads the
// environment. onCall, when set, is invoked once per outbound API call with
// the endpoint name (wired to a Prometheus counter in main).
type Client struct {
	svc    *youtube.Service
	onCall func(endpoint string)
}

// NewClient builds a YouTube API client with the given key.
func NewClient(ctx context.Context, apiKey string, onCall func(string)) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("youtube.NewService: %w", err)
	}
	return &Client{svc: svc, onCall: onCall}, nil
}

func (c *Client) observe(endpoint string) {
	if c.onCall != nil {
		c.onCall(endpoint)
	}
}

// channelParts covers everything the metadata fetcher needs in one call.
var channelParts = []string{"snippet", "contentDetails", "brandingSettings", "statistics"}

// ChannelByID fetches a channel's metadata by canonical ID.
func (c *Client) ChannelByID(ctx context.Context, id string) (*ChannelInfo, error) {
	c.observe("channels.list")
	resp, err := c.svc.Channels.List(channelParts).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Stage: "channel lookup", Err: err}
	}
	return narrowChannel(resp, id)
}

// ChannelByHandle resolves a "@handle" to channel metadata.
func (c *Client) ChannelByHandle(ctx context.Context, handle string) (*ChannelInfo, error) {
	c.observe("channels.list")
	resp, err := c.svc.Channels.List(channelParts).ForHandle(handle).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Stage: "channel lookup", Err: err}
	}
	return narrowChannel(resp, "@"+handle)
}

// ChannelByUsername resolves a legacy /user/ or /c/ name to channel metadata.
func (c *Client) ChannelByUsername(ctx context.Context, username string) (*ChannelInfo, error) {
	c.observe("channels.list")
	resp, err := c.svc.Channels.List(channelParts).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return nil, &FetchError{Stage: "channel lookup", Err: err}
	}
	return narrowChannel(resp, username)
}

func narrowChannel(resp *youtube.ChannelListResponse, ref string) (*ChannelInfo, error) {
	if len(resp.Items) == 0 {
		return nil, ChannelNotFound(ref)
	}
	ch := resp.Items[0]

	info := &ChannelInfo{ID: ch.Id}
	if ch.Snippet != nil {
		info.Title = ch.Snippet.Title
		info.ThumbnailURL = pickThumbnail(ch.Snippet.Thumbnails, false)
	}
	if ch.BrandingSettings != nil && ch.BrandingSettings.Image != nil {
		info.BannerURL = ch.BrandingSettings.Image.BannerExternalUrl
	}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		info.UploadsPlaylistID = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	if ch.Statistics != nil {
		info.VideoCount = ch.Statistics.VideoCount
	}
	return info, nil
}

// SearchChannels runs a channel-type search and narrows the results.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int64) ([]ChannelSearchItem, error) {
	c.observe("search.list")
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &FetchError{Stage: "search", Err: err}
	}

	items := make([]ChannelSearchItem, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Id.ChannelId == "" {
			continue
		}
		item := ChannelSearchItem{ChannelID: it.Id.ChannelId}
		if it.Snippet != nil {
			item.Title = it.Snippet.Title
			item.Description = it.Snippet.Description
			item.ThumbnailURL = pickThumbnail(it.Snippet.Thumbnails, false)
		}
		items = append(items, item)
	}
	return items, nil
}

// UploadsPage fetches one page (up to maxResults entries) of an uploads
// playlist. Non-video resources are filtered out; the uploads playlist may
// reference other resource kinds.
func (c *Client) UploadsPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*UploadPage, error) {
	c.observe("playlistItems.list")
	call := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, PlaylistFetchError(err)
	}

	page := &UploadPage{NextPageToken: resp.NextPageToken}
	for _, it := range resp.Items {
		if it.Snippet == nil || it.Snippet.ResourceId == nil {
			continue
		}
		if it.Snippet.ResourceId.Kind != "youtube#video" {
			continue
		}
		page.VideoIDs = append(page.VideoIDs, it.Snippet.ResourceId.VideoId)
	}
	return page, nil
}

// VideoDetails fetches full details for a batch of video IDs in a single
// call. Always one call per page regardless of batch size.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]VideoDetail, error) {
	c.observe("videos.list")
	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, VideoDetailsFetchError(err)
	}

	details := make([]VideoDetail, 0, len(resp.Items))
	for _, it := range resp.Items {
		d := VideoDetail{ID: it.Id}
		if it.Snippet != nil {
			d.Title = it.Snippet.Title
			d.Description = it.Snippet.Description
			d.ChannelID = it.Snippet.ChannelId
			d.ChannelTitle = it.Snippet.ChannelTitle
			d.PublishedAt = it.Snippet.PublishedAt
			d.LiveBroadcast = it.Snippet.LiveBroadcastContent
			d.ThumbnailURL = pickThumbnail(it.Snippet.Thumbnails, true)
		}
		if it.ContentDetails != nil {
			d.DurationSeconds = ParseDuration(it.ContentDetails.Duration)
		}
		if it.Statistics != nil {
			d.ViewCount = it.Statistics.ViewCount
			d.LikeCount = it.Statistics.LikeCount
		}
		details = append(details, d)
	}
	return details, nil
}

// pickThumbnail prefers high over medium over default when preferHigh is
// set (video cards), otherwise default over medium (channel avatars).
func pickThumbnail(t *youtube.ThumbnailDetails, preferHigh bool) string {
	if t == nil {
		return ""
	}
	order := []*youtube.Thumbnail{t.Default, t.Medium, t.High}
	if preferHigh {
		order = []*youtube.Thumbnail{t.High, t.Medium, t.Default}
	}
	for _, th := range order {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
