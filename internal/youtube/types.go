package youtube

import "context"

// ChannelInfo is the narrowed result of a channels.list call.
type ChannelInfo struct {
	ID                string
	Title             string
	ThumbnailURL      string
	BannerURL         string
	UploadsPlaylistID string
	VideoCount        uint64
}

// ChannelSearchItem is the narrowed result of a channel-type search.list call.
type ChannelSearchItem struct {
	ChannelID    string
	Title        string
	Description  string
	ThumbnailURL string
}

// UploadPage is one page of a channel's uploads playlist: the video IDs in
// playlist order plus the platform's continuation token. An empty
// NextPageToken means the collection is exhausted.
type UploadPage struct {
	VideoIDs      []string
	NextPageToken string
}

// VideoDetail is the narrowed result of a videos.list item. DurationSeconds
// is already parsed from the ISO-8601 token; 0 means indeterminate.
type VideoDetail struct {
	ID              string
	Title           string
	Description     string
	ChannelID       string
	ChannelTitle    string
	ThumbnailURL    string
	PublishedAt     string
	DurationSeconds int
	LiveBroadcast   string // "live", "upcoming" or "none"
	ViewCount       uint64
	LikeCount       uint64
}

// Platform is the narrow surface of the YouTube Data API the backend uses.
// The concrete implementation wraps the Google API client; tests substitute
// fakes so resolution and classification run without network.
type Platform interface {
	ChannelByID(ctx context.Context, id string) (*ChannelInfo, error)
	ChannelByHandle(ctx context.Context, handle string) (*ChannelInfo, error)
	ChannelByUsername(ctx context.Context, username string) (*ChannelInfo, error)
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]ChannelSearchItem, error)
	UploadsPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*UploadPage, error)
	VideoDetails(ctx context.Context, ids []string) ([]VideoDetail, error)
}
