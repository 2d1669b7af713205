package model

// VideoSummary is one video card in a channel page. URL is the canonical
// watch URL derived from the ID. ChannelID is a back-reference, not owned.
type VideoSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail"`
	URL          string `json:"url"`
	ChannelID    string `json:"channelId,omitempty"`
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// VideoDetailsRequest is the body of POST /api/video/details.
type VideoDetailsRequest struct {
	VideoID string `json:"videoId"`
}

// VideoDetailsResponse is the full detail payload for a single video.
type VideoDetailsResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	ViewCount    uint64 `json:"viewCount"`
	LikeCount    uint64 `json:"likeCount"`
}
