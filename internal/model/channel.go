package model

// ChannelPageRequest is the body of POST /api/channel/videos. Exactly one of
// ChannelID or ChannelURL must be usable; PageToken is the opaque cursor from
// a previous page ("" = first page).
type ChannelPageRequest struct {
	ChannelID  string `json:"channelId"`
	ChannelURL string `json:"channelUrl"`
	PageToken  string `json:"pageToken"`
}

// ChannelPageResponse is one assembled page of a channel: metadata plus the
// classified uploads and the continuation token. VideoCount is the
// platform-supplied statistic; it may be approximate and is never used for
// pagination termination.
type ChannelPageResponse struct {
	ChannelID           string         `json:"channelId"`
	ChannelName         string         `json:"channelName"`
	ChannelThumbnailURL string         `json:"channelThumbnailUrl"`
	ChannelBannerURL    string         `json:"channelBannerUrl,omitempty"`
	VideoCount          uint64         `json:"videoCount,omitempty"`
	Videos              []VideoSummary `json:"videos"`
	Shorts              []VideoSummary `json:"shorts"`
	Live                []VideoSummary `json:"live"`
	NextPageToken       string         `json:"nextPageToken,omitempty"`
}

// ChannelSearchRequest is the body of POST /api/channels/search.
type ChannelSearchRequest struct {
	Query string `json:"query"`
}

// ChannelSearchResult is one entry of the channel-search response.
type ChannelSearchResult struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}
