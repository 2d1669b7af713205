package model

import "time"

// Allowed-content entry types.
const (
	ContentTypeChannel = "channel"
	ContentTypeVideo   = "video"
)

// AllowedContent is one entry of the parent-approved content list. Entries
// are what child mode is allowed to browse; ShortsEnabled gates the Shorts
// tab per channel.
type AllowedContent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ContentID     string    `json:"contentId"`
	Name          string    `json:"name"`
	URL           string    `json:"url,omitempty"`
	ThumbnailURL  string    `json:"thumbnailUrl,omitempty"`
	ShortsEnabled bool      `json:"shortsEnabled"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AddAllowedRequest is the body of POST /api/allowed.
type AddAllowedRequest struct {
	Type          string `json:"type"`
	ContentID     string `json:"contentId"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	ShortsEnabled bool   `json:"shortsEnabled"`
}
