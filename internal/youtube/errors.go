package youtube

import (
	"errors"
	"fmt"
)

// Sentinel errors for user-correctable request problems.
var (
	// ErrMissingAPIKey means the YouTube API key was not configured.
	ErrMissingAPIKey = errors.New("YouTube API key not configured")

	// ErrInvalidURL means the channel URL could not be parsed at all.
	ErrInvalidURL = errors.New("channel URL is not a valid URL")

	// ErrUnsupportedURLFormat means the URL parsed but matched none of the
	// recognized channel URL shapes.
	ErrUnsupportedURLFormat = errors.New("unsupported channel URL format")

	// ErrInvalidQuery means a search query was empty or whitespace-only.
	ErrInvalidQuery = errors.New("search query is required")

	// ErrMissingChannelReference means a request carried neither a channel ID
	// nor a channel URL.
	ErrMissingChannelReference = errors.New("channelId or channelUrl is required")

	// ErrMissingVideoID means a video-details request carried no video ID.
	ErrMissingVideoID = errors.New("videoId is required")
)

// NotFoundError is returned when a channel or video lookup yields zero items.
type NotFoundError struct {
	Kind string // "channel" or "video"
	Ref  string // the handle, username, ID or URL that failed to resolve
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Ref)
}

// ChannelNotFound builds a NotFoundError for a channel reference.
func ChannelNotFound(ref string) *NotFoundError {
	return &NotFoundError{Kind: "channel", Ref: ref}
}

// VideoNotFound builds a NotFoundError for a video ID.
func VideoNotFound(id string) *NotFoundError {
	return &NotFoundError{Kind: "video", Ref: id}
}

// FetchError wraps a failed upstream platform call. Stage identifies which
// call failed ("playlist", "video details", "channel lookup", "search").
// Fetch failures abort the whole request; there is no per-item fallback.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch failed: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PlaylistFetchError wraps a failed uploads-playlist page fetch.
func PlaylistFetchError(err error) *FetchError {
	return &FetchError{Stage: "playlist", Err: err}
}

// VideoDetailsFetchError wraps a failed batch video-details fetch.
func VideoDetailsFetchError(err error) *FetchError {
	return &FetchError{Stage: "video details", Err: err}
}
