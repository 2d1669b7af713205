package youtube

import (
	"context"
	"regexp"
	"strings"
)

// Recognized channel URL shapes, first match wins. The patterns run against
// the normalized URL string rather than parsed path segments so that inputs
// like a bare "@handle" still resolve.
var (
	schemeRe      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	channelPathRe = regexp.MustCompile(`/channel/([A-Za-z0-9_-]+)`)
	handlePathRe  = regexp.MustCompile(`/@([A-Za-z0-9._-]+)`)
	legacyPathRe  = regexp.MustCompile(`/(?:user|c)/([A-Za-z0-9_-]+)`)
)

// Resolver turns a free-form channel URL or handle into the platform's
// canonical channel ID. Direct /channel/{id} URLs resolve without any
// network call; handle and legacy-username shapes cost one lookup each.
// Resolutions are not cached.
type Resolver struct {
	api Platform
}

func NewResolver(api Platform) *Resolver {
	return &Resolver{api: api}
}

// Resolve returns the canonical channel ID for a raw channel reference.
// Returns ErrInvalidURL for input that cannot be treated as a URL at all,
// ErrUnsupportedURLFormat when no recognized shape matches, and a
// NotFoundError when a handle or username lookup yields nothing.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsAny(s, "\x00\n\r\t") {
		return "", ErrInvalidURL
	}
	if !schemeRe.MatchString(s) {
		s = "https://" + s
	}

	if m := channelPathRe.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}

	if m := handlePathRe.FindStringSubmatch(s); m != nil {
		info, err := r.api.ChannelByHandle(ctx, m[1])
		if err != nil {
			return "", err
		}
		return info.ID, nil
	}

	if m := legacyPathRe.FindStringSubmatch(s); m != nil {
		info, err := r.api.ChannelByUsername(ctx, m[1])
		if err != nil {
			return "", err
		}
		return info.ID, nil
	}

	return "", ErrUnsupportedURLFormat
}
