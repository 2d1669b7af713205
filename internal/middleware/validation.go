package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxVideoIDLen   = 16 // YouTube video IDs are 11 chars; leave headroom
	MaxChannelIDLen = 64 // allowed_content.content_id VARCHAR(64)
	MaxQueryLen     = 200
)

var (
	// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
	videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// channelIDRe matches YouTube channel IDs: alphanumeric, dash, underscore.
	channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// uuidRe matches allowed-content entry IDs.
	uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// ErrorResponse returns the uniform error envelope the client consumes:
// a flat {"error": message} object with a non-2xx status.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateChannelID checks that a channel ID is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 64 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateEntryID checks that an allowed-content entry ID is a UUID.
func ValidateEntryID(id string) (string, string) {
	id = strings.TrimSpace(strings.ToLower(id))
	if id == "" {
		return "", "entry id is required"
	}
	if !uuidRe.MatchString(id) {
		return "", "entry id must be a UUID"
	}
	return id, ""
}

// TruncateQuery trims and bounds a free-text search query.
func TruncateQuery(q string) string {
	q = strings.TrimSpace(q)
	if len(q) > MaxQueryLen {
		q = q[:MaxQueryLen]
	}
	return q
}
