package service

import (
	"context"
	"strings"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// VideoService serves single-video detail lookups for the watch page.
type VideoService struct {
	api youtube.Platform
}

func NewVideoService(api youtube.Platform) *VideoService {
	return &VideoService{api: api}
}

// Details fetches the full detail payload for one video ID.
func (s *VideoService) Details(ctx context.Context, videoID string) (*model.VideoDetailsResponse, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, youtube.ErrMissingVideoID
	}
	if s.api == nil {
		return nil, youtube.ErrMissingAPIKey
	}

	details, err := s.api.VideoDetails(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, youtube.VideoNotFound(videoID)
	}

	d := details[0]
	return &model.VideoDetailsResponse{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		ChannelID:    d.ChannelID,
		ChannelTitle: d.ChannelTitle,
		PublishedAt:  d.PublishedAt,
		ViewCount:    d.ViewCount,
		LikeCount:    d.LikeCount,
	}, nil
}
