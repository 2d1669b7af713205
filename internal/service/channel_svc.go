package service

import (
	"context"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// pageSize is the upload page size requested from the platform (API maximum).
const pageSize = 50

// ChannelService runs the resolve → metadata → paginate → classify pipeline
// for one channel page. Stages are strictly sequential; the first failure
// aborts the request and no partial payload is ever returned. Nothing is
// cached between requests: identical concurrent requests each pay their own
// platform calls.
type ChannelService struct {
	api      youtube.Platform
	resolver *youtube.Resolver
}

func NewChannelService(api youtube.Platform) *ChannelService {
	return &ChannelService{api: api, resolver: youtube.NewResolver(api)}
}

// FetchPage assembles one page of a channel's uploads.
func (s *ChannelService) FetchPage(ctx context.Context, req model.ChannelPageRequest) (*model.ChannelPageResponse, error) {
	if s.api == nil {
		return nil, youtube.ErrMissingAPIKey
	}

	channelID := req.ChannelID
	if channelID == "" {
		if req.ChannelURL == "" {
			return nil, youtube.ErrMissingChannelReference
		}
		id, err := s.resolver.Resolve(ctx, req.ChannelURL)
		if err != nil {
			return nil, err
		}
		channelID = id
	}

	info, err := s.api.ChannelByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	page, err := s.api.UploadsPage(ctx, info.UploadsPlaylistID, req.PageToken, pageSize)
	if err != nil {
		return nil, err
	}

	// Entry list and batch details are always exactly two calls per page,
	// never per-video calls.
	var details []youtube.VideoDetail
	if len(page.VideoIDs) > 0 {
		details, err = s.api.VideoDetails(ctx, page.VideoIDs)
		if err != nil {
			return nil, err
		}
	}

	classified := youtube.Classify(details)

	return &model.ChannelPageResponse{
		ChannelID:           info.ID,
		ChannelName:         info.Title,
		ChannelThumbnailURL: info.ThumbnailURL,
		ChannelBannerURL:    info.BannerURL,
		VideoCount:          info.VideoCount,
		Videos:              summaries(classified.Videos),
		Shorts:              summaries(classified.Shorts),
		Live:                summaries(classified.Live),
		NextPageToken:       page.NextPageToken,
	}, nil
}

func summaries(details []youtube.VideoDetail) []model.VideoSummary {
	out := make([]model.VideoSummary, 0, len(details))
	for _, d := range details {
		out = append(out, model.VideoSummary{
			ID:           d.ID,
			Title:        d.Title,
			ThumbnailURL: d.ThumbnailURL,
			URL:          model.WatchURL(d.ID),
			ChannelID:    d.ChannelID,
		})
	}
	return out
}
