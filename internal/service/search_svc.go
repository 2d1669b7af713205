package service

import (
	"context"
	"strings"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// searchMaxResults caps channel search; no pagination is exposed.
const searchMaxResults = 10

// SearchService serves the parent-mode channel search.
type SearchService struct {
	api youtube.Platform
}

func NewSearchService(api youtube.Platform) *SearchService {
	return &SearchService{api: api}
}

// Search returns up to 10 channels matching the query. An empty or
// whitespace-only query fails before any platform call is issued.
func (s *SearchService) Search(ctx context.Context, query string) ([]model.ChannelSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, youtube.ErrInvalidQuery
	}
	if s.api == nil {
		return nil, youtube.ErrMissingAPIKey
	}

	items, err := s.api.SearchChannels(ctx, query, searchMaxResults)
	if err != nil {
		return nil, err
	}

	results := make([]model.ChannelSearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, model.ChannelSearchResult{
			ChannelID:   it.ChannelID,
			Title:       it.Title,
			Description: it.Description,
			Thumbnail:   it.ThumbnailURL,
		})
	}
	return results, nil
}
