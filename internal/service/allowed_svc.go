package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/repository"
)

var (
	ErrInvalidContentType = errors.New("type must be channel or video")
	ErrMissingContentID   = errors.New("contentId is required")
	ErrMissingName        = errors.New("name is required")
)

// AllowedService manages the parent-approved content list.
// Cache-aside: list reads check Redis first; every mutation invalidates.
type AllowedService struct {
	repo  *repository.AllowedRepo
	cache *CacheService
}

func NewAllowedService(repo *repository.AllowedRepo, cache *CacheService) *AllowedService {
	return &AllowedService{repo: repo, cache: cache}
}

// List returns all allowed-content entries.
func (s *AllowedService) List(ctx context.Context) ([]model.AllowedContent, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAllowedList(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("cache: allowed list get error")
		} else if cached != nil {
			var entries []model.AllowedContent
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.AllowedContent{}
	}

	if s.cache != nil {
		if err := s.cache.SetAllowedList(ctx, entries); err != nil {
			log.Warn().Err(err).Msg("cache: allowed list set error")
		}
	}
	return entries, nil
}

// Add validates and stores a new entry, assigning its ID.
func (s *AllowedService) Add(ctx context.Context, req model.AddAllowedRequest) (*model.AllowedContent, error) {
	if req.Type != model.ContentTypeChannel && req.Type != model.ContentTypeVideo {
		return nil, ErrInvalidContentType
	}
	if req.ContentID == "" {
		return nil, ErrMissingContentID
	}
	if req.Name == "" {
		return nil, ErrMissingName
	}

	entry := model.AllowedContent{
		ID:            uuid.NewString(),
		Type:          req.Type,
		ContentID:     req.ContentID,
		Name:          req.Name,
		URL:           req.URL,
		ThumbnailURL:  req.ThumbnailURL,
		ShortsEnabled: req.ShortsEnabled,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &entry, nil
}

// Remove deletes an entry. Returns false when no entry matched.
func (s *AllowedService) Remove(ctx context.Context, id string) (bool, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.invalidate(ctx)
	}
	return n > 0, nil
}

// ToggleShorts flips the Shorts gate on an entry and returns the new value.
func (s *AllowedService) ToggleShorts(ctx context.Context, id string) (bool, error) {
	enabled, err := s.repo.ToggleShorts(ctx, id)
	if err != nil {
		return false, err
	}
	s.invalidate(ctx)
	return enabled, nil
}

func (s *AllowedService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAllowedList(ctx); err != nil {
		log.Warn().Err(err).Msg("cache: allowed list invalidate error")
	}
}
