package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// fakePlatform is an in-memory Platform for pipeline tests. Upload
// pagination uses cursors of the form "cursor:<offset>"; an empty token
// means the first page and an empty NextPageToken means the end.
type fakePlatform struct {
	channels  map[string]*youtube.ChannelInfo  // keyed by channel ID
	uploads   map[string][]string              // playlist ID -> ordered video IDs
	details   map[string]youtube.VideoDetail   // video ID -> detail
	searched  []youtube.ChannelSearchItem
	failStage string // "playlist" or "details" to force a stage failure
	calls     map[string]int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		channels: make(map[string]*youtube.ChannelInfo),
		uploads:  make(map[string][]string),
		details:  make(map[string]youtube.VideoDetail),
		calls:    make(map[string]int),
	}
}

func (f *fakePlatform) ChannelByID(ctx context.Context, id string) (*youtube.ChannelInfo, error) {
	f.calls["channels"]++
	if info, ok := f.channels[id]; ok {
		return info, nil
	}
	return nil, youtube.ChannelNotFound(id)
}

func (f *fakePlatform) ChannelByHandle(ctx context.Context, handle string) (*youtube.ChannelInfo, error) {
	f.calls["channels"]++
	for _, info := range f.channels {
		if info.Title == handle {
			return info, nil
		}
	}
	return nil, youtube.ChannelNotFound("@" + handle)
}

func (f *fakePlatform) ChannelByUsername(ctx context.Context, username string) (*youtube.ChannelInfo, error) {
	return f.ChannelByHandle(ctx, username)
}

func (f *fakePlatform) SearchChannels(ctx context.Context, query string, maxResults int64) ([]youtube.ChannelSearchItem, error) {
	f.calls["search"]++
	if int64(len(f.searched)) > maxResults {
		return f.searched[:maxResults], nil
	}
	return f.searched, nil
}

func (f *fakePlatform) UploadsPage(ctx context.Context, playlistID, pageToken string, maxResults int64) (*youtube.UploadPage, error) {
	f.calls["playlist"]++
	if f.failStage == "playlist" {
		return nil, youtube.PlaylistFetchError(errors.New("quota exceeded"))
	}

	all := f.uploads[playlistID]
	offset := 0
	if pageToken != "" {
		n, err := strconv.Atoi(pageToken[len("cursor:"):])
		if err != nil {
			return nil, youtube.PlaylistFetchError(fmt.Errorf("bad cursor %q", pageToken))
		}
		offset = n
	}

	end := offset + int(maxResults)
	if end > len(all) {
		end = len(all)
	}

	page := &youtube.UploadPage{VideoIDs: append([]string(nil), all[offset:end]...)}
	if end < len(all) {
		page.NextPageToken = "cursor:" + strconv.Itoa(end)
	}
	return page, nil
}

func (f *fakePlatform) VideoDetails(ctx context.Context, ids []string) ([]youtube.VideoDetail, error) {
	f.calls["videos"]++
	if f.failStage == "details" {
		return nil, youtube.VideoDetailsFetchError(errors.New("backend error"))
	}

	out := make([]youtube.VideoDetail, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
