package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/deboragomesrs/kidsafe-browser/internal/model"
	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

// seedChannel populates the fake with one channel and n uploads. Titles and
// durations alternate so pages contain both regular videos and shorts.
func seedChannel(f *fakePlatform, channelID string, n int) {
	f.channels[channelID] = &youtube.ChannelInfo{
		ID:                channelID,
		Title:             "Test Channel",
		ThumbnailURL:      "https://example.com/thumb.jpg",
		BannerURL:         "https://example.com/banner.jpg",
		UploadsPlaylistID: "UU" + channelID,
		VideoCount:        uint64(n),
	}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("vid%03d", i)
		f.uploads["UU"+channelID] = append(f.uploads["UU"+channelID], id)
		d := youtube.VideoDetail{
			ID:              id,
			Title:           fmt.Sprintf("Upload %d", i),
			ChannelID:       channelID,
			DurationSeconds: 300,
		}
		if i%5 == 0 {
			d.DurationSeconds = 30
		}
		f.details[id] = d
	}
}

func TestFetchPage_CursorChain(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 120)
	svc := NewChannelService(fake)
	ctx := context.Background()

	var token string
	var sizes []int
	for i := 0; i < 3; i++ {
		resp, err := svc.FetchPage(ctx, model.ChannelPageRequest{ChannelID: "UCabc", PageToken: token})
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", i+1, err)
		}
		sizes = append(sizes, len(resp.Videos)+len(resp.Shorts)+len(resp.Live))
		token = resp.NextPageToken
	}

	want := []int{50, 50, 20}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("page %d returned %d entries, want %d", i+1, sizes[i], want[i])
		}
	}
	if token != "" {
		t.Errorf("final nextPageToken = %q, want empty (end of collection)", token)
	}
}

func TestFetchPage_TwoCallsPerPage(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 10)
	svc := NewChannelService(fake)

	_, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCabc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Entry list plus one batched detail call, never per-video calls.
	if fake.calls["playlist"] != 1 {
		t.Errorf("playlist calls = %d, want 1", fake.calls["playlist"])
	}
	if fake.calls["videos"] != 1 {
		t.Errorf("video detail calls = %d, want 1 (batched)", fake.calls["videos"])
	}
}

func TestFetchPage_AssemblesMetadata(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 3)
	svc := NewChannelService(fake)

	resp, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCabc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ChannelID != "UCabc" || resp.ChannelName != "Test Channel" {
		t.Errorf("metadata = %s/%s, want UCabc/Test Channel", resp.ChannelID, resp.ChannelName)
	}
	if resp.ChannelBannerURL != "https://example.com/banner.jpg" {
		t.Errorf("banner = %s", resp.ChannelBannerURL)
	}
	if resp.VideoCount != 3 {
		t.Errorf("videoCount = %d, want 3", resp.VideoCount)
	}

	for _, v := range append(append([]model.VideoSummary{}, resp.Videos...), resp.Shorts...) {
		if v.URL != "https://www.youtube.com/watch?v="+v.ID {
			t.Errorf("video %s has URL %s, want canonical watch URL", v.ID, v.URL)
		}
		if v.ChannelID != "UCabc" {
			t.Errorf("video %s missing channel back-reference", v.ID)
		}
	}
}

func TestFetchPage_ResolvesURLWhenNoID(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 2)
	svc := NewChannelService(fake)

	resp, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{
		ChannelURL: "https://youtube.com/channel/UCabc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ChannelID != "UCabc" {
		t.Errorf("channelId = %s, want UCabc", resp.ChannelID)
	}
}

func TestFetchPage_MissingReference(t *testing.T) {
	svc := NewChannelService(newFakePlatform())

	_, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{})
	if !errors.Is(err, youtube.ErrMissingChannelReference) {
		t.Errorf("err = %v, want ErrMissingChannelReference", err)
	}
}

func TestFetchPage_ChannelNotFound(t *testing.T) {
	svc := NewChannelService(newFakePlatform())

	_, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCmissing"})
	var notFound *youtube.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestFetchPage_DetailsFailureFailsWholePage(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 10)
	fake.failStage = "details"
	svc := NewChannelService(fake)

	resp, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCabc"})
	if resp != nil {
		t.Fatal("failed page must not return a partial payload")
	}
	var fetch *youtube.FetchError
	if !errors.As(err, &fetch) || fetch.Stage != "video details" {
		t.Errorf("err = %v, want video details FetchError", err)
	}
}

func TestFetchPage_PlaylistFailureFailsWholePage(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCabc", 10)
	fake.failStage = "playlist"
	svc := NewChannelService(fake)

	resp, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCabc"})
	if resp != nil {
		t.Fatal("failed page must not return a partial payload")
	}
	var fetch *youtube.FetchError
	if !errors.As(err, &fetch) || fetch.Stage != "playlist" {
		t.Errorf("err = %v, want playlist FetchError", err)
	}
}

func TestFetchPage_EmptyChannelSkipsDetailCall(t *testing.T) {
	fake := newFakePlatform()
	seedChannel(fake, "UCempty", 0)
	svc := NewChannelService(fake)

	resp, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCempty"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Videos) != 0 || len(resp.Shorts) != 0 {
		t.Errorf("empty channel returned entries: %+v", resp)
	}
	if fake.calls["videos"] != 0 {
		t.Errorf("video detail calls = %d, want 0 for an empty page", fake.calls["videos"])
	}
}

func TestFetchPage_NoAPIKey(t *testing.T) {
	svc := NewChannelService(nil)

	_, err := svc.FetchPage(context.Background(), model.ChannelPageRequest{ChannelID: "UCabc"})
	if !errors.Is(err, youtube.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}
