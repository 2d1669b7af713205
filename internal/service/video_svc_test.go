package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

func TestVideoDetails_Maps(t *testing.T) {
	fake := newFakePlatform()
	fake.details["dQw4w9WgXcQ"] = youtube.VideoDetail{
		ID:           "dQw4w9WgXcQ",
		Title:        "Some Video",
		Description:  "desc",
		ChannelID:    "UCabc",
		ChannelTitle: "Test Channel",
		PublishedAt:  "2009-10-25T06:57:33Z",
		ViewCount:    1000,
		LikeCount:    10,
	}
	svc := NewVideoService(fake)

	resp, err := svc.Details(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Title != "Some Video" || resp.ChannelTitle != "Test Channel" || resp.ViewCount != 1000 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestVideoDetails_NotFound(t *testing.T) {
	svc := NewVideoService(newFakePlatform())

	_, err := svc.Details(context.Background(), "missing_____")
	var notFound *youtube.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if notFound.Kind != "video" {
		t.Errorf("kind = %s, want video", notFound.Kind)
	}
}

func TestVideoDetails_MissingID(t *testing.T) {
	fake := newFakePlatform()
	svc := NewVideoService(fake)

	_, err := svc.Details(context.Background(), " ")
	if !errors.Is(err, youtube.ErrMissingVideoID) {
		t.Errorf("err = %v, want ErrMissingVideoID", err)
	}
	if fake.calls["videos"] != 0 {
		t.Errorf("missing id issued %d platform calls, want 0", fake.calls["videos"])
	}
}
