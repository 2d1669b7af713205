package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deboragomesrs/kidsafe-browser/internal/youtube"
)

func TestSearch_EmptyQueryFailsBeforeNetwork(t *testing.T) {
	fake := newFakePlatform()
	svc := NewSearchService(fake)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), q)
		if !errors.Is(err, youtube.ErrInvalidQuery) {
			t.Errorf("Search(%q) err = %v, want ErrInvalidQuery", q, err)
		}
	}
	if fake.calls["search"] != 0 {
		t.Errorf("empty queries issued %d platform calls, want 0", fake.calls["search"])
	}
}

func TestSearch_MapsResults(t *testing.T) {
	fake := newFakePlatform()
	fake.searched = []youtube.ChannelSearchItem{
		{ChannelID: "UC1", Title: "Alpha", Description: "first", ThumbnailURL: "https://e/1.jpg"},
		{ChannelID: "UC2", Title: "Beta", Description: "second", ThumbnailURL: "https://e/2.jpg"},
	}
	svc := NewSearchService(fake)

	results, err := svc.Search(context.Background(), "kids songs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].ChannelID != "UC1" || results[0].Thumbnail != "https://e/1.jpg" {
		t.Errorf("unexpected first result: %+v", results[0])
	}
}

func TestSearch_NoAPIKey(t *testing.T) {
	svc := NewSearchService(nil)

	_, err := svc.Search(context.Background(), "anything")
	if !errors.Is(err, youtube.ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}
