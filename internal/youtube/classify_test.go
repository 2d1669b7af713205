package youtube

import "testing"

func TestIsShort(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		duration int
		want     bool
	}{
		{"tag wins over long duration", "Fun Times #Shorts", 600, true},
		{"tag case-insensitive", "FUN #SHORTS", 600, true},
		{"duration rule without tag", "Documentary Part 1", 45, true},
		{"exactly sixty seconds", "Clip", 60, true},
		{"sixty-one seconds", "Clip", 61, false},
		{"long video no tag", "Documentary Part 1", 3600, false},
		{"unparseable duration no tag", "Documentary Part 1", 0, false},
		{"unparseable duration with tag", "Quick one #shorts", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsShort(tt.title, tt.duration); got != tt.want {
				t.Errorf("IsShort(%q, %d) = %v, want %v", tt.title, tt.duration, got, tt.want)
			}
		})
	}
}

func TestClassify_Partition(t *testing.T) {
	batch := []VideoDetail{
		{ID: "a", Title: "Long documentary", DurationSeconds: 3600},
		{ID: "b", Title: "Quick clip #Shorts", DurationSeconds: 600},
		{ID: "c", Title: "Tiny clip", DurationSeconds: 30},
		{ID: "d", Title: "Broken duration", DurationSeconds: 0},
		{ID: "e", Title: "Another long one", DurationSeconds: 300},
	}

	c := Classify(batch)

	wantVideos := []string{"a", "d", "e"}
	wantShorts := []string{"b", "c"}

	if len(c.Videos) != len(wantVideos) {
		t.Fatalf("videos = %d entries, want %d", len(c.Videos), len(wantVideos))
	}
	for i, id := range wantVideos {
		if c.Videos[i].ID != id {
			t.Errorf("videos[%d] = %s, want %s (order must follow input)", i, c.Videos[i].ID, id)
		}
	}

	if len(c.Shorts) != len(wantShorts) {
		t.Fatalf("shorts = %d entries, want %d", len(c.Shorts), len(wantShorts))
	}
	for i, id := range wantShorts {
		if c.Shorts[i].ID != id {
			t.Errorf("shorts[%d] = %s, want %s (order must follow input)", i, c.Shorts[i].ID, id)
		}
	}

	// No video lost, duplicated or in both buckets.
	seen := make(map[string]int)
	for _, v := range c.Videos {
		seen[v.ID]++
	}
	for _, v := range c.Shorts {
		seen[v.ID]++
	}
	if len(seen) != len(batch) {
		t.Errorf("partition covers %d of %d input videos", len(seen), len(batch))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("video %s appears %d times across buckets", id, n)
		}
	}
}

func TestClassify_LiveSplitOffBeforePartition(t *testing.T) {
	batch := []VideoDetail{
		{ID: "a", Title: "Stream", LiveBroadcast: "live", DurationSeconds: 0},
		{ID: "b", Title: "Premiere", LiveBroadcast: "upcoming", DurationSeconds: 0},
		{ID: "c", Title: "Normal upload", LiveBroadcast: "none", DurationSeconds: 120},
	}

	c := Classify(batch)

	if len(c.Live) != 2 || c.Live[0].ID != "a" || c.Live[1].ID != "b" {
		t.Errorf("live = %v, want [a b]", c.Live)
	}
	if len(c.Videos) != 1 || c.Videos[0].ID != "c" {
		t.Errorf("videos = %v, want [c]", c.Videos)
	}
	if len(c.Shorts) != 0 {
		t.Errorf("shorts = %v, want empty", c.Shorts)
	}
}

func TestClassify_EmptyBatch(t *testing.T) {
	c := Classify(nil)
	if len(c.Videos) != 0 || len(c.Shorts) != 0 || len(c.Live) != 0 {
		t.Errorf("empty batch should classify to empty buckets, got %+v", c)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	batch := []VideoDetail{
		{ID: "a", Title: "One #shorts", DurationSeconds: 10},
		{ID: "b", Title: "Two", DurationSeconds: 600},
	}

	first := Classify(batch)
	second := Classify(batch)

	if len(first.Videos) != len(second.Videos) || len(first.Shorts) != len(second.Shorts) {
		t.Error("same input batch must yield the same partition")
	}
}
