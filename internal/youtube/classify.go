package youtube

import "strings"

// shortMaxSeconds is the duration ceiling for the Shorts heuristic.
const shortMaxSeconds = 60

// Classified holds the partition of one upload page. Videos and Shorts are
// disjoint and together cover every non-live entry of the input batch, in
// input order. Live and upcoming broadcasts are split off before the
// partition and kept in Live.
type Classified struct {
	Videos []VideoDetail
	Shorts []VideoDetail
	Live   []VideoDetail
}

// IsShort reports whether a video counts as a Short: an explicit "#shorts"
// title tag, or a parsed duration in (0, 60] seconds. Either condition alone
// is sufficient. A duration of 0 (indeterminate) never triggers the duration
// rule, so an untagged video with unparseable duration stays regular.
func IsShort(title string, durationSeconds int) bool {
	if strings.Contains(strings.ToLower(title), "#shorts") {
		return true
	}
	return durationSeconds > 0 && durationSeconds <= shortMaxSeconds
}

// Classify partitions a batch of video details into regular videos, shorts
// and live broadcasts. Deterministic and order-preserving.
func Classify(batch []VideoDetail) Classified {
	var c Classified
	for _, v := range batch {
		switch {
		case v.LiveBroadcast == "live" || v.LiveBroadcast == "upcoming":
			c.Live = append(c.Live, v)
		case IsShort(v.Title, v.DurationSeconds):
			c.Shorts = append(c.Shorts, v)
		default:
			c.Videos = append(c.Videos, v)
		}
	}
	return c
}
