package youtube

import (
	"regexp"
	"strconv"
)

// durationRe matches ISO-8601 media durations as returned by the YouTube API,
// e.g. "PT1H2M3S", "PT45S", "PT0S". All components are optional.
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts an ISO-8601 duration token into total whole seconds.
// Absent, malformed or empty-match tokens parse to 0 rather than erroring: a
// video with indeterminate duration is treated as duration zero and classified
// by its title tag alone.
func ParseDuration(iso string) int {
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return 0
	}

	seconds := 0
	for i, mult := range []int{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0
		}
		seconds += n * mult
	}
	return seconds
}
