package lyrics

import (
	"sort"
)

// Line is a single timestamped lyric.
type Line struct {
	Time float64 // seconds from track start
	Text string
}

// Track is the full lyric sequence for one song, sorted ascending by
// time. Duplicate timestamps keep their original parse order.
type Track []Line

// ActiveIndex returns the index of the line current at time t: the
// greatest i with track[i].Time <= t, or -1 before the first line.
func (t Track) ActiveIndex(at float64) int {
	return sort.Search(len(t), func(i int) bool {
		return t[i].Time > at
	}) - 1
}

// Duration is the timestamp of the last line, or 0 for an empty track.
func (t Track) Duration() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Time
}

// SuggestedDuration pads the last timestamp so the final line stays on
// screen for a few seconds.
func (t Track) SuggestedDuration() float64 {
	if len(t) == 0 {
		return 0
	}
	return float64(int(t.Duration())) + 5
}
