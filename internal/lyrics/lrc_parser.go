package lyrics

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// [MM:SS.ff] or [MM:SS.fff]; a 2-digit fractional field is hundredths
var timeTagRegex = regexp.MustCompile(`\[(\d{2}):(\d{2})\.(\d{2,3})\]`)

// Parse reads an LRC file into a time-sorted track. A missing or
// unreadable file yields an empty track, never an error: the caller
// decides whether "no lyrics" is fatal.
func Parse(path string) Track {
	if path == "" {
		return Track{}
	}
	file, err := os.Open(path)
	if err != nil {
		return Track{}
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses line-oriented LRC text. Lines without a time tag
// are ignored; lines whose text is empty after stripping tags are
// dropped. Invalid bytes are passed through untouched.
func ParseReader(r io.Reader) Track {
	var track Track

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		match := timeTagRegex.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		minutes, _ := strconv.Atoi(match[1])
		seconds, _ := strconv.Atoi(match[2])
		millis, _ := strconv.Atoi(match[3])
		if len(match[3]) == 2 {
			millis *= 10
		}

		text := strings.TrimSpace(timeTagRegex.ReplaceAllString(line, ""))
		if text == "" {
			continue
		}

		track = append(track, Line{
			Time: float64(minutes)*60 + float64(seconds) + float64(millis)/1000,
			Text: text,
		})
	}
	// read errors mid-stream leave a best-effort partial track

	sort.SliceStable(track, func(i, j int) bool {
		return track[i].Time < track[j].Time
	})

	return track
}
