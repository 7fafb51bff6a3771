package lyrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Format is a supported subtitle output format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// how long the last line stays on screen when nothing follows it
const lastCueTail = 5 * time.Second

// Cue is one subtitle entry derived from a lyric line: it starts at
// the line's timestamp and ends when the next line begins.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// Cues converts the track into display cues.
func (t Track) Cues() []Cue {
	cues := make([]Cue, 0, len(t))
	for i, line := range t {
		start := secondsToDuration(line.Time)
		end := start + lastCueTail
		if i+1 < len(t) {
			end = secondsToDuration(t[i+1].Time)
		}
		cues = append(cues, Cue{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  line.Text,
		})
	}
	return cues
}

// Write saves the track as a subtitle file in the given format.
func (t Track) Write(path string, format Format) error {
	switch format {
	case FormatSRT:
		return t.WriteSRT(path)
	case FormatVTT:
		return t.WriteVTT(path)
	default:
		return fmt.Errorf("unsupported subtitle format: %s", format)
	}
}

// WriteSRT saves the track as a SubRip file.
func (t Track) WriteSRT(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for _, cue := range t.Cues() {
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(cue.Start),
			formatSRTTime(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// WriteVTT saves the track as a WebVTT file.
func (t Track) WriteVTT(path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	for _, cue := range t.Cues() {
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatVTTTime(cue.Start),
			formatVTTTime(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func formatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

func formatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// GetFormatFromExtension maps a file extension to a subtitle format.
func GetFormatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	default:
		return FormatSRT
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
