// Package subtitle converts platform timed-text payloads into the canonical
// WebVTT format used for storage and display.
package subtitle

import (
	"fmt"
	"strings"
	"time"
)

// Format identifies a supported caption format
type Format string

const (
	FormatVTT     Format = "vtt"
	FormatSRT     Format = "srt"
	FormatDFXP    Format = "dfxp"
	FormatSAMI    Format = "sami"
	FormatUnknown Format = ""
)

// Header is the first line of every canonical transcript.
const Header = "WEBVTT"

// endEpsilon keeps adjacent cues from colliding on exact boundaries when a
// platform reports zero-length or boundary-truncated durations.
const endEpsilon = 100 * time.Microsecond

// Cue is a single timed-text block.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// NewCue builds a cue from float seconds as reported by platform APIs.
// End is start + duration plus a small epsilon.
func NewCue(startSec, durationSec float64, text string) Cue {
	start := time.Duration(startSec * float64(time.Second))
	end := time.Duration((startSec + durationSec) * float64(time.Second))
	return Cue{
		Start: start,
		End:   end + endEpsilon,
		Text:  flatten(text),
	}
}

// BuildVTT renders cues as canonical WebVTT: a header, a blank line, then
// sequentially indexed cue blocks.
func BuildVTT(cues []Cue) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for i, cue := range cues {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(cue.Start), FormatTimestamp(cue.End))
		b.WriteString(flatten(cue.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTimestamp renders a duration as a zero-padded HH:MM:SS.mmm timestamp.
// Sub-millisecond precision is truncated rather than rounded so a value just
// under a second boundary never renders as ":60.000".
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Millisecond)
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// flatten joins multi-line cue text with single spaces.
func flatten(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
