package subtitle

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	vttTimestampRe = regexp.MustCompile(`(\d{2,}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2}\.\d{3})`)
	srtTimestampRe = regexp.MustCompile(`(\d{2,}:\d{2}:\d{2},\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2},\d{3})`)
	sequenceRe     = regexp.MustCompile(`^\d+$`)
)

// ParseVTT parses canonical WebVTT content back into cues.
func ParseVTT(content string) []Cue {
	return parseCueBlocks(content, vttTimestampRe, parseClockTimestamp)
}

// ParseSRT parses SubRip content into cues.
func ParseSRT(content string) []Cue {
	return parseCueBlocks(content, srtTimestampRe, parseSRTTimestamp)
}

func parseCueBlocks(content string, timestampRe *regexp.Regexp, parseTS func(string) time.Duration) []Cue {
	var cues []Cue
	var current *Cue
	var text strings.Builder

	flush := func() {
		if current != nil && text.Len() > 0 {
			current.Text = strings.TrimSpace(text.String())
			cues = append(cues, *current)
		}
		current = nil
		text.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, Header) || strings.HasPrefix(line, "NOTE") {
			continue
		}
		if matches := timestampRe.FindStringSubmatch(line); matches != nil {
			flush()
			current = &Cue{Start: parseTS(matches[1]), End: parseTS(matches[2])}
			continue
		}
		if current == nil {
			// cue identifiers and stray sequence numbers
			continue
		}
		if sequenceRe.MatchString(line) && text.Len() == 0 {
			continue
		}
		if text.Len() > 0 {
			text.WriteString(" ")
		}
		text.WriteString(stripTags(line))
	}
	flush()
	return cues
}

// parseClockTimestamp parses HH:MM:SS.mmm into a duration.
func parseClockTimestamp(ts string) time.Duration {
	parts := strings.Split(ts, ":")
	if len(parts) != 3 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.ParseFloat(parts[2], 64)
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second))
}

// parseSRTTimestamp parses HH:MM:SS,mmm into a duration.
func parseSRTTimestamp(ts string) time.Duration {
	return parseClockTimestamp(strings.Replace(ts, ",", ".", 1))
}

var tagRe = regexp.MustCompile(`</?[^>]+>`)

// stripTags removes inline markup like <v Speaker>, <i> and <b>.
func stripTags(text string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(text, ""))
}
