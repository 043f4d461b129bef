package subtitle

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Detect sniffs the caption format of a raw payload. Detection is
// capability-based: a format is reported only when its parser would accept
// the content.
func Detect(content string) Format {
	trimmed := strings.TrimSpace(strings.TrimPrefix(content, "\uFEFF"))
	switch {
	case strings.HasPrefix(trimmed, Header):
		return FormatVTT
	case srtTimestampRe.MatchString(trimmed):
		return FormatSRT
	case strings.HasPrefix(trimmed, "<"):
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "<tt") && strings.Contains(lower, "ttml") ||
			strings.Contains(lower, "<tt xml") || strings.HasPrefix(lower, "<tt>") {
			return FormatDFXP
		}
		if strings.Contains(lower, "<sami") {
			return FormatSAMI
		}
	}
	if vttTimestampRe.MatchString(trimmed) {
		return FormatVTT
	}
	return FormatUnknown
}

// Convert turns any supported caption payload into canonical WebVTT.
// Content in an unrecognized format converts to the empty string.
func Convert(content string) string {
	var cues []Cue
	switch Detect(content) {
	case FormatVTT:
		cues = ParseVTT(content)
	case FormatSRT:
		cues = ParseSRT(content)
	case FormatDFXP:
		cues = parseDFXP(content)
	case FormatSAMI:
		cues = parseSAMI(content)
	default:
		return ""
	}
	return BuildVTT(cues)
}

// dfxpDoc mirrors the subset of TTML the converter needs.
type dfxpDoc struct {
	Body struct {
		Divs []struct {
			Paragraphs []dfxpParagraph `xml:"p"`
		} `xml:"div"`
	} `xml:"body"`
}

type dfxpParagraph struct {
	Begin string `xml:"begin,attr"`
	End   string `xml:"end,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

func parseDFXP(content string) []Cue {
	var doc dfxpDoc
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}
	var cues []Cue
	for _, div := range doc.Body.Divs {
		for _, p := range div.Paragraphs {
			start := parseTTMLTime(p.Begin)
			end := parseTTMLTime(p.End)
			if end == 0 && p.Dur != "" {
				end = start + parseTTMLTime(p.Dur)
			}
			cues = append(cues, Cue{Start: start, End: end, Text: flatten(p.Text)})
		}
	}
	return cues
}

// parseTTMLTime accepts both clock values ("00:00:01.500") and offset values
// ("1.5s", "1500ms").
func parseTTMLTime(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if strings.Contains(value, ":") {
		return parseClockTimestamp(value)
	}
	switch {
	case strings.HasSuffix(value, "ms"):
		ms, _ := strconv.ParseFloat(strings.TrimSuffix(value, "ms"), 64)
		return time.Duration(ms * float64(time.Millisecond))
	case strings.HasSuffix(value, "s"):
		sec, _ := strconv.ParseFloat(strings.TrimSuffix(value, "s"), 64)
		return time.Duration(sec * float64(time.Second))
	}
	return 0
}

var samiSyncRe = regexp.MustCompile(`(?i)<sync[^>]*start\s*=\s*"?(\d+)"?[^>]*>`)

func parseSAMI(content string) []Cue {
	tags := samiSyncRe.FindAllStringSubmatchIndex(content, -1)
	var cues []Cue
	for i, tag := range tags {
		ms, _ := strconv.Atoi(content[tag[2]:tag[3]])
		// The block body runs from the end of this open tag to the start of
		// the next sync tag (or end of input).
		bodyEnd := len(content)
		if i+1 < len(tags) {
			bodyEnd = tags[i+1][0]
		}
		body := content[tag[1]:bodyEnd]
		if idx := strings.Index(strings.ToLower(body), "</sync>"); idx >= 0 {
			body = body[:idx]
		}
		text := flatten(stripTags(strings.ReplaceAll(body, "&nbsp;", " ")))
		if text == "" {
			// empty sync blocks terminate the previous cue
			continue
		}
		cues = append(cues, Cue{
			Start: time.Duration(ms) * time.Millisecond,
			Text:  text,
		})
	}
	// SAMI carries no end times; each cue runs until the next one starts.
	for i := range cues {
		if i+1 < len(cues) {
			cues[i].End = cues[i+1].Start
		} else {
			cues[i].End = cues[i].Start + 3*time.Second
		}
	}
	return cues
}
