package parser

import (
	"regexp"
	"strings"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// cueSeparator marks a timing line in both WebVTT and SubRip files.
const cueSeparator = " --> "

// markupTag matches inline tags such as <b>, </c> or <00:00:01.520>.
var markupTag = regexp.MustCompile(`<[^>]*>`)

// cue is a single timed block before it becomes a transcript item.
type cue struct {
	start float64
	end   float64
	lines []string
}

// text strips markup from every line and joins the non-empty ones with a space.
func (c cue) text() string {
	parts := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		cleaned := strings.TrimSpace(markupTag.ReplaceAllString(line, ""))
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ParseCues turns WebVTT or SubRip text into transcript items, in cue order.
//
// Headers, NOTE/STYLE blocks and SRT counters are skipped because only lines
// following a timing line are read. Cues whose text is empty once markup is
// removed are dropped. Start and duration are rounded to milliseconds;
// overlapping or out-of-order cues are kept as they are.
func ParseCues(raw string) []models.TranscriptItem {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	items := make([]models.TranscriptItem, 0)
	i := 0
	for i < len(lines) {
		if !strings.Contains(lines[i], cueSeparator) {
			i++
			continue
		}

		c := parseTimingLine(lines[i])
		i++
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !strings.Contains(lines[i], cueSeparator) {
			c.lines = append(c.lines, lines[i])
			i++
		}

		text := c.text()
		if text == "" {
			continue
		}
		items = append(items, models.TranscriptItem{
			Text:     text,
			Start:    roundMillis(c.start),
			Duration: roundMillis(c.end - c.start),
		})
	}
	return items
}

// parseTimingLine reads "start --> end [settings]". Only the first token after
// the separator is the end time; WebVTT cue settings follow it.
func parseTimingLine(line string) cue {
	startRaw, rest, _ := strings.Cut(line, cueSeparator)
	endRaw := ""
	if fields := strings.Fields(rest); len(fields) > 0 {
		endRaw = fields[0]
	}
	return cue{
		start: ParseTimestamp(startRaw),
		end:   ParseTimestamp(endRaw),
	}
}
