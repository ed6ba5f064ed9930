package srt

import (
	"regexp"
	"strings"
)

var (
	reCueIndex = regexp.MustCompile(`^\d+$`)
	reTimecode = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2}:\d{2}:\d{2},\d{3}`)
)

// Clean strips SRT artifacts from text: cue counter lines, timecode range
// lines and blank lines are removed, everything else keeps its order.
// Cleaning already-clean text returns it unchanged.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reCueIndex.MatchString(trimmed) || reTimecode.MatchString(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// ContainsTimecodes reports whether any line of text is an SRT timecode
// range. Used to decide between plain and structure-preserving translation.
func ContainsTimecodes(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if reTimecode.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
