package textsegment

import (
	"regexp"
	"sort"
	"strings"
)

// Structural patterns tested against the document, in order. A pattern
// counts as detected when it matches anywhere in the text.
var structuralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\d+\.`),               // 1. 2. 3.
	regexp.MustCompile(`(?m)^\d+\.\d+(?:\.\d+)*`),  // 1.1, 1.1.1
	regexp.MustCompile(`(?m)^[A-Z][A-Z\s]+:$`),     // SECTION HEADERS:
	regexp.MustCompile(`(?m)^#{1,6}\s+`),           // markdown headers
	regexp.MustCompile(`(?mi)^(Chapter|Section|Part)\s+\d+`),
}

// oversizeFactor bounds the final chunk size relative to maxChunkSize.
const oversizeFactor = 1.5

// Segment splits a document into chunks of at most maxChunkSize
// characters (best effort; the hard ceiling is 1.5x). Splitting prefers
// structural boundaries (numbered sections, headers), falls back to
// paragraphs, and re-splits oversized chunks by sentence. Always returns
// at least one chunk; empty input yields a single empty chunk.
func Segment(text string, maxChunkSize int) []string {
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	patterns := detectPatterns(text)
	if len(patterns) > 0 {
		chunks = splitByPatterns(text, patterns, maxChunkSize)
	} else {
		chunks = splitByParagraphs(text, maxChunkSize)
	}

	limit := int(float64(maxChunkSize) * oversizeFactor)
	final := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk) > limit {
			final = append(final, splitBySentences(chunk, maxChunkSize, limit)...)
		} else {
			final = append(final, chunk)
		}
	}

	if len(final) == 0 {
		return []string{text}
	}
	return final
}

func detectPatterns(text string) []*regexp.Regexp {
	var detected []*regexp.Regexp
	for _, p := range structuralPatterns {
		if p.MatchString(text) {
			detected = append(detected, p)
		}
	}
	return detected
}

// splitByPatterns pools the match positions of every detected pattern,
// sorts them, and greedily accumulates boundary-delimited segments into
// chunks up to maxChars.
func splitByPatterns(text string, patterns []*regexp.Regexp, maxChars int) []string {
	positions := map[int]bool{}
	for _, p := range patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			positions[loc[0]] = true
		}
	}

	boundaries := make([]int, 0, len(positions))
	for pos := range positions {
		boundaries = append(boundaries, pos)
	}
	sort.Ints(boundaries)

	if len(boundaries) == 0 {
		return []string{text}
	}

	// Cut the text into segments at every boundary. The stretch before
	// the first boundary is its own segment.
	var segments []string
	last := 0
	for _, pos := range boundaries {
		if pos > last {
			segments = append(segments, text[last:pos])
		}
		last = pos
	}
	if last < len(text) {
		segments = append(segments, text[last:])
	}

	return accumulate(segments, "\n", maxChars)
}

func splitByParagraphs(text string, maxChars int) []string {
	return accumulate(strings.Split(text, "\n\n"), "\n\n", maxChars)
}

func splitBySentences(chunk string, maxChars, hardLimit int) []string {
	sentences := strings.Split(chunk, ". ")
	parts := accumulate(sentences, ". ", maxChars)

	// A single pathological sentence can still blow the ceiling; slice it.
	var out []string
	for _, part := range parts {
		for len(part) > hardLimit {
			out = append(out, part[:maxChars])
			part = part[maxChars:]
		}
		out = append(out, part)
	}
	return out
}

// accumulate greedily packs segments into chunks, closing the current
// chunk whenever the next segment would push it past maxChars.
func accumulate(segments []string, sep string, maxChars int) []string {
	var chunks []string
	var current []string
	length := 0

	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if length+len(seg) > maxChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, sep))
			current = []string{seg}
			length = len(seg)
		} else {
			current = append(current, seg)
			length += len(seg) + len(sep)
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, sep))
	}
	return chunks
}
