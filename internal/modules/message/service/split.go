package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit is the Telegram message length limit in characters.
const DefaultLimit = 4096

const paragraphSeparator = "\n\n"

// Split breaks text into chunks of at most limit characters, cutting only
// between paragraphs. A single paragraph longer than limit becomes its own
// oversized chunk. Blank paragraphs (runs of four or more newlines) are kept
// inside a chunk but dropped where they fall on a chunk boundary, so joining
// the chunks reproduces the body only up to those blank runs.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		chunk := strings.TrimRightFunc(current.String(), unicode.IsSpace)
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
		currentLen = 0
	}

	for _, para := range strings.Split(strings.TrimSpace(text), paragraphSeparator) {
		paraLen := utf8.RuneCountInString(para)
		if currentLen+paraLen+2 > limit {
			flush()
		}
		current.WriteString(para)
		current.WriteString(paragraphSeparator)
		currentLen += paraLen + 2
	}
	flush()

	return chunks
}
