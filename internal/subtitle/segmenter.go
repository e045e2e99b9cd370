package subtitle

import (
	"strings"

	"github.com/shortreel/shortreel/internal/tts"
)

// Segment converts a character alignment into word-level subtitle entries.
//
// A word is a maximal run of non-space characters. Only the ASCII space
// (" ") separates words; tabs and newlines count as word characters. That
// narrow rule matches the alignment the synthesis API produces and must not
// be widened to unicode.IsSpace.
//
// Timing lookups go through the alignment's bounds-checked accessors, so
// mismatched slice lengths never panic: a word whose timing is unavailable
// is dropped, as is any word with a non-positive duration or blank text.
// The function is pure and single-pass; segmenting the same alignment twice
// yields identical output.
func Segment(a tts.Alignment) []Entry {
	var entries []Entry

	var word []string
	var start float64
	started := false

	for i, char := range a.Characters {
		if char == " " {
			if len(word) > 0 && started {
				// The space's own start time closes the word.
				if end, ok := a.StartTimeAt(i); ok {
					entries = appendValid(entries, strings.Join(word, ""), start, end-start)
				}
				word = word[:0]
				started = false
			}
			continue
		}

		if !started {
			if t, ok := a.StartTimeAt(i); ok {
				start = t
				started = true
			}
		}
		word = append(word, char)
	}

	// Flush the trailing word using the last character's end time.
	if len(word) > 0 && started {
		if end, ok := a.EndTimeAt(len(a.Characters) - 1); ok {
			entries = appendValid(entries, strings.Join(word, ""), start, end-start)
		}
	}

	return entries
}

// appendValid appends an entry only when it has a positive duration and
// non-blank text; anything else is discarded silently.
func appendValid(entries []Entry, text string, start, duration float64) []Entry {
	if duration <= 0 || strings.TrimSpace(text) == "" {
		return entries
	}
	return append(entries, Entry{Text: text, Start: start, Duration: duration})
}
