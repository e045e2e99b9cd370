package subtitle

// Entry represents a single word-level subtitle
type Entry struct {
	Text     string  // word text, never empty after trimming
	Start    float64 // seconds from the start of the audio
	Duration float64 // seconds, always > 0
}

// End returns the time at which the entry leaves the screen.
func (e Entry) End() float64 {
	return e.Start + e.Duration
}

// TailEnd returns the latest end time across entries, or 0 when entries is
// empty. Callers deciding overall video duration must treat 0 as "no
// subtitles" and fail accordingly instead of rendering an empty clip.
func TailEnd(entries []Entry) float64 {
	var tail float64
	for _, e := range entries {
		if end := e.End(); end > tail {
			tail = end
		}
	}
	return tail
}
