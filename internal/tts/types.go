package tts

import "context"

// Alignment is the per-character timing stream returned by the speech
// synthesis service. The three slices are parallel: Characters[i] starts at
// StartTimes[i] and ends at EndTimes[i], both in seconds from the beginning
// of the audio. The service is trusted to keep start times non-decreasing,
// but nothing downstream may assume the slices have equal length.
type Alignment struct {
	Characters []string  `json:"characters"`
	StartTimes []float64 `json:"character_start_times_seconds"`
	EndTimes   []float64 `json:"character_end_times_seconds"`
}

// StartTimeAt returns the start time of character i, reporting whether
// timing data exists for that index.
func (a Alignment) StartTimeAt(i int) (float64, bool) {
	if i < 0 || i >= len(a.StartTimes) {
		return 0, false
	}
	return a.StartTimes[i], true
}

// EndTimeAt returns the end time of character i, reporting whether timing
// data exists for that index.
func (a Alignment) EndTimeAt(i int) (float64, bool) {
	if i < 0 || i >= len(a.EndTimes) {
		return 0, false
	}
	return a.EndTimes[i], true
}

// SpeechResult holds the synthesized audio and its character alignment.
type SpeechResult struct {
	Audio     []byte
	Alignment Alignment
}

// Synthesizer is the boundary to a text-to-speech backend.
type Synthesizer interface {
	ConvertWithTimestamps(ctx context.Context, text string) (*SpeechResult, error)
}
