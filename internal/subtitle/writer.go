package subtitle

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Style describes how burned-in subtitles are rendered. PlayResX/PlayResY
// give the coordinate space the font size is expressed in.
type Style struct {
	FontName string
	FontSize int
	PlayResX int
	PlayResY int
}

// DefaultStyle matches the narration look: large white text with a black
// outline, centered at the bottom of the frame.
func DefaultStyle(fontPath string, width, height int) Style {
	name := strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
	if name == "" {
		name = "Arial"
	}
	return Style{
		FontName: name,
		FontSize: 70,
		PlayResX: width,
		PlayResY: height,
	}
}

// WriteASS writes entries as an ASS subtitle track to path. One dialogue
// line is produced per entry; entries are assumed valid (positive duration,
// non-blank text) as produced by Segment.
func WriteASS(path string, entries []Entry, style Style) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create subtitle file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, "[Script Info]")
	fmt.Fprintln(w, "ScriptType: v4.00+")
	fmt.Fprintf(w, "PlayResX: %d\n", style.PlayResX)
	fmt.Fprintf(w, "PlayResY: %d\n", style.PlayResY)
	fmt.Fprintln(w, "WrapStyle: 2")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "[V4+ Styles]")
	fmt.Fprintln(w, "Format: Name, Fontname, Fontsize, PrimaryColour, OutlineColour, BackColour, Bold, Italic, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding")
	// Alignment 2 = bottom center; colours are &HAABBGGRR.
	fmt.Fprintf(w, "Style: Narration,%s,%d,&H00FFFFFF,&H00000000,&H00000000,0,0,1,2,0,2,20,20,40,1\n",
		style.FontName, style.FontSize)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "[Events]")
	fmt.Fprintln(w, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text")
	for _, e := range entries {
		fmt.Fprintf(w, "Dialogue: 0,%s,%s,Narration,,0,0,0,,%s\n",
			formatTimestamp(e.Start),
			formatTimestamp(e.End()),
			escapeText(e.Text))
	}

	return w.Flush()
}

// formatTimestamp formats seconds as an ASS timestamp (H:MM:SS.CS).
func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	// Round to milliseconds first so float noise cannot shift a centisecond.
	d := time.Duration(math.Round(seconds*1000)) * time.Millisecond

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60
	centis := int(d.Milliseconds()/10) % 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}

// escapeText neutralizes characters that carry meaning in ASS dialogue.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "{", "(")
	text = strings.ReplaceAll(text, "}", ")")
	text = strings.ReplaceAll(text, "\n", "\\N")
	return text
}
