package subtitle

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// DetectLanguage guesses the language of the narration text. Word
// segmentation only understands ASCII-space boundaries, so callers warn
// when the result is not English.
func DetectLanguage(text string) language.Tag {
	if strings.TrimSpace(text) == "" {
		return language.Und
	}

	info := whatlanggo.Detect(text)

	tag, err := language.Parse(info.Lang.Iso6391())
	if err != nil {
		return language.Und
	}
	return tag
}
