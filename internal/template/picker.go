package template

import (
	"fmt"
	"math/rand/v2"

	"github.com/shortreel/shortreel/pkg/file"
)

// Rand is the randomness source used for template selection. *rand.Rand
// satisfies it; tests inject a deterministic implementation.
type Rand interface {
	IntN(n int) int
}

// Picker selects a background template uniformly at random from a
// directory of video files.
type Picker struct {
	dir string
	rng Rand
}

// NewPicker creates a Picker over dir. A nil rng falls back to a
// time-seeded source.
func NewPicker(dir string, rng Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{dir: dir, rng: rng}
}

// Pick returns the path of one template. An unreadable or empty directory
// is an error; the caller treats it as fatal before any synthesis work.
func (p *Picker) Pick() (string, error) {
	templates, err := file.ListRegular(p.dir)
	if err != nil {
		return "", fmt.Errorf("failed to read template directory %s: %w", p.dir, err)
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates found in %s", p.dir)
	}

	return templates[p.rng.IntN(len(templates))], nil
}
