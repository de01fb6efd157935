package scene

import (
	"fmt"
	"math/rand"
)

// Sequence is the playback order, fixed for the lifetime of the process.
type Sequence struct {
	scenes []Scene
}

// NewSequence places the opening scene first and the remaining scenes after
// it in a random permutation drawn from rng. An empty opening shuffles every
// scene.
func NewSequence(r *Registry, opening string, rng *rand.Rand) (Sequence, error) {
	if r == nil || r.Len() == 0 {
		return Sequence{}, ErrEmptyRegistry
	}

	rest := make([]Scene, 0, r.Len())
	var first []Scene
	if opening != "" {
		s, ok := r.Lookup(opening)
		if !ok {
			return Sequence{}, fmt.Errorf("opening %q: %w", opening, ErrUnknownScene)
		}
		first = append(first, s)
	}
	for _, s := range r.scenes {
		if s.Name != opening {
			rest = append(rest, s)
		}
	}

	Shuffle(rest, rng)
	return Sequence{scenes: append(first, rest...)}, nil
}

// Shuffle permutes scenes in place with Fisher–Yates.
func Shuffle(scenes []Scene, rng *rand.Rand) {
	for i := len(scenes) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		scenes[i], scenes[j] = scenes[j], scenes[i]
	}
}

// Len returns the number of scenes in the sequence.
func (s Sequence) Len() int {
	return len(s.scenes)
}

// At returns the scene at index i.
func (s Sequence) At(i int) Scene {
	return s.scenes[i]
}

// Names returns scene names in playback order.
func (s Sequence) Names() []string {
	names := make([]string, len(s.scenes))
	for i, sc := range s.scenes {
		names[i] = sc.Name
	}
	return names
}
