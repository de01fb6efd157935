package scene

import (
	"fmt"
	"math"
)

// Registry is the fixed catalog of available scenes, in declaration order.
type Registry struct {
	scenes []Scene
	byName map[string]int
}

// NewRegistry validates every scene and builds a registry.
func NewRegistry(scenes ...Scene) (*Registry, error) {
	if len(scenes) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		scenes: make([]Scene, 0, len(scenes)),
		byName: make(map[string]int, len(scenes)),
	}
	for _, s := range scenes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scene: %w", err)
		}
		if _, ok := r.byName[s.Name]; ok {
			return nil, fmt.Errorf("%q: %w", s.Name, ErrDuplicateName)
		}
		r.byName[s.Name] = len(r.scenes)
		r.scenes = append(r.scenes, s)
	}
	return r, nil
}

// Len returns the number of scenes.
func (r *Registry) Len() int {
	return len(r.scenes)
}

// Scenes returns a copy of the catalog.
func (r *Registry) Scenes() []Scene {
	out := make([]Scene, len(r.scenes))
	copy(out, r.scenes)
	return out
}

// Lookup finds a scene by name.
func (r *Registry) Lookup(name string) (Scene, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Scene{}, false
	}
	return r.scenes[i], true
}

// Without returns a registry that leaves out the named scenes. Naming a scene
// that does not exist is an error so typos in configuration surface early.
func (r *Registry) Without(names ...string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			return nil, fmt.Errorf("exclude %q: %w", n, ErrUnknownScene)
		}
		drop[n] = true
	}

	kept := make([]Scene, 0, len(r.scenes))
	for _, s := range r.scenes {
		if !drop[s.Name] {
			kept = append(kept, s)
		}
	}
	return NewRegistry(kept...)
}

// WithDurationScale returns a registry whose durations are multiplied by
// factor, rounded, and never below one frame.
func (r *Registry) WithDurationScale(factor float64) (*Registry, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("duration scale %v: %w", factor, ErrInvalidDuration)
	}
	if factor == 1 {
		return r, nil
	}

	scaled := r.Scenes()
	for i := range scaled {
		d := int(math.Round(float64(scaled[i].Duration) * factor))
		if d < 1 {
			d = 1
		}
		scaled[i].Duration = d
	}
	return NewRegistry(scaled...)
}
