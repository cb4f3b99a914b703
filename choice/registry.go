package choice

import (
	"errors"

	"github.com/lixenwraith/spin-wheel/constants"
)

// ErrFull is returned by Add once the registry holds MaxChoices entries
var ErrFull = errors.New("choice registry is full")

// Listener is notified after an add or remove changed the number of choices
type Listener interface {
	CompositionChanged(count int)
}

// Registry is the insertion-ordered choice list with its id counter
// Not safe for concurrent use, all calls happen between frame ticks
type Registry struct {
	choices  []Choice
	lastID   ID
	revision uint64
	listener Listener
}

// NewRegistry creates an empty registry, listener may be nil
func NewRegistry(listener Listener) *Registry {
	return &Registry{
		choices:  make([]Choice, 0, constants.MaxChoices),
		listener: listener,
	}
}

// Add appends a new choice with the default weight and returns its id
func (r *Registry) Add(label string) (ID, error) {
	if r.IsFull() {
		return 0, ErrFull
	}
	r.lastID++
	r.choices = append(r.choices, Choice{
		ID:     r.lastID,
		Label:  SanitizeLabel(label),
		Weight: constants.DefaultWeight,
	})
	r.touch()
	r.notify()
	return r.lastID, nil
}

// Remove deletes the choice, returns false if id is absent
func (r *Registry) Remove(id ID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.choices = append(r.choices[:idx], r.choices[idx+1:]...)
	r.touch()
	r.notify()
	return true
}

// Rename replaces the label text, identity and weight are unchanged
func (r *Registry) Rename(id ID, label string) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.choices[idx].Label = SanitizeLabel(label)
	r.touch()
	return true
}

// SetWeight adds delta to the weight, clamped into [1, MaxWeight]
// Returns the resulting weight and whether it changed
func (r *Registry) SetWeight(id ID, delta int) (int, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return 0, false
	}
	old := r.choices[idx].Weight
	w := clampWeight(old + delta)
	if w == old {
		return w, false
	}
	r.choices[idx].Weight = w
	r.touch()
	return w, true
}

// Reset removes every choice, the id counter keeps running
func (r *Registry) Reset() {
	r.choices = r.choices[:0]
	r.touch()
}

// Get returns a copy of the choice with the given id
func (r *Registry) Get(id ID) (Choice, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Choice{}, false
	}
	return r.choices[idx], true
}

// Choices returns a copy of the ordered choices
func (r *Registry) Choices() []Choice {
	out := make([]Choice, len(r.choices))
	copy(out, r.choices)
	return out
}

// TotalWeight is the sum of all weights, at least Len()
func (r *Registry) TotalWeight() int {
	total := 0
	for _, c := range r.choices {
		total += c.Weight
	}
	return total
}

func (r *Registry) Len() int      { return len(r.choices) }
func (r *Registry) IsFull() bool  { return len(r.choices) >= constants.MaxChoices }
func (r *Registry) IsEmpty() bool { return len(r.choices) == 0 }

// Revision changes on every mutation, used to detect stale layouts
func (r *Registry) Revision() uint64 { return r.revision }

func (r *Registry) indexOf(id ID) int {
	for i := range r.choices {
		if r.choices[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) touch() {
	r.revision++
}

func (r *Registry) notify() {
	if r.listener != nil {
		r.listener.CompositionChanged(len(r.choices))
	}
}
