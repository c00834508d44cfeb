// Package registry holds the session's mutable, ordered list of family
// members. It is not safe for concurrent use; one interactive session owns
// it for the life of the process.
package registry

import (
	"strings"

	"github.com/ttrampp/Family-Lifespan-Analyzer/engine"
)

// Registry is an insertion-ordered list of people. Names need not be unique.
type Registry struct {
	people []engine.Person
}

// New creates a registry holding the given people in order.
func New(people ...engine.Person) *Registry {
	r := &Registry{people: make([]engine.Person, 0, len(people))}
	r.people = append(r.people, people...)
	return r
}

// NewSeeded creates a registry preloaded with Seed().
func NewSeeded() *Registry {
	return New(Seed()...)
}

// Add appends p. Validation is the caller's job (see engine.NewPerson).
func (r *Registry) Add(p engine.Person) {
	r.people = append(r.people, p)
}

// Remove deletes the first person whose name equals name, ignoring case and
// surrounding whitespace. It returns false when nobody matched.
func (r *Registry) Remove(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.people = append(r.people[:i], r.people[i+1:]...)
	return true
}

// Find returns the first person matching name the same way Remove does.
func (r *Registry) Find(name string) (engine.Person, bool) {
	i := r.index(name)
	if i < 0 {
		return engine.Person{}, false
	}
	return r.people[i], true
}

// People returns a copy of the current list.
func (r *Registry) People() []engine.Person {
	out := make([]engine.Person, len(r.people))
	copy(out, r.people)
	return out
}

func (r *Registry) Len() int { return len(r.people) }

func (r *Registry) index(name string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}
	for i, p := range r.people {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
