// Package identifiers resolves user-facing identifier strings (item names,
// recipe names, building names) to their numeric enum values.
//
// A canonical human-readable name is hashed to a fixed-width key for
// O(1) lookup, instead of comparing strings directly on every
// edit-engine call: replaceItem/replaceRecipe/replaceBuilding accept
// maps the caller may have built from user-typed names.
package identifiers

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key is the hashed form of a canonical identifier string.
type Key uint64

// KeyOf hashes name into its registry Key. Callers normalize case and
// whitespace before calling this (Registry.Resolve does so internally).
func KeyOf(name string) Key {
	return Key(xxhash.Sum64String(name))
}

// Registry maps canonical identifier strings to enum values of type T.
type Registry[T any] struct {
	byKey map[Key]T
}

// NewRegistry builds a Registry from a name->value table. Names are
// normalized (see normalize) before hashing, so lookups are
// case-insensitive and tolerant of surrounding whitespace.
func NewRegistry[T any](table map[string]T) *Registry[T] {
	r := &Registry[T]{byKey: make(map[Key]T, len(table))}
	for name, v := range table {
		r.byKey[KeyOf(normalize(name))] = v
	}

	return r
}

// Resolve looks up name, returning ok=false if it isn't registered.
func (r *Registry[T]) Resolve(name string) (T, bool) {
	v, ok := r.byKey[KeyOf(normalize(name))]
	return v, ok
}

// normalize trims surrounding whitespace and lowercases ASCII letters, so
// " CONVEYOR-BELT-MK-I " and "conveyor-belt-mk-i" hash identically.
// Hyphens and other characters are kept as they are, so
// "ConveyorBeltMKI" does not match "conveyor-belt-mk-i".
func normalize(name string) string {
	name = strings.TrimSpace(name)
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}

	return string(out)
}
