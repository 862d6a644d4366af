// Package version derives the CSV-format version flag from a blueprint's
// game_version field and carries it as an explicit, operation-scoped value.
//
// Binary per-building version is a separate axis, detected directly from
// each BuildingHeader's first field (see package record) — it is not part
// of this context. The two axes are independent and must not be
// conflated.
//
// Design note: Go has no language-level thread-local storage, and
// goroutines are not threads, so the CSV flag is carried as a small
// immutable value rather than stashed in a package-level global. The
// envelope package derives a fresh Context on every Parse and Emit and
// uses it to choose the CSV header format; envelope.Parse also returns
// it. The record and payload codecs do not take a Context.
package version

import "strconv"

// v10Threshold is the dotted-quad game_version at and above which the CSV
// envelope switches format: 0.10.30.22239.
var v10Threshold = [4]uint32{0, 10, 30, 22239}

// Context carries the CSV-format flag derived from a blueprint's
// game_version for the duration of a single parse or emit operation.
type Context struct {
	// IsV10 is true when the owning game_version is >= 0.10.30.22239.
	IsV10 bool
}

// FromGameVersion derives a Context from a raw game_version string.
// game_version is compared as a four-tuple of decimals, with missing or
// non-numeric parts treated as 0.
func FromGameVersion(gameVersion string) Context {
	return Context{IsV10: parseQuad(gameVersion).atLeast(v10Threshold)}
}

type quad [4]uint32

func (q quad) atLeast(other [4]uint32) bool {
	for i := 0; i < 4; i++ {
		if q[i] != other[i] {
			return q[i] > other[i]
		}
	}

	return true
}

// parseQuad parses a dotted-quad version string such as "0.10.30.22239".
// Missing or non-numeric parts default to 0; extra parts beyond the
// fourth are ignored.
func parseQuad(s string) quad {
	var q quad

	part := 0
	start := 0

	flush := func(end int) {
		if part >= len(q) {
			return
		}

		if n, err := strconv.ParseUint(s[start:end], 10, 32); err == nil {
			q[part] = uint32(n)
		}

		part++
	}

	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			flush(i)
			start = i + 1

			if part >= len(q) {
				return q
			}
		}
	}

	flush(len(s))

	return q
}
