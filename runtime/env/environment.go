// Package env holds the flat mapping from user-defined words to the
// script text that executes in their place.
package env

import "github.com/dchest/siphash"

// The two SipHash-2-4 keys are process constants: persisted scripts are
// plain bytes and stay portable across binaries.
const (
	hashKey0 = 0x734bc7ed439782a3
	hashKey1 = 0x542f7629b02ac4de
)

// DefaultCapacity is the bucket count of a fresh environment.
const DefaultCapacity = 256

type entry struct {
	key   string
	value string
	next  *entry
}

// Environment maps words to owned script text. Collisions chain through
// singly-linked buckets keyed by SipHash-2-4 of the word.
type Environment struct {
	buckets []*entry
	size    int
}

// New creates an environment with the given bucket count.
func New(capacity int) *Environment {
	return &Environment{buckets: make([]*entry, capacity)}
}

func (e *Environment) index(key string) uint64 {
	return siphash.Hash(hashKey0, hashKey1, []byte(key)) % uint64(len(e.buckets))
}

// Set binds key to script, replacing any previous binding. It reports
// whether a previous binding was replaced.
func (e *Environment) Set(key, script string) bool {
	idx := e.index(key)
	for el := e.buckets[idx]; el != nil; el = el.next {
		if el.key == key {
			el.value = script
			return true
		}
	}
	e.buckets[idx] = &entry{key: key, value: script, next: e.buckets[idx]}
	e.size++
	return false
}

// Get returns the script bound to key.
func (e *Environment) Get(key string) (string, bool) {
	for el := e.buckets[e.index(key)]; el != nil; el = el.next {
		if el.key == key {
			return el.value, true
		}
	}
	return "", false
}

// Remove deletes the binding for key, reporting whether it existed.
func (e *Environment) Remove(key string) bool {
	idx := e.index(key)
	ptr := &e.buckets[idx]
	for el := *ptr; el != nil; el = el.next {
		if el.key == key {
			*ptr = el.next
			e.size--
			return true
		}
		ptr = &el.next
	}
	return false
}

// Len reports the number of bindings.
func (e *Environment) Len() int { return e.size }
