// Package entity contains the scroll lock domain types.
package entity

import "sort"

// ProhibitionID identifies a caller's outstanding request to keep page
// scrolling disabled. The caller chooses the token and must release the same
// token later.
type ProhibitionID string

// AnonymousProhibition is the single well-known key used by callers that do
// not need a named, independently releasable lock.
const AnonymousProhibition ProhibitionID = "scroll-lock:anonymous"

// ProhibitionSet tracks every active prohibition. Only the key set carries
// information: a present key always maps to true.
type ProhibitionSet map[ProhibitionID]bool

// NewProhibitionSet creates an empty prohibition set.
func NewProhibitionSet() ProhibitionSet {
	return make(ProhibitionSet)
}

// Add inserts id. Adding an existing id is a no-op.
func (s ProhibitionSet) Add(id ProhibitionID) {
	s[id] = true
}

// Remove deletes id and reports whether it was present.
func (s ProhibitionSet) Remove(id ProhibitionID) bool {
	if !s.Has(id) {
		return false
	}
	delete(s, id)
	return true
}

// Has reports whether id is active.
func (s ProhibitionSet) Has(id ProhibitionID) bool {
	return s[id]
}

// Empty reports whether no prohibition is active.
func (s ProhibitionSet) Empty() bool {
	return len(s) == 0
}

// Len returns the number of active prohibitions.
func (s ProhibitionSet) Len() int {
	return len(s)
}

// Clear drops every prohibition.
func (s ProhibitionSet) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// IDs returns the active prohibitions sorted for stable output.
func (s ProhibitionSet) IDs() []ProhibitionID {
	ids := make([]ProhibitionID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
