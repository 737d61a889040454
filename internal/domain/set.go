package domain

import "strings"

// Set is an ordered set of identifiers (logins or community names).
// Insertion order is preserved. Membership checks are linear scans,
// which is fine at the collection sizes this system handles.
type Set []string

func (s Set) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// Add appends v and reports whether it was inserted. Adding a value
// that is already present is a no-op.
func (s *Set) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	*s = append(*s, v)
	return true
}

// Remove deletes v preserving the order of the remaining items.
func (s *Set) Remove(v string) bool {
	for i, item := range *s {
		if item == v {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// Encode renders the set in the canonical wire form: "{}" when empty,
// "{a,b,c}" otherwise, no trailing comma.
func (s Set) Encode() string {
	return EncodeList(s)
}

// EncodeList is the canonical encoding for any ordered collection of
// identifiers, including filtered views that are not full sets.
func EncodeList(items []string) string {
	if len(items) == 0 {
		return "{}"
	}
	return "{" + strings.Join(items, ",") + "}"
}

// DecodeList is the inverse of EncodeList. Identifiers never contain
// commas or braces, so a plain split is enough.
func DecodeList(encoded string) []string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(encoded, "{"), "}")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ",")
}
