package pescados

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID identifies a product or a transaction.
//
// New ids are UUIDv7: they sort in creation order.
type ID string

// shortLen is the length of the suffix displayed to users.
const shortLen = 8

// NewID returns a fresh, time ordered, identifier.
func NewID() ID {
	return ID(uuid.Must(uuid.NewV7()).String())
}

// Short returns the id suffix displayed in listings.
func (id ID) Short() string {
	if len(id) <= shortLen {
		return string(id)
	}
	return string(id[len(id)-shortLen:])
}

func (id ID) String() string { return string(id) }

// matches reports whether ref designates id, either exactly or as a suffix of at least 4 characters.
func (id ID) matches(ref string) bool {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return false
	}
	if string(id) == ref {
		return true
	}
	return len(ref) >= 4 && strings.HasSuffix(strings.ToLower(string(id)), ref)
}

// resolve returns the single candidate matching ref.
func resolve[T any](kind, ref string, candidates []T, match func(T) bool) (T, error) {
	var found []T
	for _, c := range candidates {
		if match(c) {
			found = append(found, c)
		}
	}
	var zero T
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", kind, ref, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return zero, fmt.Errorf("%s %q matches %d items: %w", kind, ref, len(found), ErrAmbiguous)
	}
}
