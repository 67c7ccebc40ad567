package dedup

import (
	"github.com/google/uuid"
)

// groupEntities runs the greedy duplicate-grouping pass shared by all four
// entity kinds. It walks the collection in its natural order; each
// unprocessed entity seeds a forward scan over the rest of the collection,
// and every entity satisfying the similarity predicate joins the seed's
// group. Group members are marked processed and never revisited, so group
// membership depends on iteration order: if A matches B and B matches C but
// A does not match C, seeding from B bundles all three while seeding from A
// leaves C out. That greedy, non-transitive behavior is intentional and
// must not be replaced with an equivalence-class partition. Seeds with no
// match emit nothing; every returned group has at least two members.
func groupEntities[T any](entities []T, id func(T) uuid.UUID, similar func(a, b T) bool) [][]T {
	processed := make(map[uuid.UUID]bool, len(entities))
	groups := make([][]T, 0)

	for i, seed := range entities {
		if processed[id(seed)] {
			continue
		}

		var matches []T
		for _, candidate := range entities[i+1:] {
			if processed[id(candidate)] {
				continue
			}
			if similar(seed, candidate) {
				matches = append(matches, candidate)
			}
		}
		if len(matches) == 0 {
			continue
		}

		group := append([]T{seed}, matches...)
		for _, member := range group {
			processed[id(member)] = true
		}
		groups = append(groups, group)
	}

	return groups
}
