package merge

import (
	"reflect"

	"github.com/dusk-indust/fieldmerge/internal/coerce"
)

// Array union-merges plain sequence fields. Each record's sequence is
// flattened in record order (each record's own order intact), then later
// duplicates are removed by value equality, keeping the first occurrence.
// The priority record plays no role: plain arrays have no primary-element
// concept. Empty input yields an empty sequence.
func Array(records []Record) []any {
	merged := make([]any, 0)
	seen := make(map[any]struct{})
	for _, rec := range records {
		for _, elem := range coerce.ToSequence[any](rec.Value) {
			// Array elements are scalars by contract. A stored JSON
			// encoding can still smuggle in a nested sequence or
			// object; those are unhashable and would panic the dedup
			// map, so they degrade to no data like any other
			// malformed contribution.
			if elem != nil && !reflect.TypeOf(elem).Comparable() {
				continue
			}
			if _, dup := seen[elem]; dup {
				continue
			}
			seen[elem] = struct{}{}
			merged = append(merged, elem)
		}
	}
	return merged
}
