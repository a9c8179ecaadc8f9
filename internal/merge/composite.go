package merge

import (
	"github.com/dusk-indust/fieldmerge/internal/coerce"
	"github.com/dusk-indust/fieldmerge/internal/fieldvalue"
)

// Composite merges the composite field families (emails, phones, links) into
// one primary unit plus a deduplicated secondary collection.
//
// Primary selection: the priority record's primary slot wins when present;
// otherwise the first record in input order with a present primary slot;
// otherwise the family's empty default. Unlike Scalar, a priorityRecordID
// that matches no record is not an error here — selection falls through to
// the scan. Callers rely on this asymmetry.
//
// Every candidate unit is collected before deduplication and before the
// chosen primary is excluded. Collecting unconditionally means no record's
// identity attribute can be lost to an early guess about which unit ends up
// primary, and it keeps dedup and exclusion as separate passes over the
// pool. The pool order is record-1-primary, record-1-secondaries,
// record-2-primary, record-2-secondaries, and so on.
func Composite[U any](records []Record, priorityRecordID string, spec fieldvalue.Spec[U]) fieldvalue.Composite[U] {
	if len(records) == 0 {
		return fieldvalue.Composite[U]{Primary: spec.EmptyPrimary}
	}

	primary := spec.EmptyPrimary
	adopted := false
	if rec, ok := findRecord(records, priorityRecordID); ok {
		if v := compositeValue[U](rec); present(spec, v.Primary) {
			primary = v.Primary
			adopted = true
		}
	}
	if !adopted {
		for _, rec := range records {
			if v := compositeValue[U](rec); present(spec, v.Primary) {
				primary = v.Primary
				break
			}
		}
	}

	var pool []U
	for _, rec := range records {
		v := compositeValue[U](rec)
		if present(spec, v.Primary) {
			pool = append(pool, v.Primary)
		}
		for _, unit := range coerce.ToSequence[U](v.Secondary) {
			if present(spec, unit) {
				pool = append(pool, unit)
			}
		}
	}

	// Stable dedup by identity (first occurrence wins), then drop any unit
	// whose identity equals the chosen primary's so it never reappears in
	// the secondary collection.
	primaryID := spec.Identity(primary)
	seen := make(map[string]struct{}, len(pool))
	secondary := make([]U, 0, len(pool))
	for _, unit := range pool {
		id := spec.Identity(unit)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if id == primaryID {
			continue
		}
		secondary = append(secondary, unit)
	}

	merged := fieldvalue.Composite[U]{Primary: primary}
	if len(secondary) > 0 {
		merged.Secondary = secondary
	}
	return merged
}

// compositeValue extracts a record's composite value. A value of any other
// type contributes nothing, mirroring how malformed stored data degrades to
// "no data" rather than failing the merge.
func compositeValue[U any](rec Record) fieldvalue.Composite[U] {
	v, ok := rec.Value.(fieldvalue.Composite[U])
	if !ok {
		return fieldvalue.Composite[U]{}
	}
	return v
}

// present reports whether a unit participates in merging, judged by its
// identity attribute.
func present[U any](spec fieldvalue.Spec[U], unit U) bool {
	return coerce.IsPresent(spec.Identity(unit))
}
