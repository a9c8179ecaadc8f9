// Package merge resolves field-level conflicts when duplicate records are
// combined into one. For every field it computes a single deterministic
// value from N contributions, honoring the caller-designated priority record
// while keeping every other record's identity-bearing data reachable in the
// result.
//
// The engine is a pure in-memory computation: no I/O, no state across calls,
// safe to invoke concurrently without coordination.
package merge

import "fmt"

// Record is one record's contribution to a single field. RecordID is unique
// within one merge call's input; slice order is significant — it is the
// tie-break and fallback order for every merge algorithm.
type Record struct {
	RecordID string
	Value    any
}

// RecordNotFoundError reports that the caller-designated priority record was
// not among the records being merged. It indicates a caller programming
// error: priorityRecordID must be the ID of one of the input contributions.
type RecordNotFoundError struct {
	RecordID string
}

// Error implements the error interface.
func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("merge: priority record with ID %s not found", e.RecordID)
}

// findRecord returns the record with the given ID, scanning in input order.
func findRecord(records []Record, recordID string) (Record, bool) {
	for _, rec := range records {
		if rec.RecordID == recordID {
			return rec, true
		}
	}
	return Record{}, false
}
