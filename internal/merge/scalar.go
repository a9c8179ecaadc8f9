package merge

// Scalar picks the merged value for a single-valued field: the priority
// record's value, verbatim. There is no fallback search and no dedup — a
// single-valued field has exactly one winner by definition, so a missing
// priority record is always a RecordNotFoundError, including for empty
// input.
func Scalar(records []Record, priorityRecordID string) (any, error) {
	rec, ok := findRecord(records, priorityRecordID)
	if !ok {
		return nil, &RecordNotFoundError{RecordID: priorityRecordID}
	}
	return rec.Value, nil
}
