package merge

import (
	"fmt"

	"github.com/dusk-indust/fieldmerge/internal/config"
	"github.com/dusk-indust/fieldmerge/internal/fieldtype"
	"github.com/dusk-indust/fieldmerge/internal/fieldvalue"
)

// Merger merges duplicate records field by field. It holds only the
// config-derived family specs; each call's working state is local to that
// call.
type Merger struct {
	phones fieldvalue.Spec[fieldvalue.PhoneNumber]
}

var defaultMerger = NewMerger(nil)

// NewMerger creates a Merger. cfg may be nil, in which case the stock
// defaults apply (phone country code "US").
func NewMerger(cfg *config.MergeConfig) *Merger {
	countryCode := fieldvalue.DefaultCountryCode
	if cfg != nil && cfg.DefaultCountryCode != "" {
		countryCode = cfg.DefaultCountryCode
	}
	return &Merger{phones: fieldvalue.PhonesSpec(countryCode)}
}

// FieldValues merges one field's contributions from every duplicate record
// into a single value. The field-shape tag picks the algorithm: ARRAY
// union-merges, the composite families run the primary+secondary merge, and
// everything else takes the priority record's value. Only the scalar path
// can fail (RecordNotFoundError when priorityRecordID matches no record).
func (m *Merger) FieldValues(t fieldtype.Type, records []Record, priorityRecordID string) (any, error) {
	switch t.Shape() {
	case fieldtype.ShapeArray:
		return Array(records), nil
	case fieldtype.ShapeComposite:
		return m.composite(t, records, priorityRecordID), nil
	default:
		return Scalar(records, priorityRecordID)
	}
}

// composite runs the family-specific instantiation of the composite merge.
// Shape guarantees t is one of the composite families.
func (m *Merger) composite(t fieldtype.Type, records []Record, priorityRecordID string) any {
	switch t {
	case fieldtype.Emails:
		return Composite(records, priorityRecordID, fieldvalue.Emails)
	case fieldtype.Phones:
		return Composite(records, priorityRecordID, m.phones)
	default: // fieldtype.Links
		return Composite(records, priorityRecordID, fieldvalue.Links)
	}
}

// FieldValues merges one field using the stock defaults. It is the package
// entry point for callers without a configured Merger.
func FieldValues(t fieldtype.Type, records []Record, priorityRecordID string) (any, error) {
	return defaultMerger.FieldValues(t, records, priorityRecordID)
}

// Field pairs a field name with its declared shape tag, as supplied by the
// caller's field metadata.
type Field struct {
	Name string
	Type fieldtype.Type
}

// Contribution is one duplicate record's field values, keyed by field name.
// A field missing from Values contributes an absent value.
type Contribution struct {
	RecordID string
	Values   map[string]any
}

// Records merges every mergeable field across the given contributions,
// returning the merged values keyed by field name. Non-mergeable fields are
// skipped entirely. The first scalar field whose priority record is missing
// fails the whole merge — a missing priority record is a caller error, not
// something to paper over field by field.
func (m *Merger) Records(fields []Field, contributions []Contribution, priorityRecordID string) (map[string]any, error) {
	merged := make(map[string]any, len(fields))
	records := make([]Record, len(contributions))
	for _, f := range fields {
		if !f.Type.Mergeable() {
			continue
		}
		for i, c := range contributions {
			records[i] = Record{RecordID: c.RecordID, Value: c.Values[f.Name]}
		}
		value, err := m.FieldValues(f.Type, records, priorityRecordID)
		if err != nil {
			return nil, fmt.Errorf("merge: field %s: %w", f.Name, err)
		}
		merged[f.Name] = value
	}
	return merged, nil
}
