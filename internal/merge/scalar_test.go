package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_PriorityFound_ReturnsItsValue(t *testing.T) {
	records := []Record{
		{RecordID: "r1", Value: "v1"},
		{RecordID: "P", Value: "v2"},
		{RecordID: "r3", Value: "v3"},
	}

	got, err := Scalar(records, "P")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestScalar_PriorityMissing_RecordNotFound(t *testing.T) {
	records := []Record{
		{RecordID: "r1", Value: "v1"},
		{RecordID: "P", Value: "v2"},
	}

	_, err := Scalar(records, "missing")
	require.Error(t, err)

	var nf *RecordNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.RecordID)
	assert.Contains(t, err.Error(), "missing",
		"error message should name the missing record ID")
}

func TestScalar_EmptyInput_RecordNotFound(t *testing.T) {
	_, err := Scalar(nil, "P")

	var nf *RecordNotFoundError
	require.ErrorAs(t, err, &nf,
		"a single-valued field with no contributors has no priority record either")
}

func TestScalar_AbsentValue_ReturnedVerbatim(t *testing.T) {
	records := []Record{{RecordID: "P", Value: nil}}

	got, err := Scalar(records, "P")
	require.NoError(t, err)
	assert.Nil(t, got, "the priority record's value wins even when absent; there is no fallback search")
}
