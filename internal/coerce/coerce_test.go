package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPresent_NilAndEmptyString_Absent(t *testing.T) {
	assert.False(t, IsPresent(nil))
	assert.False(t, IsPresent(""))
}

func TestIsPresent_ZeroValues_Present(t *testing.T) {
	assert.True(t, IsPresent(0), "zero is a real value, not an absent one")
	assert.True(t, IsPresent(false), "false is a real value, not an absent one")
	assert.True(t, IsPresent(" "), "whitespace is not the empty string")
	assert.True(t, IsPresent("x"))
}

func TestToSequence_NativeSlice_UnchangedInOrder(t *testing.T) {
	got := ToSequence[string]([]string{"b", "a", "b"})
	assert.Equal(t, []string{"b", "a", "b"}, got,
		"native sequences pass through in order, duplicates intact")
}

func TestToSequence_JSONText_Decoded(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, ToSequence[string](`["x","y"]`))
}

func TestToSequence_JSONBytes_Decoded(t *testing.T) {
	assert.Equal(t, []string{"x"}, ToSequence[string]([]byte(`["x"]`)))
}

func TestToSequence_MalformedText_Empty(t *testing.T) {
	assert.Empty(t, ToSequence[string]("not json"),
		"malformed input degrades to no data instead of failing the merge")
	assert.Empty(t, ToSequence[string](`{"a":1}`),
		"a JSON object is not a sequence")
}

func TestToSequence_NilAndScalar_Empty(t *testing.T) {
	assert.Empty(t, ToSequence[string](nil))
	assert.Empty(t, ToSequence[string](42))
}

func TestToSequence_LooseSlice_Converted(t *testing.T) {
	got := ToSequence[string]([]any{"x", "y"})
	assert.Equal(t, []string{"x", "y"}, got,
		"[]any from decoded JSON converts through a round trip")
}

func TestToSequence_StructUnits_Decoded(t *testing.T) {
	type unit struct {
		Number string `json:"number"`
	}
	got := ToSequence[unit](`[{"number":"+1555"},{"number":"+4420"}]`)
	assert.Equal(t, []unit{{Number: "+1555"}, {Number: "+4420"}}, got)
}
