package opt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashiqdev/taka/internal/opt"
)

func TestField_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Note opt.Field[string] `json:"note"`
	}

	t.Run("Absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Note.Set())
		assert.False(t, p.Note.Valid())
		assert.Nil(t, p.Note.Ptr())
	})

	t.Run("Null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"note": null}`), &p))
		assert.True(t, p.Note.Set())
		assert.False(t, p.Note.Valid())
		assert.Nil(t, p.Note.Ptr())
	})

	t.Run("Value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"note": "groceries"}`), &p))
		assert.True(t, p.Note.Set())
		assert.True(t, p.Note.Valid())
		assert.Equal(t, "groceries", p.Note.Value())

		ptr := p.Note.Ptr()
		require.NotNil(t, ptr)
		assert.Equal(t, "groceries", *ptr)
	})

	t.Run("EmptyStringIsAValue", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"note": ""}`), &p))
		assert.True(t, p.Note.Set())
		assert.True(t, p.Note.Valid())
		assert.Equal(t, "", p.Note.Value())
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"note": 42}`), &p))
	})
}

func TestField_Constructors(t *testing.T) {
	f := opt.Of(3.5)
	assert.True(t, f.Set())
	assert.True(t, f.Valid())
	assert.Equal(t, 3.5, f.Value())

	n := opt.Null[float64]()
	assert.True(t, n.Set())
	assert.False(t, n.Valid())
	assert.Nil(t, n.Ptr())
}
