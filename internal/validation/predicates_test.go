package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	note  string
}

func TestIsValidID(t *testing.T) {
	valid := []any{1, int64(42), uint(3), 7.0}
	invalid := []any{nil, 0, -1, 1.5, math.NaN(), math.Inf(1), "1", true}

	for _, id := range valid {
		assert.True(t, IsValidID(id), "%v", id)
	}
	for _, id := range invalid {
		assert.False(t, IsValidID(id), "%v", id)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID(" 12 ")
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"", "abc", "0", "-4", "1.5"} {
		_, ok := ParseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestIsValidStrings(t *testing.T) {
	assert.True(t, IsValidStrings("a", "b"))
	assert.False(t, IsValidStrings())
	assert.False(t, IsValidStrings("a", "  "))
}

func TestIsValidObject(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		assert.True(t, IsValidObject(sample{ID: 1, Name: "x", Score: 2}))
		assert.True(t, IsValidObject(&sample{ID: 1, Name: "x", Score: 2}))
		assert.False(t, IsValidObject(sample{ID: 1, Name: " ", Score: 2}))
		assert.False(t, IsValidObject(sample{Name: "x", Score: 2}))
	})

	t.Run("excluded fields are skipped", func(t *testing.T) {
		assert.True(t, IsValidObject(sample{Name: "x", Score: 2}, "id"))
	})

	t.Run("map", func(t *testing.T) {
		assert.True(t, IsValidObject(map[string]any{"name": "x", "rank": 3}))
		assert.False(t, IsValidObject(map[string]any{"name": "x", "rank": nil}))
		assert.False(t, IsValidObject(map[int]string{1: "x"}))
	})

	t.Run("non objects", func(t *testing.T) {
		var nilSample *sample
		assert.False(t, IsValidObject(nilSample))
		assert.False(t, IsValidObject("text"))
	})
}

func TestIsPropertyOf(t *testing.T) {
	assert.True(t, IsPropertyOf("name", sample{}))
	assert.True(t, IsPropertyOf("score", &sample{}))
	assert.False(t, IsPropertyOf("note", sample{}))
	assert.False(t, IsPropertyOf("Name", sample{}))
	assert.Equal(t, []string{"id", "name", "score"}, Fields(sample{}))
	assert.Nil(t, Fields(42))
}

func TestIsEmptyObject(t *testing.T) {
	assert.True(t, IsEmptyObject(nil))
	assert.True(t, IsEmptyObject(map[string]string{}))
	assert.True(t, IsEmptyObject(sample{}))
	assert.False(t, IsEmptyObject(sample{Name: "x"}))
	assert.False(t, IsEmptyObject([]int{1}))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsValidUUID("123e4567"))
}
