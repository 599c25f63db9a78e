package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoomCode(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizeRoomCode("  abc123 "))
	assert.Equal(t, "ABC123", NormalizeRoomCode("ABC123"))
	assert.Equal(t, "", NormalizeRoomCode("   "))
}

func TestAsPayload(t *testing.T) {
	// Decoded JSON object passes through.
	p := AsPayload([]interface{}{map[string]interface{}{"roomId": "ABC123"}})
	assert.Equal(t, "ABC123", p.String("roomId"))

	// Missing or non-object args yield an empty, readable map.
	assert.NotNil(t, AsPayload(nil))
	assert.Equal(t, "", AsPayload(nil).String("roomId"))
	assert.Equal(t, "", AsPayload([]interface{}{"just a string"}).String("roomId"))
}

func TestPayloadAccessors(t *testing.T) {
	p := AsPayload([]interface{}{map[string]interface{}{
		"name":   "Alice",
		"rounds": float64(5), // JSON numbers decode as float64
		"count":  3,
		"clue":   map[string]interface{}{"word": "OCEAN", "number": float64(2)},
		"words":  []interface{}{"cat", "dog", 42},
	}})

	assert.Equal(t, "Alice", p.String("name"))
	assert.Equal(t, "", p.String("missing"))

	assert.Equal(t, 5, p.Int("rounds"))
	assert.Equal(t, 3, p.Int("count"))
	assert.Equal(t, 0, p.Int("name"))

	assert.Equal(t, 5, p.IntOr("rounds", -1))
	assert.Equal(t, -1, p.IntOr("missing", -1))

	clue := p.Object("clue")
	assert.Equal(t, "OCEAN", clue.String("word"))
	assert.Equal(t, 2, clue.Int("number"))
	assert.Empty(t, p.Object("missing"))

	// Non-string elements are skipped.
	assert.Equal(t, []string{"cat", "dog"}, p.StringSlice("words"))
	assert.Nil(t, p.StringSlice("missing"))
}
