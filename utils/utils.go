package utils

import (
	"strings"
)

// NormalizeRoomCode uppercases and trims a client-supplied room code so that
// lookups are case-insensitive.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Payload is the decoded form of a socket.io event argument. JSON objects
// arrive as map[string]interface{} with float64 numbers.
type Payload map[string]interface{}

// AsPayload converts the first socket.io arg into a Payload. Returns an
// empty map (not nil) when the arg is missing or not an object, so handlers
// can read keys without a nil check.
func AsPayload(args []interface{}) Payload {
	if len(args) == 0 {
		return Payload{}
	}
	if m, ok := args[0].(map[string]interface{}); ok {
		return Payload(m)
	}
	return Payload{}
}

func (p Payload) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Int reads a numeric field. JavaScript numbers come through as float64.
func (p Payload) Int(key string) int {
	switch v := p[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (p Payload) IntOr(key string, def int) int {
	if _, ok := p[key]; !ok {
		return def
	}
	return p.Int(key)
}

func (p Payload) Object(key string) Payload {
	if m, ok := p[key].(map[string]interface{}); ok {
		return Payload(m)
	}
	return Payload{}
}

func (p Payload) StringSlice(key string) []string {
	raw, ok := p[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
