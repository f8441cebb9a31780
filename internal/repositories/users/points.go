package users

import (
	"encoding/json"
	"fmt"

	"github.com/akoreshkova/patternlock/internal/pattern"
)

// Patterns are persisted as a JSON array of {"x":..,"y":..} objects, the
// same shape the record schema exposes externally.

func marshalPoints(p pattern.Pattern) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal points: %w", err)
	}
	return data, nil
}

func unmarshalPoints(data []byte) (pattern.Pattern, error) {
	var p pattern.Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal points: %w", err)
	}
	return p, nil
}
