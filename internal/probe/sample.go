package probe

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// samplePayload returns a unique JSON object shaped like a record of the
// named collection.
func samplePayload(name string) ([]byte, error) {
	tag := uuid.NewString()[:8]

	var v map[string]any
	switch name {
	case "activities":
		v = map[string]any{"name": "Probe run " + tag, "duration": 20, "calories": 180}
	case "users":
		v = map[string]any{"username": "probe_" + tag, "email": "probe_" + tag + "@example.com"}
	case "teams":
		v = map[string]any{"name": "Probe squad " + tag, "members": 3}
	default:
		v = map[string]any{"name": name + " " + tag}
	}
	v["probe_id"] = tag

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s sample: %w", name, err)
	}
	return data, nil
}

// sameJSON reports whether a and b decode to equal values.
func sameJSON(a, b []byte) bool {
	var va, vb any
	if json.Unmarshal(a, &va) != nil || json.Unmarshal(b, &vb) != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
