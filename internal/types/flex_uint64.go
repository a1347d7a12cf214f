package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexUint64 is a uint64 that accepts either a JSON number or a numeric JSON
// string. Browser form posts serialize record ids as strings, API clients as
// numbers; both land on the same field.
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		val, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("FlexUint64: invalid uint64 string %q: %w", s, err)
		}
		*f = FlexUint64(val)
		return nil
	}

	return fmt.Errorf("FlexUint64: unexpected type, expected number or string")
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 converts FlexUint64 back to uint64.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}
