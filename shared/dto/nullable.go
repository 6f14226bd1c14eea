package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullableTime distinguishes the three states a timestamp field of a JSON
// payload can be in: absent, explicit null, and a value. Partial updates
// need all three: absent leaves the stored value untouched while explicit
// null clears it.
type NullableTime struct {
	Set   bool
	Valid bool
	Time  time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true

	if bytes.Equal(data, []byte("null")) {
		n.Valid = false
		n.Time = time.Time{}

		return nil
	}

	if err := json.Unmarshal(data, &n.Time); err != nil {
		return err
	}

	n.Valid = true

	return nil
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.Time) //nolint:wrapcheck
}
