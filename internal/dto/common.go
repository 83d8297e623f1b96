package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// OpaqueText accepts either a JSON string or any other JSON value and keeps
// it as text. Custom pack item lists are stored without interpretation.
type OpaqueText string

func (t *OpaqueText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = OpaqueText(s)
		return nil
	}

	*t = OpaqueText(data)
	return nil
}

// Ptr returns nil for empty text.
func (t OpaqueText) Ptr() *string {
	if t == "" {
		return nil
	}
	s := string(t)
	return &s
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
