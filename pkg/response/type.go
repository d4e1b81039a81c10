package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
// Coach turns fill Reply on success and Message on failure.
type Resp struct {
	Status  string `json:"status"`
	Reply   string `json:"reply,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// DateTime is a datetime that marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
