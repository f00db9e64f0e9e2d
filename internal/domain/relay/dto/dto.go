// Package dto contains request and response shapes for the relay API
package dto

import (
	"encoding/json"
	"fmt"
)

// ChatID accepts a JSON string or number and normalizes it to a string
type ChatID string

// UnmarshalJSON implements json.Unmarshaler
func (c *ChatID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ChatID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chat_id must be a string or number")
	}

	*c = ChatID(n.String())
	return nil
}

// DownloadRequest is the inbound relay request
type DownloadRequest struct {
	ChatID  ChatID `json:"chat_id"`
	URL     string `json:"url"`
	Quality string `json:"quality,omitempty"`
}

// DownloadResponse is the success response echoing the platform result
type DownloadResponse struct {
	OK     bool        `json:"ok"`
	Result interface{} `json:"result"`
}

// ErrorResponse is the failure response with optional diagnostic context
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

// HealthResponse is the liveness response
type HealthResponse struct {
	Status string `json:"status"`
}
