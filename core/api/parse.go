package api

import (
	"encoding/json"
	"fmt"
)

// ParseUpload parses a JSON upload response body into an UploadResponse.
func ParseUpload(body []byte) (*UploadResponse, error) {
	var response UploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}
	return &response, nil
}

// ParseAsk parses a JSON ask response body into an AskResponse.
func ParseAsk(body []byte) (*AskResponse, error) {
	var response AskResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse ask response: %w", err)
	}
	return &response, nil
}

// ErrorMessage extracts the boundary's error message from a failure body.
// Malformed or empty bodies yield the fallback message so every failure
// path carries human-readable text.
func ErrorMessage(body []byte, fallback string) string {
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err == nil && response.Error != "" {
		return response.Error
	}
	return fallback
}
