// Package api defines the wire contract consumed from the remote
// file-command boundary. All boundary JSON is decoded into the closed
// structs below at the parse step; nothing downstream handles raw or
// untyped payloads.
package api

// UploadResponse is the success body of POST /api/upload.
type UploadResponse struct {
	SessionID string `json:"session_id"`
	Filename  string `json:"filename"`
	Message   string `json:"message,omitempty"`
}

// AskResponse is the success body of POST /api/ask. A usable response
// carries a non-empty Answer; anything else is a boundary failure.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the failure body every boundary endpoint may return.
type ErrorResponse struct {
	Error string `json:"error"`
}
