package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// Request describes one HTTP call against the boundary. All request types
// implement this interface so the client can execute them uniformly.
type Request interface {
	// Method returns the HTTP method for this request.
	Method() string

	// Path returns the boundary endpoint path.
	Path() string

	// Encode returns the request content type and body.
	Encode() (contentType string, body io.Reader, err error)
}

// UploadRequest carries a file to POST /api/upload as a multipart body
// with a single "file" field.
type UploadRequest struct {
	Filename string
	Content  io.Reader
}

func (r *UploadRequest) Method() string { return "POST" }

func (r *UploadRequest) Path() string { return "/api/upload" }

func (r *UploadRequest) Encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, r.Filename))
	header.Set("Content-Type", "application/octet-stream")

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode upload request: %w", err)
	}
	if _, err := io.Copy(part, r.Content); err != nil {
		return "", nil, fmt.Errorf("failed to encode upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", nil, fmt.Errorf("failed to encode upload request: %w", err)
	}

	return writer.FormDataContentType(), &buf, nil
}

// AskRequest carries a question scoped to a session to POST /api/ask.
type AskRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id"`
}

func (r *AskRequest) Method() string { return "POST" }

func (r *AskRequest) Path() string { return "/api/ask" }

func (r *AskRequest) Encode() (string, io.Reader, error) {
	return encodeJSON(r)
}

// CleanupRequest asks the boundary to discard a session's server-side
// state via POST /api/cleanup.
type CleanupRequest struct {
	SessionID string `json:"session_id"`
}

func (r *CleanupRequest) Method() string { return "POST" }

func (r *CleanupRequest) Path() string { return "/api/cleanup" }

func (r *CleanupRequest) Encode() (string, io.Reader, error) {
	return encodeJSON(r)
}

func encodeJSON(v any) (string, io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return "application/json", bytes.NewReader(data), nil
}
