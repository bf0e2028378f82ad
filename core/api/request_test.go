package api_test

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/file-command-nexus/nexus/core/api"
)

func TestUploadRequestEncode(t *testing.T) {
	req := &api.UploadRequest{
		Filename: "notes.txt",
		Content:  strings.NewReader("hello world"),
	}

	contentType, body, err := req.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType(%q) error = %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q, want %q", mediaType, "multipart/form-data")
	}

	reader := multipart.NewReader(body, params["boundary"])
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("NextPart() error = %v", err)
	}
	if got := part.FormName(); got != "file" {
		t.Errorf("FormName() = %q, want %q", got, "file")
	}
	if got := part.FileName(); got != "notes.txt" {
		t.Errorf("FileName() = %q, want %q", got, "notes.txt")
	}
	data, err := io.ReadAll(part)
	if err != nil {
		t.Fatalf("ReadAll(part) error = %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("part content = %q, want %q", data, "hello world")
	}
}

func TestUploadRequestRoute(t *testing.T) {
	req := &api.UploadRequest{Filename: "a.txt", Content: strings.NewReader("x")}
	if got := req.Method(); got != "POST" {
		t.Errorf("Method() = %q, want %q", got, "POST")
	}
	if got := req.Path(); got != "/api/upload" {
		t.Errorf("Path() = %q, want %q", got, "/api/upload")
	}
}

func TestAskRequestEncode(t *testing.T) {
	req := &api.AskRequest{Question: "what is this file?", SessionID: "sess-1"}

	contentType, body, err := req.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q, want %q", contentType, "application/json")
	}

	var payload map[string]string
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if payload["question"] != "what is this file?" {
		t.Errorf("question = %q, want %q", payload["question"], "what is this file?")
	}
	if payload["session_id"] != "sess-1" {
		t.Errorf("session_id = %q, want %q", payload["session_id"], "sess-1")
	}
}

func TestCleanupRequestEncode(t *testing.T) {
	req := &api.CleanupRequest{SessionID: "sess-1"}

	if got := req.Path(); got != "/api/cleanup" {
		t.Errorf("Path() = %q, want %q", got, "/api/cleanup")
	}

	_, body, err := req.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var payload map[string]string
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if payload["session_id"] != "sess-1" {
		t.Errorf("session_id = %q, want %q", payload["session_id"], "sess-1")
	}
}
