package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-account-keeper/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	warning := models.Warning{Operation: "delete", Resource: "avatar", Message: "host unavailable"}

	_, err := WriteSuccess(w, http.StatusCreated, map[string]string{"id": "u1"}, "created", warning)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var got models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusCreated || got.StatusCode != http.StatusCreated {
		t.Errorf("expected 201 in header and body, got %d/%d", w.Code, got.StatusCode)
	}
	if !got.Success {
		t.Error("expected success=true")
	}
	if got.Message != "created" {
		t.Errorf("expected message 'created', got %q", got.Message)
	}
	if len(got.Warnings) != 1 || got.Warnings[0].Resource != "avatar" {
		t.Errorf("expected one avatar warning, got %+v", got.Warnings)
	}
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteError(w, http.StatusUnauthorized, "unauthorized request")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["success"] != false {
		t.Errorf("expected success=false, got %v", got["success"])
	}
	if _, hasData := got["data"]; hasData {
		t.Error("expected no data field in error envelope")
	}
	if got["statusCode"] != float64(http.StatusUnauthorized) {
		t.Errorf("expected statusCode 401, got %v", got["statusCode"])
	}
}
