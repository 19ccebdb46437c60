package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func TestServer_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestServer_Scenes(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var infos []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(infos) != len(scene.ListScenes()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.ListScenes()), len(infos))
	}
}

func TestServer_Image(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/image?scene=default&width=16&height=12&depth=2&antialias=2", nil)
	NewServer(0).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if _, err := uuid.Parse(rec.Header().Get("X-Render-ID")); err != nil {
		t.Errorf("Expected a UUID render ID, got %q", rec.Header().Get("X-Render-ID"))
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestServer_ImageRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric width", "width=abc"},
		{"zero antialias", "antialias=0"},
		{"negative depth", "depth=-1"},
		{"oversized height", "height=5000"},
		{"unknown format", "format=gif"},
		{"unknown scene", "scene=nope&width=4&height=4"},
	}

	handler := NewServer(0).Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/image?"+tt.query, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestServer_RenderStream(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render?scene=mirrors&width=8&height=6&depth=3&antialias=1", nil)
	NewServer(0).Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "event: console") {
		t.Error("Expected console events in stream")
	}

	idx := strings.Index(body, "event: complete\ndata: ")
	if idx < 0 {
		t.Fatalf("Expected complete event, got:\n%s", body)
	}
	data := body[idx+len("event: complete\ndata: "):]
	data = data[:strings.Index(data, "\n")]

	var update CompleteUpdate
	if err := json.Unmarshal([]byte(data), &update); err != nil {
		t.Fatalf("Failed to decode complete event: %v", err)
	}
	if update.Stats.TotalPixels != 48 {
		t.Errorf("Expected 48 pixels, got %d", update.Stats.TotalPixels)
	}
	raw, err := base64.StdEncoding.DecodeString(update.ImageData)
	if err != nil {
		t.Fatalf("Failed to decode image data: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestServer_RenderStreamError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/render?scene=nope", nil))

	if !strings.Contains(rec.Body.String(), "event: error") {
		t.Errorf("Expected error event, got:\n%s", rec.Body.String())
	}
}
