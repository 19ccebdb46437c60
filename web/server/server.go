package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string `json:"scene"`     // Built-in scene name
	Width     int    `json:"width"`     // Output image width
	Height    int    `json:"height"`    // Output image height
	Depth     int    `json:"depth"`     // Maximum reflection bounces
	Antialias int    `json:"antialias"` // Supersampling factor per axis
	Format    string `json:"format"`    // Image format for /api/image
}

// CompleteUpdate is the final SSE event of a streamed render
type CompleteUpdate struct {
	RenderID  string `json:"renderId"`
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels   int     `json:"totalPixels"`
	Samples       int     `json:"samples"`
	RaysTraced    int     `json:"raysTraced"`
	EscapedRays   int     `json:"escapedRays"`
	RaysPerSample float64 `json:"raysPerSample"`
	Workers       int     `json:"workers"`
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleImage renders synchronously and responds with the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	renderID := uuid.NewString()
	logger := NewWebLogger(renderID, nil)
	fb, _, err := s.render(r.Context(), req, logger)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "renderId": renderID})
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, req.Format, fb.ToRGBA()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error(), "renderId": renderID})
		return
	}

	w.Header().Set("Content-Type", "image/"+req.Format)
	w.Header().Set("X-Render-ID", renderID)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRender renders with console output and the final image streamed over SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := uuid.NewString()
	w.Header().Set("X-Render-ID", renderID)
	consoleChan := make(chan ConsoleMessage, 100)
	logger := NewWebLogger(renderID, consoleChan)

	type renderResult struct {
		fb    *renderer.Framebuffer
		stats renderer.RenderStats
		err   error
	}
	done := make(chan renderResult, 1)

	// Use request context to stop rendering when the client disconnects
	ctx := r.Context()
	startTime := time.Now()
	go func() {
		fb, stats, err := s.render(ctx, req, logger)
		done <- renderResult{fb: fb, stats: stats, err: err}
	}()

	var result renderResult
loop:
	for {
		select {
		case msg := <-consoleChan:
			s.sendSSEConsole(w, msg)
		case result = <-done:
			break loop
		}
	}

	// Flush console messages logged before the render returned
	for {
		select {
		case msg := <-consoleChan:
			s.sendSSEConsole(w, msg)
			continue
		default:
		}
		break
	}

	if result.err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", result.err))
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, "png", result.fb.ToRGBA()); err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	update := CompleteUpdate{
		RenderID:  renderID,
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats: Stats{
			TotalPixels:   result.stats.TotalPixels,
			Samples:       result.stats.Samples,
			RaysTraced:    result.stats.RaysTraced,
			EscapedRays:   result.stats.EscapedRays,
			RaysPerSample: result.stats.RaysPerSample(),
			Workers:       result.stats.Workers,
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}
	data, err := json.Marshal(update)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// render builds the requested scene and draws it
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger) (*renderer.Framebuffer, renderer.RenderStats, error) {
	sceneObj, err := scene.Lookup(req.Scene)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	raytracer := renderer.NewRaytracer(sceneObj, renderer.DefaultRenderConfig(), logger)
	fb, stats, err := raytracer.Draw(ctx, req.Width, req.Height, req.Depth, req.Antialias)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	logger.Printf("Render completed: %s\n", stats.Summary())
	return fb, stats, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		req.Format = format
	}
	if !isSupportedFormat(req.Format) {
		return nil, fmt.Errorf("unsupported format: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 1, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 5, 0, 50); err != nil {
		return nil, err
	}
	if req.Antialias, err = parseIntParam(query, "antialias", 2, 1, 8); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height*req.Antialias*req.Antialias > 1600*1200 {
		log.Printf("Render warning: %dx%d at x%d supersampling may render slowly", req.Width, req.Height, req.Antialias)
	}

	return req, nil
}

func isSupportedFormat(format string) bool {
	for _, f := range loaders.SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// sendSSEConsole forwards a console message via SSE
func (s *Server) sendSSEConsole(w http.ResponseWriter, msg ConsoleMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "console", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
