package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Scene name or scene file
	Width      int    `json:"width"`      // Image width, 0 keeps the scene's width
	BandHeight int    `json:"bandHeight"` // Rows rendered between progress updates
}

// ProgressUpdate is sent via SSE after each band of rows
type ProgressUpdate struct {
	RowsDone   int    `json:"rowsDone"`
	TotalRows  int    `json:"totalRows"`
	Width      int    `json:"width"`
	ImageData  string `json:"imageData"` // Base64 encoded PNG of the image so far
	Stats      Stats  `json:"stats"`
	IsComplete bool   `json:"isComplete"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	HitRatio    float64 `json:"hitRatio"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"`
}

// handleRender streams a band-by-band render via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine owns the ResponseWriter
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(w, ctx, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	var consoleWG sync.WaitGroup
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()

	err = s.render(ctx, req, webLogger, sseEventChan)

	// Flush remaining console output before the final event
	close(consoleChan)
	consoleWG.Wait()

	if err != nil {
		s.sendEvent(ctx, sseEventChan, "error", fmt.Sprintf("Render error: %v", err))
		return
	}
	s.sendEvent(ctx, sseEventChan, "complete", "Rendering completed")
}

// render runs the raytracer and queues a progress event per band
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger, sseEventChan chan<- SSEEvent) error {
	sceneObj, err := s.createScene(req.Scene, req.Width)
	if err != nil {
		return err
	}
	logger.Printf("Rendering %s (%d spheres)\n", sceneObj.Name, sceneObj.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(sceneObj, logger)
	width, _ := raytracer.Size()
	startTime := time.Now()

	_, _, err = raytracer.RenderRows(ctx, req.BandHeight, func(band renderer.BandResult) error {
		imageData, err := imageToBase64PNG(band.Image)
		if err != nil {
			return fmt.Errorf("failed to encode image: %w", err)
		}

		update := ProgressUpdate{
			RowsDone:  band.RowsDone,
			TotalRows: band.TotalRows,
			Width:     width,
			ImageData: imageData,
			Stats: Stats{
				TotalPixels: band.Stats.TotalPixels,
				Hits:        band.Stats.Hits,
				Misses:      band.Stats.Misses,
				HitRatio:    band.Stats.HitRatio(),
			},
			IsComplete: band.IsLast(),
			ElapsedMs:  time.Since(startTime).Milliseconds(),
		}

		data, err := json.Marshal(update)
		if err != nil {
			return err
		}
		return s.sendEvent(ctx, sseEventChan, "progress", string(data))
	})
	return err
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: sceneParam(query)}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinWidth, MaxWidth); err != nil {
		return nil, err
	}
	if req.BandHeight, err = parseIntParam(query, "bandHeight", DefaultBandHeight, MinBandHeight, MaxBandHeight); err != nil {
		return nil, err
	}
	return req, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	return consoleChan, NewWebLogger(renderID, consoleChan)
}

// sendEvent queues an event for the writer goroutine, giving up if the client is gone
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan<- SSEEvent, eventType, data string) error {
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: data}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// writeSSEEvents writes all SSE events from a single goroutine until the channel closes
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan <-chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages as SSE events until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}
		if s.sendEvent(ctx, sseEventChan, "console", string(data)) != nil {
			return
		}
	}
}
