package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Request limits
const (
	MinWidth      = 16
	MaxWidth      = 2000
	MinBandHeight = 1
	MaxBandHeight = 2000

	DefaultBandHeight = 16
)

// Server handles web requests for the raycaster
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, scenesDir: scene.FindScenesDir()}
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the routes served by the web server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes := scene.ListBuiltinScenes()
	if s.scenesDir != "" {
		files, err := scene.ListSceneFiles(s.scenesDir, core.NewStdLogger(log.Writer(), ""))
		if err != nil {
			log.Printf("Error listing scene files: %v", err)
		}
		scenes = append(scenes, files...)
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenes": scenes})
}

// handleSceneConfig returns the camera defaults for a scene along with request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := sceneParam(r.URL.Query())

	sceneObj, err := s.createScene(sceneName, 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := sceneObj.GetCameraConfig()
	response := map[string]any{
		"scene":       sceneName,
		"displayName": sceneObj.Name,
		"description": sceneObj.Description,
		"spheres":     sceneObj.GetPrimitiveCount(),
		"defaults": map[string]any{
			"width":          config.Width,
			"height":         config.Height(),
			"aspectRatio":    config.AspectRatio,
			"viewportHeight": config.ViewportHeight,
			"focalLength":    config.FocalLength,
			"origin":         [3]float64{config.Origin.X, config.Origin.Y, config.Origin.Z},
			"bandHeight":     DefaultBandHeight,
		},
		"limits": map[string]any{
			"width": map[string]int{
				"min": MinWidth,
				"max": MaxWidth,
			},
			"bandHeight": map[string]int{
				"min": MinBandHeight,
				"max": MaxBandHeight,
			},
		},
		"formats": imageio.Formats,
	}

	writeJSON(w, http.StatusOK, response)
}

// handleImage renders a scene in one pass and returns the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", 0, MinWidth, MaxWidth)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	format := imageio.FormatPNG
	if name := query.Get("format"); name != "" {
		if format, err = imageio.ParseFormat(name); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	sceneObj, err := s.createScene(sceneParam(query), width)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	img, _ := renderer.NewRaytracer(sceneObj, nil).RenderPass()

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, format); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// sceneParam returns the requested scene name, or the default scene
func sceneParam(values url.Values) string {
	if name := values.Get("scene"); name != "" {
		return name
	}
	return "default"
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

// createScene creates a built-in scene or a scene file listed in the scenes
// directory, by ID only; width 0 keeps the scene's own width
func (s *Server) createScene(sceneName string, width int) (*scene.Scene, error) {
	var overrides []renderer.CameraConfig
	if width > 0 {
		overrides = append(overrides, renderer.CameraConfig{Width: width})
	}

	var sceneObj *scene.Scene
	var err error
	if scene.IsBuiltin(sceneName) {
		sceneObj, err = scene.Create(sceneName, overrides...)
	} else if path := s.sceneFilePath(sceneName); path != "" {
		sceneObj, err = scene.LoadSceneFile(path, overrides...)
	} else {
		return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, sceneName)
	}
	if err != nil {
		return nil, err
	}

	if w := sceneObj.GetCameraConfig().Width; w > MaxWidth {
		return nil, fmt.Errorf("scene %s is %d pixels wide, above the limit of %d", sceneName, w, MaxWidth)
	}
	return sceneObj, nil
}

// sceneFilePath returns the file behind a discovered scene ID, or "" if the ID is not listed
func (s *Server) sceneFilePath(id string) string {
	if s.scenesDir == "" {
		return ""
	}
	files, err := scene.ListSceneFiles(s.scenesDir, nil)
	if err != nil {
		return ""
	}
	for _, info := range files {
		if info.ID == id {
			return info.FilePath
		}
	}
	return ""
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// writeJSON writes a JSON response with CORS enabled
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
