package server

import (
	"net/http"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit      bool       `json:"hit"`
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Distance float64    `json:"distance"`
	Outside  bool       `json:"outside"`
	Color    [3]uint8   `json:"color"`
}

// handleInspect traces the primary ray through one pixel and reports the hit
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", 0, MinWidth, MaxWidth)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(sceneParam(query), width)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj, nil)
	imgWidth, imgHeight := raytracer.Size()

	x, err := parseIntParam(query, "x", -1, 0, imgWidth-1)
	if err == nil && x < 0 {
		err = errMissingParam("x")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, imgHeight-1)
	if err == nil && y < 0 {
		err = errMissingParam("y")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hit, c, ok := raytracer.Inspect(x, y)
	rgba := renderer.ColorToRGBA(c)
	response := InspectResponse{
		Hit:   ok,
		Color: [3]uint8{rgba.R, rgba.G, rgba.B},
	}
	if ok {
		point, normal := hit.Point(), hit.Normal()
		response.Point = [3]float64{point.X, point.Y, point.Z}
		response.Normal = [3]float64{normal.X, normal.Y, normal.Z}
		response.Distance = hit.Dist()
		response.Outside = hit.Outside()
	}

	writeJSON(w, http.StatusOK, response)
}

type errMissingParam string

func (e errMissingParam) Error() string {
	return "missing required parameter: " + string(e)
}
