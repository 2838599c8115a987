package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lumident/clinic-platform/internal/scene"
	"github.com/lumident/clinic-platform/internal/scene/timeline"
	"github.com/lumident/clinic-platform/pkg/logging"
)

// SceneHandler serves the prebuilt braces assembly and its animation
// parameters. The assembly is deterministic for a given seed, so it is
// built once at startup and served as-is.
type SceneHandler struct {
	assembly *scene.Assembly
	config   timeline.Config
	logger   *logging.Logger
}

func NewSceneHandler(assembly *scene.Assembly, cfg timeline.Config, logger *logging.Logger) *SceneHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SceneHandler{
		assembly: assembly,
		config:   cfg,
		logger:   logger,
	}
}

// GetScene handles GET /api/scene.
func (h *SceneHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.assembly); err != nil {
		h.logger.Error("failed to encode scene", "error", err)
	}
}

// timelineResponse bundles the keyframe targets with the rest-state
// constants a renderer needs to reproduce the scroll animation.
type timelineResponse struct {
	YawTarget           float64 `json:"yawTarget"`
	ExplodeTarget       float64 `json:"explodeTarget"`
	WireForward         float64 `json:"wireForward"`
	WireLift            float64 `json:"wireLift"`
	AnnotationThreshold float64 `json:"annotationThreshold"`
	RestPitch           float64 `json:"restPitch"`
	RestY               float64 `json:"restY"`
	FloatAmplitude      float64 `json:"floatAmplitude"`
	FloatFrequency      float64 `json:"floatFrequency"`
}

// GetTimeline handles GET /api/scene/timeline.
func (h *SceneHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	resp := timelineResponse{
		YawTarget:           h.config.YawTarget,
		ExplodeTarget:       h.config.ExplodeTarget,
		WireForward:         h.config.WireForward,
		WireLift:            h.config.WireLift,
		AnnotationThreshold: h.config.AnnotationThreshold,
		RestPitch:           timeline.RestPitch,
		RestY:               timeline.RestY,
		FloatAmplitude:      timeline.FloatAmplitude,
		FloatFrequency:      timeline.FloatFrequency,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
