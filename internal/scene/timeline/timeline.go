// Package timeline maps normalized scroll progress to the braces-scene pose.
// Pose is a pure function of progress: the browser scrubs p in either
// direction and every continuous property mirrors exactly, so no state is
// kept between evaluations.
package timeline

import (
	"math"
	"time"

	"github.com/lumident/clinic-platform/internal/mathutil"
)

// Rest pose of the whole assembly and the idle float parameters. The float
// is a bounded wall-clock bob layered additively under the scroll pose; it
// cannot accumulate drift because it is a pure sinusoid of elapsed time.
const (
	RestPitch = 0.2
	RestY     = -0.5

	FloatAmplitude = 0.05
	FloatFrequency = 1.0 // radians per second
)

// Config holds the end values each animated property reaches at p=1.
type Config struct {
	YawTarget           float64 `json:"yaw_target"`
	ExplodeTarget       float64 `json:"explode_target"`
	WireForward         float64 `json:"wire_forward"`
	WireLift            float64 `json:"wire_lift"`
	AnnotationThreshold float64 `json:"annotation_threshold"`
}

// DefaultConfig returns the production animation targets.
func DefaultConfig() Config {
	return Config{
		YawTarget:           math.Pi * 0.4,
		ExplodeTarget:       1.5,
		WireForward:         2.0,
		WireLift:            0.5,
		AnnotationThreshold: 0.5,
	}
}

// Pose is the assembly state at one progress value.
type Pose struct {
	Yaw                float64       `json:"yaw"`
	Explode            float64       `json:"explode"`
	WireOffset         mathutil.Vec3 `json:"wire_offset"`
	AnnotationsVisible bool          `json:"annotations_visible"`
}

// Timeline evaluates poses for a fixed config.
type Timeline struct {
	cfg Config
}

func New(cfg Config) *Timeline {
	return &Timeline{cfg: cfg}
}

// Pose evaluates the assembly pose at progress p. Input is clamped to
// [0,1]; every property except annotation visibility is continuous in p.
func (tl *Timeline) Pose(p float64) Pose {
	p = clamp01(p)
	return Pose{
		Yaw:     easeOutQuad(p) * tl.cfg.YawTarget,
		Explode: easeInOutCubic(p) * tl.cfg.ExplodeTarget,
		WireOffset: mathutil.Vec3{
			0,
			easeInOutCubic(p) * tl.cfg.WireLift,
			easeInOutCubic(p) * tl.cfg.WireForward,
		},
		AnnotationsVisible: p >= tl.cfg.AnnotationThreshold,
	}
}

// Config returns the animation targets, for serving to the client.
func (tl *Timeline) Config() Config {
	return tl.cfg
}

// BracketWorld recomputes a bracket's position from its rest transform and
// the current explode scalar: rest position plus the bracket's own forward
// axis scaled by the displacement. Never mutated in place, so replay is
// deterministic.
func BracketWorld(rest mathutil.Vec3, restYaw, explode float64) mathutil.Vec3 {
	forward := mathutil.RotY(restYaw).MulVec3(mathutil.Vec3{0, 0, 1})
	return rest.Add(forward.Scale(explode))
}

// Float returns the assembly's vertical position for the idle bob at the
// given elapsed wall-clock time.
func Float(elapsed time.Duration) float64 {
	return RestY + FloatAmplitude*math.Sin(elapsed.Seconds()*FloatFrequency)
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// easeOutQuad decelerates toward the end value.
func easeOutQuad(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

// easeInOutCubic accelerates then decelerates symmetrically.
func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
