// Package scene procedurally generates the orthodontic arch assembly shown
// in the website hero: teeth fanned along a semicircle, one bracket bonded
// to the front face of each tooth, and an archwire resting across them.
// Generation is deterministic for a given Params (including Seed); only the
// documented per-tooth jitter draws from the seeded source.
package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lumident/clinic-platform/internal/mathutil"
)

// Arch layout constants matching the rendered hero.
const (
	archZOffset = 1.5

	jitterYAmp    = 0.1  // vertical jitter is (rand-0.5)*jitterYAmp
	jitterTiltAmp = 0.05 // tilt jitter is (rand-0.5)*jitterTiltAmp

	bracketStandoff = 0.55
)

// Params controls assembly generation.
type Params struct {
	ToothCount int     `json:"tooth_count"`
	ArchRadius float64 `json:"arch_radius"`
	Seed       int64   `json:"seed"`
}

// DefaultParams returns the production scene parameters.
func DefaultParams() Params {
	return Params{ToothCount: 10, ArchRadius: 4.5}
}

// Tooth is one placed tooth unit. Immutable after generation.
type Tooth struct {
	Index    int           `json:"index"`
	Angle    float64       `json:"angle"`
	Position mathutil.Vec3 `json:"position"`
	Yaw      float64       `json:"yaw"`
	Tilt     float64       `json:"tilt"`
}

// Bracket is the pad bonded to a tooth's front face. The rest transform is
// captured at creation and is the animation reference for the explode.
type Bracket struct {
	Index        int           `json:"index"`
	RestPosition mathutil.Vec3 `json:"rest_position"`
	RestYaw      float64       `json:"rest_yaw"`
}

// Forward is the bracket's local outward axis in assembly space.
func (b Bracket) Forward() mathutil.Vec3 {
	return mathutil.RotY(b.RestYaw).MulVec3(mathutil.Vec3{0, 0, 1})
}

// Wire is the archwire tube and its sampled path.
type Wire struct {
	Path []mathutil.Vec3 `json:"path"`
	Mesh *Mesh           `json:"mesh"`
}

// Assembly is the full generated scene, ready to serialize for the client.
type Assembly struct {
	Params      Params    `json:"params"`
	Teeth       []Tooth   `json:"teeth"`
	Brackets    []Bracket `json:"brackets"`
	Wire        Wire      `json:"wire"`
	ToothMesh   *Mesh     `json:"tooth_mesh"`
	BracketMesh *Mesh     `json:"bracket_mesh"`
}

// ArchAngle maps tooth index i of n onto the semicircle [-π/2, π/2].
func ArchAngle(i, n int) float64 {
	return float64(i)/float64(n-1)*math.Pi - math.Pi/2
}

// archPosition places an angle on the arch at the given radius.
func archPosition(angle, radius float64) mathutil.Vec3 {
	return mathutil.Vec3{
		math.Sin(angle) * radius,
		0,
		math.Cos(angle)*radius - radius + archZOffset,
	}
}

// Build generates the assembly. Tooth and bracket geometry is shared across
// instances; per-tooth placement carries the only randomness.
func Build(p Params) (*Assembly, error) {
	if p.ToothCount < 2 {
		return nil, fmt.Errorf("scene: tooth count must be at least 2, got %d", p.ToothCount)
	}
	if p.ArchRadius <= 0 {
		return nil, fmt.Errorf("scene: arch radius must be positive, got %f", p.ArchRadius)
	}

	rng := rand.New(rand.NewSource(p.Seed))

	a := &Assembly{
		Params:      p,
		ToothMesh:   toothMesh(),
		BracketMesh: bracketMesh(),
	}

	for i := 0; i < p.ToothCount; i++ {
		angle := ArchAngle(i, p.ToothCount)
		pos := archPosition(angle, p.ArchRadius)
		pos[1] += (rng.Float64() - 0.5) * jitterYAmp

		a.Teeth = append(a.Teeth, Tooth{
			Index:    i,
			Angle:    angle,
			Position: pos,
			Yaw:      angle,
			Tilt:     (rng.Float64() - 0.5) * jitterTiltAmp,
		})

		// The bracket starts at the tooth transform (without jitter) and is
		// pushed forward along the tooth's local outward axis onto the
		// visible face.
		restPos := archPosition(angle, p.ArchRadius)
		forward := mathutil.RotY(angle).MulVec3(mathutil.Vec3{0, 0, 1})
		a.Brackets = append(a.Brackets, Bracket{
			Index:        i,
			RestPosition: restPos.Add(forward.Scale(bracketStandoff)),
			RestYaw:      angle,
		})
	}

	curve := ArchCurve{ArchRadius: p.ArchRadius, ZOffset: archZOffset}
	mesh, path := tubeMesh(curve, wireSegments, wireRadius, wireRadialSegments)
	a.Wire = Wire{Path: path, Mesh: mesh}

	return a, nil
}
