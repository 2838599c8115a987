package scene

import (
	"math"

	"github.com/lumident/clinic-platform/internal/mathutil"
)

// Archwire parameters. The wire sits just outside the tooth arch, so its
// curve shares the arch's angle mapping at radius+wireStandoff.
const (
	wireStandoff       = 0.6
	wireRadius         = 0.04
	wireSegments       = 64
	wireRadialSegments = 12
)

// ArchCurve is the parametric path of the archwire for t in [0,1].
type ArchCurve struct {
	ArchRadius float64
	ZOffset    float64
}

// Point evaluates the curve. Same semicircular angle mapping as the tooth
// arch, pushed outward by the wire standoff.
func (c ArchCurve) Point(t float64) mathutil.Vec3 {
	angle := t*math.Pi - math.Pi/2
	x := math.Sin(angle) * (c.ArchRadius + wireStandoff)
	z := (math.Cos(angle)*c.ArchRadius - c.ArchRadius + c.ZOffset) + math.Cos(angle)*wireStandoff
	return mathutil.Vec3{x, 0, z}
}

// tangent approximates the curve derivative by central difference.
func (c ArchCurve) tangent(t float64) mathutil.Vec3 {
	const h = 1e-4
	t0, t1 := t-h, t+h
	if t0 < 0 {
		t0 = 0
	}
	if t1 > 1 {
		t1 = 1
	}
	return c.Point(t1).Sub(c.Point(t0)).Normalize()
}

// tubeMesh sweeps a circular cross-section along the curve.
func tubeMesh(c ArchCurve, segments int, radius float64, radial int) (*Mesh, []mathutil.Vec3) {
	m := &Mesh{}
	path := make([]mathutil.Vec3, 0, segments+1)
	up := mathutil.Vec3{0, 1, 0}

	for s := 0; s <= segments; s++ {
		t := float64(s) / float64(segments)
		center := c.Point(t)
		path = append(path, center)

		tan := c.tangent(t)
		binormal := tan.Cross(up).Normalize()
		normal := binormal.Cross(tan)

		for r := 0; r < radial; r++ {
			theta := float64(r) / float64(radial) * 2 * math.Pi
			offset := normal.Scale(math.Cos(theta) * radius).Add(binormal.Scale(math.Sin(theta) * radius))
			m.Verts = append(m.Verts, center.Add(offset))
		}
	}

	for s := 0; s < segments; s++ {
		ringA := s * radial
		ringB := (s + 1) * radial
		for r := 0; r < radial; r++ {
			rn := (r + 1) % radial
			m.Tris = append(m.Tris,
				[3]int{ringA + r, ringB + r, ringB + rn},
				[3]int{ringA + r, ringB + rn, ringA + rn},
			)
		}
	}

	m.RecomputeNormals()
	return m, path
}
