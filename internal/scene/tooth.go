package scene

import "math"

// Tooth solid dimensions. The box is heavily segmented so the organic
// deform below reads as a rounded crown rather than a slab.
const (
	toothWidth  = 0.85
	toothHeight = 1.4
	toothDepth  = 0.4

	toothSegX = 4
	toothSegY = 8
	toothSegZ = 4

	frontCurveAmp  = 0.15
	frontCurveFreq = 2.0
	rootPinchBelow = -0.3
	rootPinchScale = 0.8
)

// toothMesh generates the shared organic tooth solid: a segmented box with a
// cosine front-face curvature and a pinched root so it is not a plain box.
func toothMesh() *Mesh {
	m := buildBox(toothWidth, toothHeight, toothDepth, toothSegX, toothSegY, toothSegZ)

	for i := range m.Verts {
		v := m.Verts[i]
		v[2] += math.Cos(v[0]*frontCurveFreq) * frontCurveAmp
		if v[1] < rootPinchBelow {
			v[0] *= rootPinchScale
			v[2] *= rootPinchScale
		}
		m.Verts[i] = v
	}

	m.RecomputeNormals()
	return m
}
