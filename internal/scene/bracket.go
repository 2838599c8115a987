package scene

import "github.com/lumident/clinic-platform/internal/mathutil"

// Bracket solid dimensions: a beveled square pad extruded along +Z.
const (
	bracketHalf  = 0.15
	bracketDepth = 0.1
	bracketBevel = 0.02
)

// bracketMesh generates the shared bracket solid as four stacked square
// rings (inset back, full back, full front, inset front) joined by quads,
// with flat caps. The inset rings stand in for the extrude bevel.
func bracketMesh() *Mesh {
	m := &Mesh{}

	inset := bracketHalf - bracketBevel
	ring := func(half, z float64) int {
		base := len(m.Verts)
		m.Verts = append(m.Verts,
			mathutil.Vec3{-half, -half, z},
			mathutil.Vec3{half, -half, z},
			mathutil.Vec3{half, half, z},
			mathutil.Vec3{-half, half, z},
		)
		return base
	}

	r0 := ring(inset, -bracketBevel)
	r1 := ring(bracketHalf, 0)
	r2 := ring(bracketHalf, bracketDepth)
	r3 := ring(inset, bracketDepth+bracketBevel)

	joinRings := func(a, b int) {
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			m.Tris = append(m.Tris,
				[3]int{a + i, b + i, b + j},
				[3]int{a + i, b + j, a + j},
			)
		}
	}
	joinRings(r0, r1)
	joinRings(r1, r2)
	joinRings(r2, r3)

	// Back and front caps.
	m.Tris = append(m.Tris,
		[3]int{r0 + 0, r0 + 2, r0 + 1}, [3]int{r0 + 0, r0 + 3, r0 + 2},
		[3]int{r3 + 0, r3 + 1, r3 + 2}, [3]int{r3 + 0, r3 + 2, r3 + 3},
	)

	m.RecomputeNormals()
	return m
}
