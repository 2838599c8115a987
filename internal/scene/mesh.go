package scene

import (
	"github.com/lumident/clinic-platform/internal/mathutil"
)

// Mesh is an indexed triangle mesh with per-vertex normals.
type Mesh struct {
	Verts   []mathutil.Vec3 `json:"verts"`
	Normals []mathutil.Vec3 `json:"normals"`
	Tris    [][3]int        `json:"tris"`
}

// buildBox generates a box centered on the origin with subdivided faces.
// Width spans X, height Y, depth Z; sx/sy/sz are segment counts per axis.
func buildBox(width, height, depth float64, sx, sy, sz int) *Mesh {
	m := &Mesh{}

	// Each face is a grid in (u,v) displaced along the face normal.
	// uAxis/vAxis/w pick which world axes the grid spans.
	buildPlane := func(uAxis, vAxis, wAxis int, uDir, vDir float64, uLen, vLen, wOff float64, gridU, gridV int) {
		base := len(m.Verts)
		for iv := 0; iv <= gridV; iv++ {
			for iu := 0; iu <= gridU; iu++ {
				var v mathutil.Vec3
				v[uAxis] = (float64(iu)/float64(gridU) - 0.5) * uLen * uDir
				v[vAxis] = (float64(iv)/float64(gridV) - 0.5) * vLen * vDir
				v[wAxis] = wOff
				m.Verts = append(m.Verts, v)
			}
		}
		for iv := 0; iv < gridV; iv++ {
			for iu := 0; iu < gridU; iu++ {
				a := base + iv*(gridU+1) + iu
				b := a + 1
				c := a + gridU + 1
				d := c + 1
				m.Tris = append(m.Tris, [3]int{a, c, b}, [3]int{b, c, d})
			}
		}
	}

	hw, hh, hd := width/2, height/2, depth/2
	buildPlane(0, 1, 2, 1, 1, width, height, hd, sx, sy)   // front (+Z)
	buildPlane(0, 1, 2, -1, 1, width, height, -hd, sx, sy) // back (−Z)
	buildPlane(2, 1, 0, -1, 1, depth, height, hw, sz, sy)  // right (+X)
	buildPlane(2, 1, 0, 1, 1, depth, height, -hw, sz, sy)  // left (−X)
	buildPlane(0, 2, 1, 1, -1, width, depth, hh, sx, sz)   // top (+Y)
	buildPlane(0, 2, 1, 1, 1, width, depth, -hh, sx, sz)   // bottom (−Y)

	m.RecomputeNormals()
	return m
}

// RecomputeNormals rebuilds per-vertex normals by accumulating face normals.
func (m *Mesh) RecomputeNormals() {
	normals := make([]mathutil.Vec3, len(m.Verts))
	for _, tri := range m.Tris {
		a, b, c := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
		face := b.Sub(a).Cross(c.Sub(a))
		for _, idx := range tri {
			normals[idx] = normals[idx].Add(face)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// Bounds returns the axis-aligned min/max corners of the mesh.
func (m *Mesh) Bounds() (min, max mathutil.Vec3) {
	if len(m.Verts) == 0 {
		return
	}
	min, max = m.Verts[0], m.Verts[0]
	for _, v := range m.Verts[1:] {
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return
}
