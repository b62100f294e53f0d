// Package voxel implements the chunked voxel world: dense per-chunk storage,
// incremental face-visibility tracking, and grid ray traversal for look-at
// queries. The renderer consumes its output as a flat list of instances and
// is otherwise independent of this package.
package voxel

// Side identifies one of the six faces of a voxel.
//
// The constants are ordered so that opposite faces differ only in the low
// bit, which makes Opposite a single XOR.
type Side int

const (
	SideTop    Side = iota // +Y
	SideBottom             // -Y
	SideEast               // +X
	SideWest               // -X
	SideNorth              // +Z
	SideSouth              // -Z

	sideCount
)

// Opposite returns the face on the other side of the cube.
func (s Side) Opposite() Side {
	return s ^ 1
}

// Offset returns the cell offset of the neighbor behind this face.
func (s Side) Offset() (dx, dy, dz int) {
	switch s {
	case SideTop:
		return 0, 1, 0
	case SideBottom:
		return 0, -1, 0
	case SideEast:
		return 1, 0, 0
	case SideWest:
		return -1, 0, 0
	case SideNorth:
		return 0, 0, 1
	case SideSouth:
		return 0, 0, -1
	}
	return 0, 0, 0
}

// Color is an RGBA color with components in [0,1].
type Color [4]float32

// Voxel is a single colored unit cube. The sides mask records which of the
// six neighboring cells are occupied; it is derived state, maintained only
// by the owning chunk's Place and Remove.
type Voxel struct {
	Color Color

	sides [sideCount]bool
}

// SidePresent reports whether the neighbor behind the given face is occupied.
func (v *Voxel) SidePresent(s Side) bool {
	return v.sides[s]
}

// enclosed reports whether all six neighbors are occupied. Enclosed voxels
// contribute no visible geometry.
func (v *Voxel) enclosed() bool {
	for _, p := range v.sides {
		if !p {
			return false
		}
	}
	return true
}

// Instance is one visible voxel in render-agnostic form. The renderer
// places a fixed unit-cube mesh at each instance. Rotation carries no
// gameplay meaning and stays zero for world voxels; it exists so the
// instanced vertex layout can also serve free-floating decorative cubes.
type Instance struct {
	Position [3]float32
	Color    Color
	Rotation [3]float32
}
