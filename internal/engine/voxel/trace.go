package voxel

import (
	gomath "math"

	"github.com/Faultbox/voxelheim/pkg/math"
)

// CubeLookAt identifies the voxel a traced ray hit. IncomingDirection
// points from the last empty cell into the voxel, so it doubles as the hit
// face's outward normal: place at Voxel+IncomingDirection, remove at Voxel.
type CubeLookAt struct {
	Voxel             [3]int
	IncomingDirection [3]int
}

// TraceResult is the outcome of one ray trace: every cell visited in order
// and the hit, if any.
type TraceResult struct {
	Path  [][3]int
	Found *CubeLookAt
}

// CubeLookingAt walks the voxel grid cube by cube from origin along
// direction until it finds an occupied cell or travels ceil(maxRadius)
// cells from the starting cell. The walk is an Amanatides-Woo grid
// traversal extended to hand off across chunk boundaries; space with no
// resident chunk reads as empty and the ray keeps going.
func (w *World) CubeLookingAt(origin, direction math.Vec3, maxRadius float32) TraceResult {
	return newTracer(w, origin, direction, maxRadius).run()
}

// tracer holds the per-invocation traversal state. Nothing is retained
// across calls.
type tracer struct {
	world *World
	chunk ChunkKey

	cell  [3]int
	start [3]int
	prev  [3]int

	step  [3]int
	delta [3]float64 // ray distance consumed per cell step on each axis
	tmax  [3]float64 // ray distance to the next cell boundary on each axis

	limit int // ceil(maxRadius) squared, in cells
	path  [][3]int
}

func newTracer(w *World, origin, direction math.Vec3, maxRadius float32) *tracer {
	cx, cy, cz := origin.Round()

	t := &tracer{
		world: w,
		chunk: ChunkKeyFor(cx, cz),
		cell:  [3]int{cx, cy, cz},
		start: [3]int{cx, cy, cz},
		prev:  [3]int{cx, cy, cz},
	}

	r := int(gomath.Ceil(float64(maxRadius)))
	if r < 0 {
		r = 0
	}
	t.limit = r * r

	orig := [3]float64{float64(origin.X), float64(origin.Y), float64(origin.Z)}
	dir := [3]float64{float64(direction.X), float64(direction.Y), float64(direction.Z)}
	for axis := 0; axis < 3; axis++ {
		center := float64(t.cell[axis]) // cube spans center +/- 0.5
		switch {
		case dir[axis] > 0:
			t.step[axis] = 1
			t.delta[axis] = 1 / dir[axis]
			t.tmax[axis] = (center + 0.5 - orig[axis]) / dir[axis]
		case dir[axis] < 0:
			t.step[axis] = -1
			t.delta[axis] = -1 / dir[axis]
			t.tmax[axis] = (orig[axis] - (center - 0.5)) / -dir[axis]
		default:
			// A zero component never advances its axis; +Inf keeps it
			// from winning the next-boundary comparison.
			t.step[axis] = 0
			t.delta[axis] = gomath.Inf(1)
			t.tmax[axis] = gomath.Inf(1)
		}
	}

	return t
}

func (t *tracer) run() TraceResult {
	for {
		t.path = append(t.path, t.cell)

		if t.occupant() != nil {
			return TraceResult{
				Path: t.path,
				Found: &CubeLookAt{
					Voxel: t.cell,
					IncomingDirection: [3]int{
						t.prev[0] - t.cell[0],
						t.prev[1] - t.cell[1],
						t.prev[2] - t.cell[2],
					},
				},
			}
		}

		axis := t.nextAxis()
		if t.step[axis] == 0 {
			// Degenerate zero direction: no axis can advance.
			return TraceResult{Path: t.path}
		}

		t.prev = t.cell
		t.cell[axis] += t.step[axis]
		t.tmax[axis] += t.delta[axis]

		if axis != 1 {
			t.crossChunk(axis)
		}

		if t.pastLimit() {
			return TraceResult{Path: t.path}
		}
	}
}

// occupant returns the voxel in the current cell, or nil when the cell is
// empty, outside the active chunk's Y range, or in unresident space.
func (t *tracer) occupant() *Voxel {
	c := t.world.chunks[t.chunk]
	if c == nil {
		return nil
	}
	return c.VoxelAt(t.cell[0], t.cell[1], t.cell[2])
}

// nextAxis picks the axis whose next cell boundary is closest along the
// ray. Ties resolve X over Y over Z; exact-diagonal rays get their path
// determinism from this order.
func (t *tracer) nextAxis() int {
	if t.tmax[0] <= t.tmax[1] && t.tmax[0] <= t.tmax[2] {
		return 0
	}
	if t.tmax[1] <= t.tmax[2] {
		return 1
	}
	return 2
}

// crossChunk switches the active chunk key when a horizontal step lands on
// the first column of a neighboring chunk: after a positive step that is a
// coordinate at 0 mod 16, after a negative one 15 mod 16.
func (t *tracer) crossChunk(axis int) {
	extent := ChunkWidth
	if axis == 2 {
		extent = ChunkDepth
	}
	m := math.FloorMod(t.cell[axis], extent)
	var shift int
	switch {
	case t.step[axis] > 0 && m == 0:
		shift = extent
	case t.step[axis] < 0 && m == extent-1:
		shift = -extent
	default:
		return
	}
	if axis == 0 {
		t.chunk.X += shift
	} else {
		t.chunk.Z += shift
	}
}

// pastLimit reports whether the current cell is more than ceil(maxRadius)
// cells from the starting cell.
func (t *tracer) pastLimit() bool {
	dx := t.cell[0] - t.start[0]
	dy := t.cell[1] - t.start[1]
	dz := t.cell[2] - t.start[2]
	return dx*dx+dy*dy+dz*dz > t.limit
}
