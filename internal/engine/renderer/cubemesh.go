package renderer

// Unit cube centered on the origin, 24 distinct vertices (4 per face, each
// carrying its face normal) so a texture or per-face shade can later target
// a single face. Layout: position xyz, normal xyz.
var cubeVertices = []float32{
	// front (-Z)
	-0.5, 0.5, -0.5, 0, 0, -1,
	0.5, 0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1,
	// back (+Z)
	-0.5, 0.5, 0.5, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1,
	0.5, -0.5, 0.5, 0, 0, 1,
	// right (+X)
	0.5, 0.5, -0.5, 1, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0,
	// left (-X)
	-0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0,
	// up (+Y)
	-0.5, 0.5, 0.5, 0, 1, 0,
	0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0,
	// down (-Y)
	-0.5, -0.5, 0.5, 0, -1, 0,
	0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0,
	0.5, -0.5, -0.5, 0, -1, 0,
}

var cubeIndices = []uint32{
	0, 1, 2, 1, 2, 3, // front
	4, 5, 6, 5, 6, 7, // back
	8, 9, 10, 9, 10, 11, // right
	12, 13, 14, 13, 14, 15, // left
	16, 17, 18, 17, 18, 19, // up
	20, 21, 22, 21, 22, 23, // bottom
}
