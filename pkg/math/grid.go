package math

// FloorDiv divides a by b rounding toward negative infinity.
// Go's integer division truncates toward zero, which gives the wrong chunk
// for negative world coordinates: -1/16 == 0 but the cell -1 belongs to the
// chunk starting at -16.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a mod b with the sign of b, matching FloorDiv.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
