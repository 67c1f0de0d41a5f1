package nussinov

// CanPair reports whether the nucleotides x (at i) and y (at j) can bond.
//
// Only Watson-Crick pairs (A-U, G-C) are allowed, and the pair has to leave
// a hairpin loop: j - i must exceed minLoop.
func CanPair(x, y byte, i, j, minLoop int) bool {
	if j-i <= minLoop {
		return false
	}

	switch x {
	case 'A':
		return y == 'U'
	case 'U':
		return y == 'A'
	case 'G':
		return y == 'C'
	case 'C':
		return y == 'G'
	}
	return false
}
