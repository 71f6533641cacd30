package engine

import "golang.org/x/exp/constraints"

// Min returns the smaller of x or y.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// cmpInt orders two integers the way Score.Compare reports.
func cmpInt[T constraints.Integer](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// sign is +1 for White and -1 for Black.
func sign(c Color) float64 {
	if c == White {
		return 1
	}
	return -1
}
