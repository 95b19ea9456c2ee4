package reduce

import (
	"math"

	apperrors "github.com/agbru/parsum/internal/errors"
)

// addChecked returns a+b or an OverflowError if the sum leaves int64.
func addChecked(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, apperrors.OverflowError{Operation: "add", A: a, B: b}
	}
	return s, nil
}

// mulChecked returns a*b or an OverflowError if the product leaves int64.
func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, apperrors.OverflowError{Operation: "mul", A: a, B: b}
	}
	p := a * b
	if p/b != a {
		return 0, apperrors.OverflowError{Operation: "mul", A: a, B: b}
	}
	return p, nil
}
