// Package numfmt parses user-typed decimal text into exact rationals and
// formats rationals with a fixed number of fraction digits.
package numfmt

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/yigit/spicalc/internal/pkg/validation"
)

// ErrNotDecimal is returned when text is not a plain decimal number
var ErrNotDecimal = errors.New("not a decimal number")

// ParseDecimal parses s exactly. Only plain decimal notation is accepted;
// surrounding whitespace is ignored.
func ParseDecimal(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if !validation.IsDecimal(s) {
		return nil, ErrNotDecimal
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ErrNotDecimal
	}
	return r, nil
}

// ParseWhole parses a non-negative integer written without sign or decimal
// point.
func ParseWhole(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if !validation.IsWholeNumber(s) {
		return nil, ErrNotDecimal
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrNotDecimal
	}
	return n, nil
}

// FormatHalfUp renders r with exactly digits fraction digits, rounding ties
// away from zero.
func FormatHalfUp(r *big.Rat, digits int) string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	abs := new(big.Rat).Abs(r)
	scaled := new(big.Rat).Mul(abs, new(big.Rat).SetInt(scale))
	scaled.Add(scaled, big.NewRat(1, 2))

	// floor(scaled) for a non-negative rational
	q := new(big.Int).Quo(scaled.Num(), scaled.Denom())

	neg := r.Sign() < 0 && q.Sign() != 0
	intPart, frac := new(big.Int).QuoRem(q, scale, new(big.Int))

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart.String())
	if digits > 0 {
		fs := frac.String()
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", digits-len(fs)))
		b.WriteString(fs)
	}
	return b.String()
}

// IsFinite reports whether r converts to a finite float64
func IsFinite(r *big.Rat) bool {
	if r == nil {
		return false
	}
	f, _ := r.Float64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
