// Package sizef renders non-negative integer magnitudes as
// human-readable strings with scaled unit prefixes, e.g. "42.0Mi" or
// "4.0k", the way operating systems display file sizes.
//
// All arithmetic is exact integer arithmetic: values are truncated,
// never rounded to nearest, and no floating point is involved, so the
// rendered digits are always a correct prefix of the true decimal
// expansion. The requested precision is an upper bound; digit output
// stops early once the remaining fraction is exactly zero.
//
//	fmt.Sprintf("%vB", sizef.Bytes(42*1024*1024))    // "42.0MiB"
//	fmt.Sprintf("%.4vB", sizef.BytesSI(1999999999))  // "1.9999GB"
//
// Custom scales beyond the built-in Binary and SI tables are built with
// NewScale, or by implementing the Prefixes interface.
package sizef

import (
	"fmt"
	"math/bits"
	"strconv"
)

// DefaultPrecision is the number of fractional digits shown when the
// caller supplies no explicit precision.
const DefaultPrecision = 1

// Unsigned covers the magnitude widths a Formatter can wrap.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Formatter pairs a raw magnitude with the prefix scale and decimal
// separator used to render it. It is an immutable value; rendering has
// no side effects and is safe for concurrent use.
type Formatter[T Unsigned] struct {
	n   T
	pfx Prefixes
	sep Separator
}

// New wraps a magnitude for rendering with the given scale and separator.
func New[T Unsigned](n T, pfx Prefixes, sep Separator) Formatter[T] {
	return Formatter[T]{n: n, pfx: pfx, sep: sep}
}

// Bytes wraps a byte count for rendering with binary (power-of-1024)
// prefixes and a point separator.
func Bytes(n uint64) Formatter[uint64] { return New(n, Binary, Point) }

// BytesSI wraps a byte count for rendering with SI (power-of-1000)
// prefixes and a point separator.
func BytesSI(n uint64) Formatter[uint64] { return New(n, SI, Point) }

// AppendFormat renders the magnitude with at most precision fractional
// digits and appends the result to dst.
//
// The prefix shown is the largest in the scale that does not exceed the
// magnitude; past the top of the table the integer part simply grows.
// When the smallest prefix is selected no scaling occurred, so the
// fractional part (separator included) is omitted entirely. Fractional
// digits are truncated, and emission stops once the remainder is
// exactly zero, so fewer than precision digits may appear.
//
// Panics if the scale reports a base below 2 or an empty label list.
func (f Formatter[T]) AppendFormat(dst []byte, precision int) []byte {
	labels := f.pfx.Labels()
	base := f.pfx.Base()
	if base < 2 || len(labels) == 0 {
		panic("sizef: invalid prefix scale")
	}
	raw := uint64(f.n)

	// Largest index with base^idx <= raw, capped at the top of the
	// table. div tracks base^idx and cannot overflow: it never exceeds raw.
	idx, div := 0, uint64(1)
	for n := raw; n >= base && idx < len(labels)-1; n /= base {
		idx++
		div *= base
	}

	dst = strconv.AppendUint(dst, raw/div, 10)
	if idx > 0 && precision > 0 {
		dst = append(dst, byte(f.sep))
		rem := raw % div
		for k := 0; k < precision; k++ {
			// rem*10 can exceed 64 bits for magnitudes near the top of
			// the range; do the divide on the 128-bit product.
			hi, lo := bits.Mul64(rem, 10)
			d, r := bits.Div64(hi, lo, div)
			dst = append(dst, '0'+byte(d))
			if r == 0 {
				break
			}
			rem = r
		}
	}
	return append(dst, labels[idx]...)
}

// Render returns the magnitude rendered with at most precision
// fractional digits. Any fixed unit suffix ("B", "m", ...) is the
// caller's to append.
func (f Formatter[T]) Render(precision int) string {
	return string(f.AppendFormat(nil, precision))
}

// String renders with DefaultPrecision.
func (f Formatter[T]) String() string { return f.Render(DefaultPrecision) }

// Format implements fmt.Formatter so that the precision of a formatting
// directive selects the number of fractional digits, e.g. "%.4v".
// Without an explicit precision, DefaultPrecision applies.
func (f Formatter[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		precision, ok := s.Precision()
		if !ok {
			precision = DefaultPrecision
		}
		s.Write(f.AppendFormat(nil, precision))
	default:
		fmt.Fprintf(s, "%%!%c(sizef.Formatter=%s)", verb, f.Render(DefaultPrecision))
	}
}
