package marina

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// leadingNumber matches what atof accepts at the start of a string.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// atof reads the leading real number of s, skipping leading spaces. It returns 0 when there is none.
//
// Like a double, values beyond ±math.MaxFloat64 saturate and values too small
// to be told from zero are zero.
func atof(s string) decimal.Decimal {
	s = strings.TrimLeft(s, " \t")
	n := leadingNumber.FindString(s)
	if n == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(n, 64)
	switch {
	case math.IsInf(f, 0):
		return decimal.NewFromFloat(math.Copysign(math.MaxFloat64, f))
	case err != nil || f == 0:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Feet is a boat length.
type Feet struct {
	value decimal.Decimal
}

// Ft creates a length in feet.
func Ft[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Feet {
	return Feet{value: newDecimal(value)}
}

// ParseFeet reads a length the permissive way older versions did.
// Unreadable or negative lengths are zero.
func ParseFeet(s string) Feet {
	d := atof(s)
	if d.IsNegative() {
		return Feet{}
	}
	return Feet{value: d}
}

func (f Feet) Equal(g Feet) bool { return f.value.Equal(g.value) }
func (f Feet) String() string   { return f.value.String() }

// Whole returns the length rounded to the foot, as persisted.
// Halves round to even, which is what printf("%.0f") does.
func (f Feet) Whole() string { return f.value.RoundBank(0).StringFixed(0) }

func (f Feet) MarshalJSON() ([]byte, error) {
	return f.value.MarshalJSON()
}
