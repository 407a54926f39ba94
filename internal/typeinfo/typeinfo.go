// Package typeinfo reports storage size, precision and value range for
// Go's numeric types, in the manner of C++'s std::numeric_limits.
package typeinfo

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
	"unsafe"
)

// Limits describes one numeric type.
type Limits struct {
	Name   string
	Size   int // bytes
	Digits int // value bits for integers, mantissa bits for floats
	Signed bool
	Min    string
	Max    string
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func describeSigned[T signedInt](name string) Limits {
	var z T
	size := int(unsafe.Sizeof(z))
	bits := size * 8
	max := int64(1)<<(bits-1) - 1
	return Limits{
		Name:   name,
		Size:   size,
		Digits: bits - 1,
		Signed: true,
		Min:    strconv.FormatInt(-max-1, 10),
		Max:    strconv.FormatInt(max, 10),
	}
}

func describeUnsigned[T unsignedInt](name string) Limits {
	var z T
	size := int(unsafe.Sizeof(z))
	bits := size * 8
	var max uint64
	if bits == 64 {
		max = math.MaxUint64
	} else {
		max = uint64(1)<<bits - 1
	}
	return Limits{
		Name:   name,
		Size:   size,
		Digits: bits,
		Min:    "0",
		Max:    strconv.FormatUint(max, 10),
	}
}

// All returns the table rows, grouped like the width ladder of the C
// integer types followed by the character and floating-point types.
func All() []Limits {
	return []Limits{
		describeSigned[int16]("int16"),
		describeUnsigned[uint16]("uint16"),

		describeSigned[int32]("int32"),
		describeUnsigned[uint32]("uint32"),

		describeSigned[int64]("int64"),
		describeUnsigned[uint64]("uint64"),

		describeSigned[int]("int"),
		describeUnsigned[uint]("uint"),

		describeSigned[int8]("int8"),
		describeUnsigned[uint8]("byte"),
		describeSigned[rune]("rune"),

		{
			Name: "float32", Size: 4, Digits: 24, Signed: true,
			Min: strconv.FormatFloat(-math.MaxFloat32, 'g', -1, 32),
			Max: strconv.FormatFloat(math.MaxFloat32, 'g', -1, 32),
		},
		{
			Name: "float64", Size: 8, Digits: 53, Signed: true,
			Min: strconv.FormatFloat(-math.MaxFloat64, 'g', -1, 64),
			Max: strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64),
		},
	}
}

// Render writes the table in aligned columns.
func Render(w io.Writer, rows []Limits) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "type\tbytes\tdigits\tsign\trange\t")
	for _, r := range rows {
		sign := "unsigned"
		if r.Signed {
			sign = "signed"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t[%s, %s]\t\n",
			r.Name, r.Size, r.Digits, sign, r.Min, r.Max)
	}
	return tw.Flush()
}
