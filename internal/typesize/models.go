package typesize

import (
	"strconv"
)

// Width is a byte width, or a range of them where ABIs disagree
// (long double).
type Width struct {
	Min int
	Max int
}

func fixed(n int) Width { return Width{Min: n, Max: n} }

func (w Width) String() string {
	if w.Min == w.Max {
		return strconv.Itoa(w.Min)
	}
	return strconv.Itoa(w.Min) + "-" + strconv.Itoa(w.Max)
}

// Contains reports whether n is a valid width under w.
func (w Width) Contains(n uintptr) bool {
	return int(n) >= w.Min && int(n) <= w.Max
}

// Columns orders the types of the reference table.
var Columns = []string{
	"char", "short", "int", "long", "long long", "pointer",
	"size_t", "float", "double", "long double", "bool",
}

// DataModel is a named integer/pointer width convention.
type DataModel struct {
	Name      string
	WhereSeen string
	Sizes     map[string]Width
}

// Row renders the model's widths in Columns order.
func (m DataModel) Row() []string {
	row := make([]string, 0, len(Columns)+1)
	row = append(row, m.Name)
	for _, c := range Columns {
		row = append(row, m.Sizes[c].String())
	}
	return row
}

func model(name, seen string, short, integer, long, ptr int, longDouble Width) DataModel {
	return DataModel{
		Name:      name,
		WhereSeen: seen,
		Sizes: map[string]Width{
			"char":        fixed(1),
			"short":       fixed(short),
			"int":         fixed(integer),
			"long":        fixed(long),
			"long long":   fixed(8),
			"pointer":     fixed(ptr),
			"size_t":      fixed(ptr),
			"float":       fixed(4),
			"double":      fixed(8),
			"long double": longDouble,
			"bool":        fixed(1),
		},
	}
}

var models = []DataModel{
	model("LP32", "16-bit era compilers with 32-bit long and flat 32-bit pointers", 2, 2, 4, 4, Width{8, 12}),
	model("ILP32", "32-bit Windows, Linux, BSD, old macOS/iOS/Android, 32-bit ARM", 2, 4, 4, 4, Width{8, 12}),
	model("LP64", "64-bit Linux, BSD, macOS, iOS/Android arm64, RISC-V64", 2, 4, 8, 8, Width{8, 16}),
	model("LLP64", "64-bit Windows (x86-64, ARM64)", 2, 4, 4, 8, fixed(8)),
	model("ILP64", "historical Cray and niche 64-bit HPC Unixes", 2, 8, 8, 8, Width{8, 16}),
	model("SILP64", "academic; 64-bit short, int, long and pointer", 8, 8, 8, 8, Width{8, 16}),
}

// Models returns the reference table of data models.
func Models() []DataModel {
	out := make([]DataModel, len(models))
	copy(out, models)
	return out
}

// Detect finds the data model whose short, int, long and pointer widths
// match s.
func Detect(s Sizes) (DataModel, bool) {
	for _, m := range models {
		if m.Sizes["short"].Contains(s.Short) &&
			m.Sizes["int"].Contains(s.Int) &&
			m.Sizes["long"].Contains(s.Long) &&
			m.Sizes["pointer"].Contains(s.Pointer) {
			return m, true
		}
	}
	return DataModel{}, false
}
