package model

// Exercise is one runnable demonstration.
type Exercise struct {
	Name    string // subcommand name
	Title   string
	Summary string
}

// Exercise names.
const (
	Temp     = "temp"
	Sizes    = "sizes"
	Models   = "models"
	Pointers = "pointers"
)

var catalog = []Exercise{
	{Name: Temp, Title: "Temperature table", Summary: "Fahrenheit to Celsius, float/descending or int/ascending"},
	{Name: Sizes, Title: "Type sizes", Summary: "Byte width of char, int, float, long, short, double, bool, long long"},
	{Name: Models, Title: "Data models", Summary: "Reference widths for LP32, ILP32, LP64, LLP64, ILP64, SILP64"},
	{Name: Pointers, Title: "Pointers & functions", Summary: "A value, its address, the same address through a pointer"},
}

// Catalog lists the exercises in display order.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}
