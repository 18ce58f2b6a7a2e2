// Command cfconv prints a Fahrenheit to Celsius table from 300°F down to 0°F
// in steps of 20.
package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/scalars/internal/temperature"
)

func main() {
	fmt.Println(temperature.Banner)
	_ = temperature.Write(os.Stdout, temperature.FloatDescending, temperature.DefaultRange())
}
