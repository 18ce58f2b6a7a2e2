// Command pointers prints a value, its address, and the same address read
// through a pointer.
package main

import (
	"os"

	"github.com/idilsaglam/scalars/internal/pointers"
)

func main() {
	_ = pointers.Run(os.Stdout)
}
